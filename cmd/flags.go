package main

import (
	"os"
	"runtime"
	"strconv"

	"github.com/CodisLabs/codis/pkg/utils/bytesize"
	"github.com/CodisLabs/codis/pkg/utils/errors"
	"github.com/CodisLabs/codis/pkg/utils/log"

	docopt "github.com/docopt/docopt-go"

	"github.com/CodisLabs/blockio/pkg/iolib"
)

const (
	MinBufferSize = 1
	MaxBufferSize = bytesize.MB * 64
)

type Flags struct {
	Command string
	Version bool

	Inputs []string
	Output string
	Tee    string

	BufferSize int

	// Limit is negative when no limit was given.
	Limit int64

	Offset, Length int64
	Count          int64
}

func parseFlags(usage string) *Flags {
	flags, err := parseFlagsFromArgs(usage, os.Args[1:])
	if err != nil {
		log.PanicErrorf(err, "parse arguments failed")
	}
	return flags
}

func parseInt(s string, min, max int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Trace(err)
	}
	if n >= min && n <= max {
		return n, nil
	}
	return 0, errors.Errorf("out of range [%d,%d], got %d", min, max, n)
}

// parseSize accepts a plain byte count or a size with a unit, like 4kb.
func parseSize(s string) (int64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	n, err := bytesize.Parse(s)
	if err != nil {
		return 0, errors.Trace(err)
	}
	return n, nil
}

func parseFlagsFromArgs(usage string, args []string) (*Flags, error) {
	d, err := docopt.Parse(usage, args, true, "", false)
	if err != nil {
		return nil, errors.Trace(err)
	}

	var flags = &Flags{
		BufferSize: iolib.DefaultBufferSize,
		Limit:      -1,
	}
	if v, ok := d["--version"].(bool); ok && v {
		flags.Version = true
		return flags, nil
	}
	for _, cmd := range []string{"cat", "section", "copyn"} {
		if v, ok := d[cmd].(bool); ok && v {
			flags.Command = cmd
		}
	}

	if s, ok := d["--ncpu"].(string); ok && s != "" {
		n, err := parseInt(s, 1, 1024)
		if err != nil {
			return nil, errors.Errorf("parse --ncpu=%q failed, %s", s, err)
		}
		runtime.GOMAXPROCS(n)
	}

	switch v := d["INPUT"].(type) {
	case string:
		flags.Inputs = []string{v}
	case []string:
		flags.Inputs = v
	}
	if s, ok := d["--input"].(string); ok && s != "" {
		flags.Inputs = []string{s}
	}
	flags.Output, _ = d["--output"].(string)
	flags.Tee, _ = d["--tee"].(string)

	if s, ok := d["--bufsize"].(string); ok && s != "" {
		n, err := parseSize(s)
		if err != nil {
			return nil, errors.Errorf("parse --bufsize=%q failed, %s", s, err)
		}
		if n < MinBufferSize || n > MaxBufferSize {
			return nil, errors.Errorf("parse --bufsize=%q failed, out of range [%d,%d]", s, MinBufferSize, MaxBufferSize)
		}
		flags.BufferSize = int(n)
	}

	for _, opt := range []struct {
		key string
		ptr *int64
	}{
		{"--limit", &flags.Limit},
		{"--offset", &flags.Offset},
		{"--length", &flags.Length},
		{"--count", &flags.Count},
	} {
		s, ok := d[opt.key].(string)
		if !ok || s == "" {
			continue
		}
		n, err := parseSize(s)
		if err != nil {
			return nil, errors.Errorf("parse %s=%q failed, %s", opt.key, s, err)
		}
		if n < 0 {
			return nil, errors.Errorf("parse %s=%q failed, negative size", opt.key, s)
		}
		*opt.ptr = n
	}
	return flags, nil
}
