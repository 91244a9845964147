// Copyright 2016 CodisLabs. All Rights Reserved.
// Licensed under the MIT (MIT-LICENSE.txt) license.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/CodisLabs/codis/pkg/utils/bytesize"
	"github.com/CodisLabs/codis/pkg/utils/log"
)

const (
	ReaderBufferSize = bytesize.MB * 4
	WriterBufferSize = bytesize.MB * 4
)

const usage = `
Usage:
	blockio cat      [--ncpu=N]  [--bufsize=SIZE]  [--limit=SIZE]  [--output=OUTPUT]  INPUT...
	blockio section  [--ncpu=N]  [--bufsize=SIZE]   --offset=OFF    --length=LEN      [--output=OUTPUT]  INPUT
	blockio copyn    [--ncpu=N]  [--bufsize=SIZE]   --count=SIZE   [--input=INPUT]    [--output=OUTPUT]  [--tee=FILE]
	blockio --version

Options:
	-n N, --ncpu=N                    Set runtime.GOMAXPROCS to N.
	-b SIZE, --bufsize=SIZE           Set the copy buffer size, default is 32kb.
	-l SIZE, --limit=SIZE             Stop after SIZE bytes, default is unlimited.
	-i INPUT, --input=INPUT           Set input file, default is stdin ('/dev/stdin').
	-o OUTPUT, --output=OUTPUT        Set output file, default is stdout ('/dev/stdout').
	--offset=OFF                      Set the first byte of the section.
	--length=LEN                      Set the length of the section.
	-c SIZE, --count=SIZE             Set the number of bytes to copy.
	--tee=FILE                        Also write everything read to FILE.

Examples:
	$ blockio cat a.bin b.bin -o ab.bin
	$ blockio section --offset=1kb --length=4mb disk.img -o part.img
	$ cat /dev/urandom | blockio copyn -c 1gb --tee=copy.bin > /dev/null
`

func main() {
	var flags = parseFlags(usage)
	if flags.Version {
		fmt.Println("version:", Version)
		fmt.Println("compile:", Compile)
		return
	}

	log.Infof("set ncpu = %d, bufsize = %s\n", runtime.GOMAXPROCS(0),
		bytesize.Int64(flags.BufferSize).HumanString())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch flags.Command {
	case "cat":
		new(cmdCat).Main(ctx, flags)
	case "section":
		new(cmdSection).Main(ctx, flags)
	case "copyn":
		new(cmdCopyN).Main(ctx, flags)
	}
}
