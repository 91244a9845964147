package main

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/CodisLabs/codis/pkg/utils/bufio2"
	"github.com/CodisLabs/codis/pkg/utils/log"
)

const (
	stdinPath  = "/dev/stdin"
	stdoutPath = "/dev/stdout"
)

func openReadFile(name string) (*os.File, int64) {
	f, err := os.Open(name)
	if err != nil {
		log.PanicErrorf(err, "can't open file %q", name)
	}
	s, err := f.Stat()
	if err != nil {
		log.PanicErrorf(err, "can't stat file %q", name)
	}
	if !s.Mode().IsRegular() {
		return f, 0
	}
	return f, s.Size()
}

func openWriteFile(name string) *os.File {
	f, err := os.OpenFile(name, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0666)
	if err != nil {
		log.PanicErrorf(err, "can't open file %q", name)
	}
	return f
}

// openInput treats an empty name, "-" and /dev/stdin as the standard input,
// which is neither opened nor closed. The size is 0 when unknown.
func openInput(name string) (f *os.File, size int64, release func()) {
	switch name {
	case "", "-", stdinPath:
		return os.Stdin, 0, func() {}
	}
	f, size = openReadFile(name)
	return f, size, func() { closeFile(f) }
}

func openOutput(name string) (f *os.File, release func()) {
	switch name {
	case "", "-", stdoutPath:
		return os.Stdout, func() {}
	}
	f = openWriteFile(name)
	return f, func() { closeFile(f) }
}

func flushWriter(w *bufio2.Writer) {
	if err := w.Flush(); err != nil {
		log.PanicErrorf(err, "flush writer failed")
	}
}

func closeFile(file *os.File) {
	if err := file.Close(); err != nil {
		log.PanicErrorf(err, "close file failed")
	}
}

func synchronized(l sync.Locker, fn func()) {
	l.Lock()
	fn()
	l.Unlock()
}

func formatAlign(align int, format string, args ...interface{}) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, format, args...)
	for b.Len()%align != 0 {
		b.WriteByte(' ')
	}
	return b.String()
}

type Job struct {
	main func()
}

func NewJob(main func()) *Job {
	return &Job{main}
}

func (j *Job) Then(main func()) *Job {
	var last = j.main
	return &Job{func() { last(); main() }}
}

func (j *Job) Run() <-chan struct{} {
	var done = make(chan struct{})
	go func() {
		defer close(done)
		j.main()
	}()
	return done
}

func (j *Job) RunAndWait() {
	<-j.Run()
}
