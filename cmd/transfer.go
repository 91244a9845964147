package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/CodisLabs/codis/pkg/utils/bufio2"
	"github.com/CodisLabs/codis/pkg/utils/bytesize"
	"github.com/CodisLabs/codis/pkg/utils/errors"
	"github.com/CodisLabs/codis/pkg/utils/log"
	"github.com/CodisLabs/codis/pkg/utils/sync2/atomic2"
	"golang.org/x/sync/errgroup"

	"github.com/CodisLabs/blockio/pkg/block"
	"github.com/CodisLabs/blockio/pkg/iolib"
	"github.com/CodisLabs/blockio/pkg/iolib/pipe"
)

// pump runs produce against the write half of a pipe while the read half
// is copied to dst through a buffer of bufsize bytes. A failure on either
// side closes the pipe with that failure, which releases the other side.
func pump(ctx context.Context, dst iolib.Writer, bufsize int, produce func(w iolib.Writer) error) (int64, error) {
	pr, pw := pipe.New()
	defer pipe.CloseOnCancel(ctx, pw)()

	var g errgroup.Group
	g.Go(func() error {
		err := produce(pw)
		pw.CloseWithError(err)
		return err
	})

	var written int64
	g.Go(func() error {
		n, err := iolib.CopyBuffer(dst, pr, block.Make[byte](bufsize, bufsize))
		written = n
		pr.CloseWithError(err)
		return err
	})
	if err := g.Wait(); err != nil {
		return written, errors.Trace(err)
	}
	return written, nil
}

type transfer struct {
	name    string
	total   int64
	bufsize int

	rbytes, wbytes atomic2.Int64

	mu      sync.Mutex
	output  iolib.Writer
	flusher *bufio2.Writer
}

func newTransfer(name string, flags *Flags) *transfer {
	return &transfer{name: name, bufsize: flags.BufferSize}
}

// Input counts the bytes consumed from r.
func (t *transfer) Input(r iolib.Reader) *ReaderBuilder {
	return rBuilder(r).Count(&t.rbytes)
}

// Output must be set before Run. Writes to it are buffered and flushed once
// a second while the transfer runs.
func (t *transfer) Output(w io.Writer) {
	var b = wStream(w).Count(&t.wbytes).Buffer2(WriterBufferSize)
	t.flusher = b.Flusher
	t.output = b.Mutex(&t.mu).Writer
}

func (t *transfer) flush() {
	synchronized(&t.mu, func() {
		flushWriter(t.flusher)
	})
}

func (t *transfer) Run(ctx context.Context, produce func(w iolib.Writer) error) {
	var jobs = NewJob(func() {
		n, err := pump(ctx, t.output, t.bufsize, produce)
		switch {
		case err == nil:
		case ctx.Err() != nil:
			log.Warnf("%s: interrupted after %d bytes", t.name, n)
		default:
			log.PanicErrorf(err, "%s: copy failed after %d bytes", t.name, n)
		}
	}).Then(t.flush).Run()

	log.Infof("%s: (r,w) = (read,write)", t.name)

	NewJob(func() {
		for stop := false; !stop; {
			select {
			case <-jobs:
				stop = true
			case <-time.After(time.Second):
				t.flush()
			}
			t.report()
		}
	}).RunAndWait()
}

func (t *transfer) report() {
	stats := &struct {
		rbytes, wbytes int64
	}{
		t.rbytes.Int64(), t.wbytes.Int64(),
	}

	var b bytes.Buffer
	if t.total != 0 {
		var percent = float64(stats.wbytes) * 100 / float64(t.total)
		fmt.Fprintf(&b, "%s: total = %d - [%6.2f%%]", t.name, t.total, percent)
	} else {
		fmt.Fprintf(&b, "%s: total = -", t.name)
	}
	fmt.Fprintf(&b, "   (r,w)=%s",
		formatAlign(4, "(%d,%d)", stats.rbytes, stats.wbytes))
	fmt.Fprintf(&b, "  ~  (%s,%s)",
		bytesize.Int64(stats.rbytes).HumanString(),
		bytesize.Int64(stats.wbytes).HumanString())
	log.Info(b.String())
}
