package pipe

import (
	"context"

	"github.com/CodisLabs/blockio/pkg/block"
	"github.com/CodisLabs/blockio/pkg/iolib"
)

type Reader interface {
	iolib.ReadCloser
	iolib.AsyncReader
	Buffered() (int, error)
	CloseWithError(err error) error
}

type Writer interface {
	iolib.WriteCloser
	iolib.AsyncWriter
	CloseWithError(err error) error
}

var (
	_ Reader = (*PipeReader)(nil)
	_ Writer = (*PipeWriter)(nil)
)

// PipeReader is the read half of a pipe. Async reads are completed in the
// order they were issued.
type PipeReader struct {
	p     *Pipe
	async iolib.Queue
}

func (r *PipeReader) Read(b block.Bytes) (int, error) {
	return r.p.Read(b)
}

func (r *PipeReader) ReadAsync(b block.Bytes) <-chan iolib.Result {
	return r.async.Go(func() (int, error) {
		return r.p.Read(b)
	})
}

func (r *PipeReader) Buffered() (int, error) {
	return r.p.Buffered()
}

func (r *PipeReader) Close() error {
	return r.p.CloseReader(nil)
}

func (r *PipeReader) CloseWithError(err error) error {
	return r.p.CloseReader(err)
}

// PipeWriter is the write half of a pipe. Async writes are offered to the
// reader in the order they were issued. Close does not wait for them; a
// write still queued when the writer closes fails with ErrClosedPipe.
type PipeWriter struct {
	p     *Pipe
	async iolib.Queue
}

func (w *PipeWriter) Write(b block.Bytes) (int, error) {
	return w.p.Write(b)
}

func (w *PipeWriter) WriteAsync(b block.Bytes) <-chan iolib.Result {
	return w.async.Go(func() (int, error) {
		return w.p.Write(b)
	})
}

func (w *PipeWriter) Close() error {
	return w.p.CloseWriter(nil)
}

func (w *PipeWriter) CloseWithError(err error) error {
	return w.p.CloseWriter(err)
}

// New creates a connected pipe. Closing one half does not release the
// other; each side is closed on its own.
func New() (*PipeReader, *PipeWriter) {
	var p = NewPipe()
	return p.Reader(), p.Writer()
}

// CloseOnCancel closes c with the cause of ctx once ctx is done. Calling
// the returned stop function detaches c; it reports whether it did so before
// c was closed.
func CloseOnCancel(ctx context.Context, c interface{ CloseWithError(error) error }) (stop func() bool) {
	return context.AfterFunc(ctx, func() {
		c.CloseWithError(context.Cause(ctx))
	})
}
