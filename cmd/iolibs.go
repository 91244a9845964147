package main

import (
	"io"
	"sync"

	"github.com/CodisLabs/codis/pkg/utils/bufio2"
	"github.com/CodisLabs/codis/pkg/utils/log"
	"github.com/CodisLabs/codis/pkg/utils/sync2/atomic2"

	"github.com/CodisLabs/blockio/pkg/block"
	"github.com/CodisLabs/blockio/pkg/iolib"
)

type ReaderBuilder struct {
	iolib.Reader
}

func rBuilder(r iolib.Reader) *ReaderBuilder {
	return &ReaderBuilder{r}
}

func rStream(r io.Reader) *ReaderBuilder {
	return rBuilder(iolib.FromReader(r))
}

func (b *ReaderBuilder) Must() *ReaderBuilder {
	b.Reader = &MustReader{b.Reader}
	return b
}

func (b *ReaderBuilder) Count(p *atomic2.Int64) *ReaderBuilder {
	b.Reader = &CountReader{b.Reader, p}
	return b
}

func (b *ReaderBuilder) Limit(n int64) *ReaderBuilder {
	b.Reader = iolib.LimitReader(b.Reader, n)
	return b
}

func (b *ReaderBuilder) Tee(w iolib.Writer) *ReaderBuilder {
	b.Reader = iolib.TeeReader(b.Reader, w)
	return b
}

func (b *ReaderBuilder) Buffer2(size int) *ReaderBuilder {
	b.Reader = iolib.FromReader(bufio2.NewReaderSize(iolib.AsReader(b.Reader), size))
	return b
}

// MustReader panics on every fault except the end of the stream.
type MustReader struct {
	iolib.Reader
}

func (r *MustReader) Read(b block.Bytes) (int, error) {
	n, err := r.Reader.Read(b)
	if err != nil && err != iolib.EOF {
		log.PanicErrorf(err, "read bytes failed")
	}
	return n, err
}

type CountReader struct {
	iolib.Reader
	N *atomic2.Int64
}

func (r *CountReader) Read(b block.Bytes) (int, error) {
	n, err := r.Reader.Read(b)
	r.N.Add(int64(n))
	return n, err
}

type WriterBuilder struct {
	iolib.Writer

	// Flusher is the last buffer added by Buffer2.
	Flusher *bufio2.Writer
}

func wBuilder(w iolib.Writer) *WriterBuilder {
	return &WriterBuilder{Writer: w}
}

func wStream(w io.Writer) *WriterBuilder {
	return wBuilder(iolib.FromWriter(w))
}

func (b *WriterBuilder) Must() *WriterBuilder {
	b.Writer = &MustWriter{b.Writer}
	return b
}

func (b *WriterBuilder) Count(p *atomic2.Int64) *WriterBuilder {
	b.Writer = &CountWriter{b.Writer, p}
	return b
}

func (b *WriterBuilder) Mutex(l sync.Locker) *WriterBuilder {
	b.Writer = &MutexWriter{b.Writer, l}
	return b
}

func (b *WriterBuilder) Buffer2(size int) *WriterBuilder {
	b.Flusher = bufio2.NewWriterSize(iolib.AsWriter(b.Writer), size)
	b.Writer = iolib.FromWriter(b.Flusher)
	return b
}

type MustWriter struct {
	iolib.Writer
}

func (w *MustWriter) Write(b block.Bytes) (int, error) {
	n, err := w.Writer.Write(b)
	if err != nil {
		log.PanicErrorf(err, "write bytes failed")
	}
	return n, nil
}

type CountWriter struct {
	iolib.Writer
	N *atomic2.Int64
}

func (w *CountWriter) Write(b block.Bytes) (int, error) {
	n, err := w.Writer.Write(b)
	w.N.Add(int64(n))
	return n, err
}

type MutexWriter struct {
	iolib.Writer
	L sync.Locker
}

func (w *MutexWriter) Write(b block.Bytes) (int, error) {
	w.L.Lock()
	n, err := w.Writer.Write(b)
	w.L.Unlock()
	return n, err
}
