package iolib

import (
	"io"

	"github.com/CodisLabs/blockio/pkg/block"
)

type streamReader struct {
	r io.Reader
}

// FromReader adapts a byte stream. A read of zero bytes into a non-empty
// block is reported as EOF; any other fault is returned as it is.
func FromReader(r io.Reader) Reader {
	mustNotNil("reader", r)
	if s, ok := r.(ioReader); ok {
		return s.r
	}
	return streamReader{r}
}

func (s streamReader) Read(p block.Bytes) (int, error) {
	n, err := s.r.Read(p.Items())
	if n == 0 && err == nil && p.Len() != 0 {
		return 0, EOF
	}
	return n, err
}

type streamWriter struct {
	w io.Writer
}

func FromWriter(w io.Writer) Writer {
	mustNotNil("writer", w)
	if s, ok := w.(ioWriter); ok {
		return s.w
	}
	return streamWriter{w}
}

func (s streamWriter) Write(p block.Bytes) (int, error) {
	return s.w.Write(p.Items())
}

type streamReaderAt struct {
	r io.ReaderAt
}

func FromReaderAt(r io.ReaderAt) ReaderAt {
	mustNotNil("reader", r)
	return streamReaderAt{r}
}

func (s streamReaderAt) ReadAt(p block.Bytes, off int64) (int, error) {
	return s.r.ReadAt(p.Items(), off)
}

type ioReader struct {
	r Reader
}

// AsReader lets the standard library read from r.
func AsReader(r Reader) io.Reader {
	mustNotNil("reader", r)
	if s, ok := r.(streamReader); ok {
		return s.r
	}
	return ioReader{r}
}

func (s ioReader) Read(p []byte) (int, error) {
	return s.r.Read(block.Wrap(p))
}

type ioWriter struct {
	w Writer
}

// AsWriter lets the standard library write to w.
func AsWriter(w Writer) io.Writer {
	mustNotNil("writer", w)
	if s, ok := w.(streamWriter); ok {
		return s.w
	}
	return ioWriter{w}
}

func (s ioWriter) Write(p []byte) (int, error) {
	return s.w.Write(block.Wrap(p))
}
