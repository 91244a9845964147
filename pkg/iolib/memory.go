package iolib

import (
	"github.com/CodisLabs/blockio/pkg/block"
)

// MemoryReader reads from a block. It also serves ReadAt over the whole
// block, independent of how much has been read.
type MemoryReader struct {
	data block.Bytes
	off  int

	async Queue
}

func NewReader(data block.Bytes) *MemoryReader {
	return &MemoryReader{data: data}
}

func ReaderFromBytes(b []byte) *MemoryReader {
	return NewReader(block.Wrap(b))
}

// Len returns the number of unread bytes.
func (r *MemoryReader) Len() int {
	return r.data.Len() - r.off
}

func (r *MemoryReader) Size() int64 {
	return int64(r.data.Len())
}

func (r *MemoryReader) Read(p block.Bytes) (int, error) {
	if r.Len() == 0 {
		return 0, EOF
	}
	n := r.data.Slice(r.off).CopyTo(p)
	r.off += n
	return n, nil
}

func (r *MemoryReader) ReadAsync(p block.Bytes) <-chan Result {
	return r.async.Go(func() (int, error) {
		return r.Read(p)
	})
}

func (r *MemoryReader) ReadAt(p block.Bytes, off int64) (int, error) {
	if off < 0 {
		return 0, ErrInvalidOffset
	}
	if off >= int64(r.data.Len()) {
		return 0, EOF
	}
	n := r.data.Slice(int(off)).CopyTo(p)
	if n < p.Len() {
		return n, EOF
	}
	return n, nil
}

func (r *MemoryReader) WriteTo(w Writer) (int64, error) {
	if r.Len() == 0 {
		return 0, nil
	}
	var rest = r.data.Slice(r.off)
	n, err := w.Write(rest)
	if n < 0 || n > rest.Len() {
		n = 0
	}
	r.off += n
	if err != nil {
		return int64(n), err
	}
	if n != rest.Len() {
		return int64(n), ErrShortWrite
	}
	return int64(n), nil
}

// MemoryWriter appends everything written to it to a block.
type MemoryWriter struct {
	data block.Bytes

	async Queue
}

// NewWriter returns a writer that appends to data, reusing its spare
// capacity before growing.
func NewWriter(data block.Bytes) *MemoryWriter {
	return &MemoryWriter{data: data}
}

func (w *MemoryWriter) Data() block.Bytes {
	return w.data
}

func (w *MemoryWriter) Write(p block.Bytes) (int, error) {
	w.data = w.data.AppendBlock(p)
	return p.Len(), nil
}

func (w *MemoryWriter) WriteAsync(p block.Bytes) <-chan Result {
	return w.async.Go(func() (int, error) {
		return w.Write(p)
	})
}
