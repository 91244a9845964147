package iolib

import (
	"errors"

	"github.com/CodisLabs/codis/pkg/utils/assert"

	"github.com/CodisLabs/blockio/pkg/block"
)

func mustArgumentPanic(fn func()) {
	defer func() {
		x := recover()
		_, ok := x.(*ArgumentError)
		assert.Must(ok)
	}()
	fn()
}

// readerOnly hides every optional interface of r, so Copy takes the
// buffered path.
type readerOnly struct {
	r Reader
}

func (o readerOnly) Read(p block.Bytes) (int, error) {
	return o.r.Read(p)
}

// shortWriter accepts at most limit bytes per call.
type shortWriter struct {
	limit int
	data  []byte
}

func (w *shortWriter) Write(p block.Bytes) (int, error) {
	n := min(p.Len(), w.limit)
	w.data = append(w.data, p.SliceTo(0, n).Items()...)
	return n, nil
}

type faultyWriter struct {
	accept int
	err    error
}

func (w *faultyWriter) Write(p block.Bytes) (int, error) {
	return min(p.Len(), w.accept), w.err
}

type faultyReader struct {
	err error
}

func (r faultyReader) Read(p block.Bytes) (int, error) {
	return 0, r.err
}

var errFaulty = errors.New("faulty")

func bytesOf(s string) block.Bytes {
	return block.Wrap([]byte(s))
}

func readString(r Reader) (string, error) {
	var w = NewWriter(block.Bytes{})
	_, err := Copy(w, r)
	return string(w.Data().Items()), err
}
