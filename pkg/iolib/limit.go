package iolib

import (
	"github.com/CodisLabs/blockio/pkg/block"
)

// LimitedReader reads from R but stops with EOF after N bytes. Each call
// to Read updates N to the bytes left.
type LimitedReader struct {
	R Reader
	N int64
}

func LimitReader(r Reader, n int64) Reader {
	mustNotNil("reader", r)
	return &LimitedReader{R: r, N: n}
}

func (l *LimitedReader) Read(p block.Bytes) (int, error) {
	if l.N <= 0 {
		return 0, EOF
	}
	if int64(p.Len()) > l.N {
		p = p.SliceTo(0, int(l.N))
	}
	n, err := l.R.Read(p)
	if n > 0 {
		l.N -= int64(n)
	}
	return n, err
}
