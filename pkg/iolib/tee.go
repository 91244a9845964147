package iolib

import (
	"github.com/CodisLabs/blockio/pkg/block"
)

type teeReader struct {
	r Reader
	w Writer
}

// TeeReader returns a Reader that writes to w whatever it reads from r,
// before the read returns. A failed or short write to w is reported as the
// read's error, with the number of bytes w accepted.
func TeeReader(r Reader, w Writer) Reader {
	mustNotNil("reader", r)
	mustNotNil("writer", w)
	return &teeReader{r: r, w: w}
}

func (t *teeReader) Read(p block.Bytes) (int, error) {
	n, err := t.r.Read(p)
	if n > 0 {
		if nw, ew := t.w.Write(p.SliceTo(0, n)); ew != nil {
			return nw, ew
		} else if nw != n {
			return nw, ErrShortWrite
		}
	}
	return n, err
}
