package iolib

import (
	"io"
	"math"

	"github.com/CodisLabs/blockio/pkg/block"
)

// SectionReader implements Read, Seek and ReadAt on the window
// [off, off+n) of an underlying ReaderAt.
type SectionReader struct {
	r     ReaderAt
	base  int64
	off   int64
	limit int64
}

// NewSectionReader returns a SectionReader that reads from r starting at
// offset off and stops with EOF after n bytes.
func NewSectionReader(r ReaderAt, off int64, n int64) *SectionReader {
	mustNotNil("reader", r)
	var limit int64
	if off <= math.MaxInt64-n {
		limit = off + n
	} else {
		limit = math.MaxInt64
	}
	return &SectionReader{r: r, base: off, off: off, limit: limit}
}

func (s *SectionReader) Read(p block.Bytes) (int, error) {
	if s.off >= s.limit {
		return 0, EOF
	}
	if max := s.limit - s.off; int64(p.Len()) > max {
		p = p.SliceTo(0, int(max))
	}
	n, err := s.r.ReadAt(p, s.off)
	s.off += int64(n)
	return n, err
}

// Seek returns the new offset relative to the start of the section.
func (s *SectionReader) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		offset += s.base
	case io.SeekCurrent:
		offset += s.off
	case io.SeekEnd:
		offset += s.limit
	default:
		return 0, ErrInvalidWhence
	}
	if offset < s.base {
		return 0, ErrInvalidOffset
	}
	s.off = offset
	return offset - s.base, nil
}

func (s *SectionReader) ReadAt(p block.Bytes, off int64) (int, error) {
	if off < 0 || off >= s.Size() {
		return 0, EOF
	}
	off += s.base
	if max := s.limit - off; int64(p.Len()) > max {
		n, err := s.r.ReadAt(p.SliceTo(0, int(max)), off)
		if err == nil {
			err = EOF
		}
		return n, err
	}
	return s.r.ReadAt(p, off)
}

// Size returns the size of the section in bytes.
func (s *SectionReader) Size() int64 {
	return s.limit - s.base
}
