package iolib

import (
	"github.com/CodisLabs/blockio/pkg/block"
)

// Copy copies from src to dst until either EOF is reached on src or an
// error occurs. It returns the number of bytes written and the first error
// encountered; reaching EOF is not an error.
func Copy(dst Writer, src Reader) (written int64, err error) {
	return copyBuffer(dst, src, block.Bytes{})
}

// CopyBuffer is like Copy but stages through buf. A zero block selects a
// DefaultBufferSize buffer; a non-nil empty one panics.
func CopyBuffer(dst Writer, src Reader, buf block.Bytes) (written int64, err error) {
	if buf.Array() != nil && buf.Len() == 0 {
		panic(&ArgumentError{Name: "buf", Reason: "empty"})
	}
	return copyBuffer(dst, src, buf)
}

// CopyN copies n bytes, or until an error, from src to dst. On return
// written == n if and only if err == nil; a source that ends early yields
// EOF.
func CopyN(dst Writer, src Reader, n int64) (written int64, err error) {
	mustNotNil("reader", src)
	written, err = Copy(dst, LimitReader(src, n))
	if written == n {
		return n, nil
	}
	if written < n && err == nil {
		return written, EOF
	}
	return written, err
}

func CopyAsync(dst Writer, src Reader) <-chan LongResult {
	return (*Queue)(nil).GoLong(func() (int64, error) {
		return Copy(dst, src)
	})
}

func CopyNAsync(dst Writer, src Reader, n int64) <-chan LongResult {
	return (*Queue)(nil).GoLong(func() (int64, error) {
		return CopyN(dst, src, n)
	})
}

func copyBuffer(dst Writer, src Reader, buf block.Bytes) (written int64, err error) {
	mustNotNil("writer", dst)
	mustNotNil("reader", src)
	if wt, ok := src.(WriterTo); ok {
		written, err = wt.WriteTo(dst)
		if err == EOF {
			err = nil
		}
		return written, err
	}
	if buf.Len() == 0 {
		buf = block.Make[byte](DefaultBufferSize, DefaultBufferSize)
	}
	for {
		nr, er := src.Read(buf)
		if nr > 0 {
			nw, ew := dst.Write(buf.SliceTo(0, nr))
			if nw < 0 || nw > nr {
				nw = 0
				if ew == nil {
					ew = ErrShortWrite
				}
			}
			written += int64(nw)
			if ew != nil {
				return written, ew
			}
			if nw != nr {
				return written, ErrShortWrite
			}
		}
		if er == EOF {
			return written, nil
		}
		if er != nil {
			return written, er
		}
	}
}
