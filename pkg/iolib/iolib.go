// Copyright 2016 CodisLabs. All Rights Reserved.
// Licensed under the MIT (MIT-LICENSE.txt) license.

// Package iolib moves bytes between readers and writers through blocks.
//
// A Reader fills the destination block it is given and a Writer drains the
// source block it is given; neither keeps the block after the call returns.
// Every operation reports the number of bytes transferred together with an
// error, and both must be consulted: n > 0 with a non-nil error means some
// progress happened before the failure.
package iolib

import (
	"fmt"
	"io"

	"github.com/CodisLabs/codis/pkg/utils/errors"

	"github.com/CodisLabs/blockio/pkg/block"
)

// DefaultBufferSize is the scratch buffer used by Copy when none is given.
const DefaultBufferSize = 32 * 1024

// The sentinels are the standard library values, so adapters over io types
// need no translation and callers compare them by identity.
var (
	// EOF means no more data will ever be produced by the reader.
	EOF = io.EOF
	// ErrShortWrite means a writer accepted fewer bytes than it was given.
	ErrShortWrite = io.ErrShortWrite
	// ErrClosedPipe is returned by operations on a closed pipe side.
	ErrClosedPipe = io.ErrClosedPipe
)

var (
	ErrInvalidWhence = errors.New("Seek: invalid whence")
	ErrInvalidOffset = errors.New("Seek: invalid offset")
)

// Reader reads up to p.Len() bytes into p. It may return fewer bytes than
// requested without an error, so callers loop. It returns (0, EOF) only when
// the stream has ended. An empty p is not an end of stream.
type Reader interface {
	Read(p block.Bytes) (n int, err error)
}

// Writer writes all of p or reports how much was written and why it
// stopped. Implementations must not modify p.
type Writer interface {
	Write(p block.Bytes) (n int, err error)
}

type Closer interface {
	Close() error
}

type ReadCloser interface {
	Reader
	Closer
}

type WriteCloser interface {
	Writer
	Closer
}

// ReaderAt reads from an absolute offset of a random-access source. It must
// return a non-nil error when n < p.Len().
type ReaderAt interface {
	ReadAt(p block.Bytes, off int64) (n int, err error)
}

// Seeker uses the io.SeekStart, io.SeekCurrent and io.SeekEnd origins.
type Seeker interface {
	Seek(offset int64, whence int) (int64, error)
}

type ReadSeeker interface {
	Reader
	Seeker
}

// WriterTo is an optional fast path used by Copy.
type WriterTo interface {
	WriteTo(w Writer) (n int64, err error)
}

// Result is the outcome of a single read or write.
type Result struct {
	N   int
	Err error
}

func (r Result) Unpack() (int, error) {
	return r.N, r.Err
}

// LongResult is the outcome of a copy.
type LongResult struct {
	N   int64
	Err error
}

func (r LongResult) Unpack() (int64, error) {
	return r.N, r.Err
}

// ArgumentError is the panic value for a missing or unusable argument.
type ArgumentError struct {
	Name   string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("iolib: argument %s is %s", e.Name, e.Reason)
}

func mustNotNil(name string, v any) {
	if v == nil {
		panic(&ArgumentError{Name: name, Reason: "nil"})
	}
}
