// Copyright 2016 CodisLabs. All Rights Reserved.
// Licensed under the MIT (MIT-LICENSE.txt) license.

// Package pipe is a synchronous in-memory pipe. Every Write blocks until
// one or more Reads have consumed all of its data; nothing is buffered in
// between.
package pipe

import (
	"sync"

	"github.com/CodisLabs/codis/pkg/utils/assert"

	"github.com/CodisLabs/blockio/pkg/block"
	"github.com/CodisLabs/blockio/pkg/iolib"
)

// role serializes the callers on one side of the pipe. Holding it is what
// guarantees a single waiter on cond.
type role struct {
	sync.Mutex
	cond    *sync.Cond
	err     error
	waiting bool
}

// waitLocked must be called with both the role lock and p.mu held.
func (r *role) waitLocked() {
	assert.Must(!r.waiting)
	r.waiting = true
	r.cond.Wait()
	r.waiting = false
}

type Pipe struct {
	rd, wt role
	mu     sync.Mutex

	// data is the part of the current write not yet consumed.
	data block.Bytes

	reader *PipeReader
	writer *PipeWriter
}

func NewPipe() *Pipe {
	p := &Pipe{}
	p.rd.cond = sync.NewCond(&p.mu)
	p.wt.cond = sync.NewCond(&p.mu)
	p.reader = &PipeReader{p: p}
	p.writer = &PipeWriter{p: p}
	return p
}

func (p *Pipe) Close() {
	p.CloseReader(nil)
	p.CloseWriter(nil)
}

func (p *Pipe) Reader() *PipeReader {
	return p.reader
}

func (p *Pipe) Read(b block.Bytes) (int, error) {
	p.rd.Lock()
	defer p.rd.Unlock()
	p.mu.Lock()
	defer p.mu.Unlock()
	for {
		if p.rd.err != nil {
			return 0, iolib.ErrClosedPipe
		}
		if p.data.Len() != 0 {
			break
		}
		if p.wt.err != nil {
			return 0, p.wt.err
		}
		p.rd.waitLocked()
	}
	n := p.data.CopyTo(b)
	p.data = p.data.Slice(n)
	if p.data.Len() == 0 {
		p.data = block.Bytes{}
		p.wt.cond.Signal()
	}
	return n, nil
}

// Buffered returns the number of bytes offered by the blocked writer that
// have not been read yet.
func (p *Pipe) Buffered() (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.rd.err != nil {
		return 0, p.rd.err
	}
	if n := p.data.Len(); n != 0 {
		return n, nil
	}
	return 0, p.wt.err
}

// CloseReader closes the read side. Blocked and future writes fail with
// err, or ErrClosedPipe when err is nil. Only the first close sets the error.
func (p *Pipe) CloseReader(err error) error {
	if err == nil {
		err = iolib.ErrClosedPipe
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.rd.err == nil {
		p.rd.err = err
	}
	p.rd.cond.Broadcast()
	p.wt.cond.Broadcast()
	return nil
}

func (p *Pipe) Writer() *PipeWriter {
	return p.writer
}

func (p *Pipe) Write(b block.Bytes) (int, error) {
	p.wt.Lock()
	defer p.wt.Unlock()
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.wt.err != nil {
		return 0, iolib.ErrClosedPipe
	}
	p.data = b
	p.rd.cond.Signal()

	var err error
	for p.data.Len() != 0 {
		if p.rd.err != nil {
			err = p.rd.err
			break
		}
		if p.wt.err != nil {
			err = iolib.ErrClosedPipe
			break
		}
		p.wt.waitLocked()
	}
	n := b.Len() - p.data.Len()
	p.data = block.Bytes{}
	return n, err
}

// CloseWriter closes the write side. A blocked write returns with
// ErrClosedPipe and reads fail with err, or EOF when err is nil, once no
// data is offered. Only the first close sets the error.
func (p *Pipe) CloseWriter(err error) error {
	if err == nil {
		err = iolib.EOF
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.wt.err == nil {
		p.wt.err = err
	}
	p.rd.cond.Broadcast()
	p.wt.cond.Broadcast()
	return nil
}
