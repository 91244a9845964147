package iolib

import (
	"sync"

	"github.com/CodisLabs/blockio/pkg/block"
)

// AsyncReader is implemented by readers with a non-blocking call form. The
// returned channel delivers exactly one Result, the same one Read would
// have returned.
type AsyncReader interface {
	ReadAsync(p block.Bytes) <-chan Result
}

type AsyncWriter interface {
	WriteAsync(p block.Bytes) <-chan Result
}

// Queue runs asynchronous calls one at a time, in the order they were
// issued. A handle embeds a Queue so that two ReadAsync calls complete in
// the same order two Read calls would. Blocking calls made while async
// calls are pending are not ordered against them.
//
// The zero value is ready to use.
type Queue struct {
	mu   sync.Mutex
	tail chan struct{}
}

func (q *Queue) Go(fn func() (int, error)) <-chan Result {
	return schedule(q, func() Result {
		n, err := fn()
		return Result{n, err}
	})
}

func (q *Queue) GoLong(fn func() (int64, error)) <-chan LongResult {
	return schedule(q, func() LongResult {
		n, err := fn()
		return LongResult{n, err}
	})
}

// Pending reports whether any call is still queued or running.
func (q *Queue) Pending() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.tail == nil {
		return false
	}
	select {
	case <-q.tail:
		return false
	default:
		return true
	}
}

// schedule runs fn after every call issued before it on q. A nil q runs fn
// right away on its own goroutine.
func schedule[R any](q *Queue, fn func() R) <-chan R {
	var prev, done chan struct{}
	if q != nil {
		done = make(chan struct{})
		q.mu.Lock()
		prev, q.tail = q.tail, done
		q.mu.Unlock()
	}
	var c = make(chan R, 1)
	go func() {
		if prev != nil {
			<-prev
		}
		r := fn()
		if done != nil {
			close(done)
		}
		c <- r
	}()
	return c
}

// ReadAsync uses the native asynchronous form of r when it has one.
// Otherwise the read runs on a goroutine of its own and the caller must
// not issue another call on r before the result arrives.
func ReadAsync(r Reader, p block.Bytes) <-chan Result {
	mustNotNil("reader", r)
	if ar, ok := r.(AsyncReader); ok {
		return ar.ReadAsync(p)
	}
	return (*Queue)(nil).Go(func() (int, error) {
		return r.Read(p)
	})
}

func WriteAsync(w Writer, p block.Bytes) <-chan Result {
	mustNotNil("writer", w)
	if aw, ok := w.(AsyncWriter); ok {
		return aw.WriteAsync(p)
	}
	return (*Queue)(nil).Go(func() (int, error) {
		return w.Write(p)
	})
}
