// Copyright 2016 CodisLabs. All Rights Reserved.
// Licensed under the MIT (MIT-LICENSE.txt) license.

package block

import (
	"fmt"
	"iter"
	"unsafe"
)

// Block is the whole or a part of an array: the elements in [start,end).
//
// Blocks never own their backing array. Any number of blocks may alias the
// same array and a mutation through one is visible through all of them.
type Block[T any] struct {
	array []T
	start int
	end   int
}

// Bytes is the block type every reader and writer moves data through.
type Bytes = Block[byte]

type RangeError struct {
	Op    string
	Index int
	Limit int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("block: %s out of range [%d] with limit %d", e.Op, e.Index, e.Limit)
}

func rangePanic(op string, index, limit int) {
	panic(&RangeError{Op: op, Index: index, Limit: limit})
}

// Wrap returns a block covering the whole of array.
func Wrap[T any](array []T) Block[T] {
	return Block[T]{array: array, end: len(array)}
}

// New returns the block array[start:end]. It panics with a *RangeError
// unless 0 <= start <= end <= len(array).
func New[T any](array []T, start, end int) Block[T] {
	switch {
	case start < 0:
		rangePanic("start", start, 0)
	case end < 0:
		rangePanic("end", end, 0)
	case end > len(array):
		rangePanic("end", end, len(array))
	case start > end:
		rangePanic("start", start, end)
	}
	return Block[T]{array: array, start: start, end: end}
}

// Make allocates a new array of the given capacity and returns a block over
// its first size elements.
func Make[T any](size, capacity int) Block[T] {
	if size < 0 {
		rangePanic("size", size, 0)
	}
	if capacity < size {
		rangePanic("capacity", capacity, size)
	}
	return Block[T]{array: make([]T, capacity), end: size}
}

func (b Block[T]) Array() []T {
	return b.array
}

func (b Block[T]) Offset() int {
	return b.start
}

func (b Block[T]) Len() int {
	return b.end - b.start
}

// Cap is the number of elements the block can grow by without reallocating.
func (b Block[T]) Cap() int {
	return len(b.array) - b.end
}

func (b Block[T]) Get(i int) T {
	if i < 0 || i >= b.Len() {
		rangePanic("index", i, b.Len())
	}
	return b.array[b.start+i]
}

func (b Block[T]) Set(i int, v T) {
	if i < 0 || i >= b.Len() {
		rangePanic("index", i, b.Len())
	}
	b.array[b.start+i] = v
}

// Slice returns the block from i to the end of b.
func (b Block[T]) Slice(i int) Block[T] {
	return b.SliceTo(i, b.Len())
}

// SliceTo returns the block [i,j) relative to the start of b. The end may
// reach into the spare capacity of b.
func (b Block[T]) SliceTo(i, j int) Block[T] {
	switch {
	case i < 0:
		rangePanic("slice start", i, 0)
	case j < i:
		rangePanic("slice end", j, i)
	case b.start+j > len(b.array):
		rangePanic("slice end", j, len(b.array)-b.start)
	}
	return Block[T]{array: b.array, start: b.start + i, end: b.start + j}
}

// CopyTo copies min(b.Len(), dst.Len()) elements into dst and returns the
// number copied.
func (b Block[T]) CopyTo(dst Block[T]) int {
	return copy(dst.Items(), b.Items())
}

// Items returns the elements of b as a slice sharing the backing array.
func (b Block[T]) Items() []T {
	return b.array[b.start:b.end:b.end]
}

func (b Block[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := b.start; i < b.end; i++ {
			if !yield(i-b.start, b.array[i]) {
				return
			}
		}
	}
}

// Equal reports whether b and o are views of the same array over the same
// range. The contents are not compared.
func (b Block[T]) Equal(o Block[T]) bool {
	return unsafe.SliceData(b.array) == unsafe.SliceData(o.array) &&
		len(b.array) == len(o.array) && b.start == o.start && b.end == o.end
}

func (b Block[T]) String() string {
	return fmt.Sprintf("block[%d:%d/%d]", b.start, b.end, len(b.array))
}

// Append appends elements to the end of b. If b has enough capacity the
// backing array is reused, otherwise a new one is allocated. The result
// must be stored, typically in the variable holding b:
//
//	b = b.Append(v1, v2)
func (b Block[T]) Append(v ...T) Block[T] {
	return b.AppendBlock(Wrap(v))
}

// AppendBlock is like Append but takes its elements from another block.
func (b Block[T]) AppendBlock(o Block[T]) Block[T] {
	var m = b.Len()
	var n = m + o.Len()
	if n > m+b.Cap() {
		grown := Wrap(make([]T, (n+1)*2))
		b.CopyTo(grown)
		b = grown
	}
	b = b.SliceTo(0, n)
	o.CopyTo(b.SliceTo(m, n))
	return b
}
