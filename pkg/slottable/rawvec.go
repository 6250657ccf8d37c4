package slottable

import "golang.org/x/sys/cpu"

// Allocator is the thin allocation abstraction a [Vector] is built against.
// The default, used when nil is passed to [NewVector], is backed by Go's
// runtime allocator and is sufficient for every variant in this package;
// implement it to observe allocation counts in tests or redirect storage to
// an arena.
type Allocator[T any] interface {
	Allocate(n int) []T
}

type defaultAllocator[T any] struct{}

func (defaultAllocator[T]) Allocate(n int) []T { return make([]T, n) }

// Vector is the scoped raw-value vector: a contiguous buffer with doubling
// growth, grown by explicit reallocate-and-copy through an [Allocator]
// rather than relying on append's own growth (which would bypass it).
//
// In the original this type exists to skip constructor/destructor calls for
// trivially-copyable element types; Go has no destructors to skip, so
// Vector is used whatever T is. In this package it backs [Packed]'s dense
// value array; the sparse variants keep their slots in plain slices.
type Vector[T any] struct {
	_     cpu.CacheLinePad
	alloc Allocator[T]
	data  []T
}

// NewVector constructs an empty [Vector]. A nil alloc uses Go's runtime
// allocator.
func NewVector[T any](alloc Allocator[T]) *Vector[T] {
	if alloc == nil {
		alloc = defaultAllocator[T]{}
	}
	return &Vector[T]{alloc: alloc}
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return len(v.data) }

// Cap returns the allocated capacity.
func (v *Vector[T]) Cap() int { return cap(v.data) }

// At returns a pointer to the element at i. i must be < Len.
func (v *Vector[T]) At(i int) *T { return &v.data[i] }

// Push appends value and returns its index.
func (v *Vector[T]) Push(value T) int {
	v.growTo(len(v.data) + 1)
	v.data = v.data[:len(v.data)+1]
	v.data[len(v.data)-1] = value
	return len(v.data) - 1
}

// Emplace appends a zero value, lets build initialize it in place, and
// returns its index.
func (v *Vector[T]) Emplace(build func(*T)) int {
	var zero T
	idx := v.Push(zero)
	build(v.At(idx))
	return idx
}

// PopBack removes and returns the last element.
func (v *Vector[T]) PopBack() T {
	n := len(v.data) - 1
	value := v.data[n]
	v.data = v.data[:n]
	return value
}

// Truncate shrinks the vector to n elements, discarding the rest.
func (v *Vector[T]) Truncate(n int) { v.data = v.data[:n] }

// Reset empties the vector without releasing its backing storage.
func (v *Vector[T]) Reset() { v.data = v.data[:0] }

func (v *Vector[T]) growTo(n int) {
	if n <= cap(v.data) {
		return
	}
	newCap := cap(v.data) * 2
	if newCap < n {
		newCap = n
	}
	if newCap < 4 {
		newCap = 4
	}
	if v.alloc == nil {
		v.alloc = defaultAllocator[T]{}
	}
	buf := v.alloc.Allocate(newCap)
	copy(buf, v.data)
	v.data = buf[:len(v.data)]
}
