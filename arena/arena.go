// Package arena stores values in index-addressed slots.
//
// An Arena plays the role of the heap for a hand-linked data structure: Alloc
// takes ownership of a value and returns a Ref to it, and Free hands the value
// back and makes the slot available again. Links between values are Refs
// rather than pointers, so a released slot can be checked for on every access
// instead of silently dangling.
package arena

import (
	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
)

// ChunkSize is the number of slots allocated at once when the arena grows.
const ChunkSize = 64

// Ref addresses a slot in an Arena. Real slots are numbered from 1, so the
// zero Ref is Nil.
type Ref uint64

// Nil refers to no slot.
const Nil Ref = 0

type slot[T any] struct {
	val  T
	live bool
}

// Arena is a slot allocator with a free list. Slots live in fixed-size chunks
// that are never reallocated, so a pointer returned by Get stays valid until
// its slot is freed.
//
// An Arena is not safe for concurrent use.
type Arena[T any] struct {
	chunks [][]slot[T]
	free   []Ref
	// number of slots ever carved out of chunks
	used   uint64
	allocs uint64
	frees  uint64
}

func New[T any]() *Arena[T] {
	return &Arena[T]{}
}

func (a *Arena[T]) slot(r Ref) *slot[T] {
	primitive.Assert(r != Nil)
	i := uint64(r) - 1
	primitive.Assert(i < a.used)
	return &a.chunks[i/ChunkSize][i%ChunkSize]
}

// Alloc moves v into a free slot and returns a reference to it. Slots on the
// free list are reused before the arena grows.
func (a *Arena[T]) Alloc(v T) Ref {
	var r Ref
	if n := len(a.free); n > 0 {
		r = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		if a.used%ChunkSize == 0 {
			a.chunks = append(a.chunks, make([]slot[T], ChunkSize))
		}
		a.used++
		r = Ref(a.used)
	}
	s := a.slot(r)
	primitive.Assert(!s.live)
	s.val = v
	s.live = true
	a.allocs = std.SumAssumeNoOverflow(a.allocs, 1)
	return r
}

// Get returns a pointer to the value in slot r, which must be live.
func (a *Arena[T]) Get(r Ref) *T {
	s := a.slot(r)
	// use after free
	primitive.Assert(s.live)
	return &s.val
}

// Free releases slot r and returns the value it held. Freeing a slot that is
// not live panics.
func (a *Arena[T]) Free(r Ref) T {
	s := a.slot(r)
	// double free
	primitive.Assert(s.live)
	v := s.val
	var zero T
	s.val = zero
	s.live = false
	a.free = append(a.free, r)
	a.frees = std.SumAssumeNoOverflow(a.frees, 1)
	return v
}

// IsLive reports whether r refers to an allocated slot.
func (a *Arena[T]) IsLive(r Ref) bool {
	if r == Nil || uint64(r) > a.used {
		return false
	}
	return a.slot(r).live
}

// Allocs is the total number of successful calls to Alloc.
func (a *Arena[T]) Allocs() uint64 {
	return a.allocs
}

// Frees is the total number of successful calls to Free.
func (a *Arena[T]) Frees() uint64 {
	return a.frees
}

// Live is the number of slots currently allocated.
func (a *Arena[T]) Live() uint64 {
	return a.allocs - a.frees
}
