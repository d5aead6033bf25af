// Package linkedlist implements a prepend-only singly-linked list whose nodes
// are linked by hand.
//
// Nodes live in an [arena.Arena] and refer to each other by [arena.Ref]. Every
// node is allocated by exactly one Push and released by exactly one Pop (or by
// Clear), and the arena asserts if a released node is ever touched again.
package linkedlist

import (
	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"

	"github.com/pwbh/unsafe-linked-list/arena"
)

type Node[T any] struct {
	value T
	next  arena.Ref
}

func newNode[T any](value T) Node[T] {
	return Node[T]{value: value, next: arena.Nil}
}

// List is a singly-linked list. The zero value is an empty list ready to use.
//
// head owns the chain of nodes. tail refers to the last node in that chain
// (the oldest element) without owning it. Both are Nil exactly when the list
// is empty.
//
// A List is not safe for concurrent use.
type List[T any] struct {
	nodes *arena.Arena[Node[T]]
	head  arena.Ref
	tail  arena.Ref
	len   uint64
	// bumped on every structural change, checked by iterators
	gen uint64
}

func New[T any]() *List[T] {
	return &List[T]{}
}

// Push makes value the new front of the list.
func (l *List[T]) Push(value T) {
	if l.nodes == nil {
		l.nodes = arena.New[Node[T]]()
	}
	n := newNode(value)
	n.next = l.head
	r := l.nodes.Alloc(n)
	if l.head == arena.Nil {
		// first node is also the last one
		l.tail = r
	}
	l.head = r
	l.len = std.SumAssumeNoOverflow(l.len, 1)
	l.gen++
}

// Pop removes the front of the list and returns its value. The boolean is
// false if the list was empty.
func (l *List[T]) Pop() (T, bool) {
	if l.head == arena.Nil {
		var zero T
		return zero, false
	}
	n := l.nodes.Free(l.head)
	l.head = n.next
	if l.head == arena.Nil {
		l.tail = arena.Nil
	}
	l.len--
	l.gen++
	primitive.Assert((l.head == arena.Nil) == (l.len == 0))
	return n.value, true
}

// Peek returns a copy of the front value without removing it.
func (l *List[T]) Peek() (T, bool) {
	if l.head == arena.Nil {
		var zero T
		return zero, false
	}
	return l.nodes.Get(l.head).value, true
}

// PeekMut returns a pointer to the front value, which may be written to update
// the element in place. The pointer must not be used after the next Push or
// Pop.
func (l *List[T]) PeekMut() (*T, bool) {
	if l.head == arena.Nil {
		return nil, false
	}
	return &l.nodes.Get(l.head).value, true
}

// PeekBack returns a copy of the oldest value in the list.
func (l *List[T]) PeekBack() (T, bool) {
	if l.tail == arena.Nil {
		var zero T
		return zero, false
	}
	return l.nodes.Get(l.tail).value, true
}

func (l *List[T]) Len() uint64 {
	return l.len
}

func (l *List[T]) IsEmpty() bool {
	return l.head == arena.Nil
}

// Clear releases every node, one Pop at a time, leaving an empty list.
func (l *List[T]) Clear() {
	for {
		_, ok := l.Pop()
		if !ok {
			break
		}
	}
}

// Values returns the elements from front to back.
func (l *List[T]) Values() []T {
	vals := make([]T, 0, l.len)
	for v := range l.All() {
		vals = append(vals, v)
	}
	return vals
}
