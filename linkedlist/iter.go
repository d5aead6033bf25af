package linkedlist

import (
	"iter"

	"github.com/pwbh/unsafe-linked-list/arena"
)

// ListIter walks a List from front to back. It only reads nodes; the list
// must not be pushed to or popped from while an iterator over it is in use,
// and Next panics if it was.
type ListIter[T any] struct {
	list *List[T]
	next arena.Ref
	gen  uint64
}

// Iter returns an iterator starting at the front of l. The iterator over an
// empty list is already exhausted.
func (l *List[T]) Iter() *ListIter[T] {
	return &ListIter[T]{list: l, next: l.head, gen: l.gen}
}

// Next returns the next value, or false once every element has been yielded.
func (it *ListIter[T]) Next() (T, bool) {
	if it.next == arena.Nil {
		var zero T
		return zero, false
	}
	if it.gen != it.list.gen {
		panic("linkedlist: list modified during iteration")
	}
	n := it.list.nodes.Get(it.next)
	it.next = n.next
	return n.value, true
}

// All returns an iterator over the values of l, front to back, for use with
// range.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.Iter()
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
