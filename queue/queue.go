// Package queue builds a FIFO queue out of two prepend-only lists.
package queue

import "github.com/pwbh/unsafe-linked-list/linkedlist"

// Queue is a first-in first-out queue. Pushes go onto back; pops come off
// front, which is refilled by reversing back only once it runs dry.
type Queue[T any] struct {
	back  *linkedlist.List[T]
	front *linkedlist.List[T]
}

func New[T any]() Queue[T] {
	return Queue[T]{
		back:  linkedlist.New[T](),
		front: linkedlist.New[T](),
	}
}

func (q Queue[T]) Push(x T) {
	q.back.Push(x)
}

func (q Queue[T]) emptyBack() {
	for {
		x, ok := q.back.Pop()
		if ok {
			q.front.Push(x)
		} else {
			break
		}
	}
}

// Pop returns the oldest element. The boolean is false if the queue was empty.
func (q Queue[T]) Pop() (T, bool) {
	x, ok := q.front.Pop()
	if ok {
		return x, true
	}
	q.emptyBack()
	return q.front.Pop()
}

func (q Queue[T]) Len() uint64 {
	return q.back.Len() + q.front.Len()
}

// Clear releases every element still queued.
func (q Queue[T]) Clear() {
	q.back.Clear()
	q.front.Clear()
}
