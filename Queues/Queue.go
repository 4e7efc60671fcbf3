// Package Queues builds a FIFO queue and a LIFO stack on Lists.List.
package Queues

import "github.com/g-m-twostay/wlib"

// Queue is the operation set of both ArrayQueue and ArrayStack. Push and Pop pick the end by discipline.
type Queue[T any] interface {
	Push(item T) error
	Pop() (T, error)
	Peek() (T, bool)
	Empty() bool
	Size() int
	Clear()
}

// EmptyQueueError is returned by Pop on an empty queue. It is a wlib.ValidationFailure.
type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "queue is empty: cannot Pop"
}

func (e *EmptyQueueError) Unwrap() error {
	return wlib.ValidationFailure
}
