package Queues

import (
	"github.com/g-m-twostay/wlib/Lists"
)

var (
	_ Queue[int] = (*ArrayQueue[int])(nil)
	_ Queue[int] = (*ArrayStack[int])(nil)
)

// ArrayQueue is first in, first out. Pop shifts the remaining elements, so it costs O(Size()).
type ArrayQueue[T any] struct {
	content *Lists.List[T]
}

// MakeArrayQueue with room for initCap elements before it grows.
func MakeArrayQueue[T any](initCap int) (*ArrayQueue[T], error) {
	l, err := Lists.New[T](initCap)
	if err != nil {
		return nil, err
	}
	return &ArrayQueue[T]{l}, nil
}

func (u *ArrayQueue[T]) Push(item T) error {
	return u.content.AddLast(item)
}

func (u *ArrayQueue[T]) Pop() (item T, e error) {
	if u.content.IsEmpty() {
		return item, &EmptyQueueError{}
	}
	return u.content.RemoveFirst()
}

// Peek at the element Pop would return.
func (u *ArrayQueue[T]) Peek() (T, bool) {
	v, err := u.content.Get(0)
	return v, err == nil
}

func (u *ArrayQueue[T]) Empty() bool {
	return u.content.IsEmpty()
}

func (u *ArrayQueue[T]) Size() int {
	return u.content.Size()
}

func (u *ArrayQueue[T]) Clear() {
	u.content.Clear()
}

// ArrayStack is last in, first out; all operations are at the end of the list.
type ArrayStack[T any] struct {
	content *Lists.List[T]
}

// MakeArrayStack with room for initCap elements before it grows.
func MakeArrayStack[T any](initCap int) (*ArrayStack[T], error) {
	l, err := Lists.New[T](initCap)
	if err != nil {
		return nil, err
	}
	return &ArrayStack[T]{l}, nil
}

func (u *ArrayStack[T]) Push(item T) error {
	return u.content.AddLast(item)
}

func (u *ArrayStack[T]) Pop() (item T, e error) {
	if u.content.IsEmpty() {
		return item, &EmptyQueueError{}
	}
	return u.content.RemoveLast()
}

func (u *ArrayStack[T]) Peek() (T, bool) {
	v, err := u.content.Get(u.content.Size() - 1)
	return v, err == nil
}

func (u *ArrayStack[T]) Empty() bool {
	return u.content.IsEmpty()
}

func (u *ArrayStack[T]) Size() int {
	return u.content.Size()
}

func (u *ArrayStack[T]) Clear() {
	u.content.Clear()
}
