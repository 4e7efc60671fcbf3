// Package Lists implements List, a growable sequence backed by one contiguous buffer.
//
// Appending is amortized O(1): when the buffer is full its capacity doubles, so n appends copy at most 2n elements.
// Inserting or removing at an arbitrary position shifts the tail and costs O(Size()).
// Capacity never shrinks on removal.
package Lists

import (
	"github.com/g-m-twostay/wlib"
)

// DefaultCapacity of a List created by Make.
const DefaultCapacity = 16

// List is an ordered sequence of T; an element's identity is its position.
// The zero value isn't usable; create one with New or Make.
type List[T any] struct {
	content []T //len(content) is the capacity.
	sz      int
	closed  bool
}

// New List with room for capacity elements before the first growth.
func New[T any](capacity int) (*List[T], error) {
	if capacity < 0 {
		return nil, wlib.Invalid("List.New: negative capacity %d", capacity)
	}
	content, err := wlib.Alloc[T](capacity)
	if err != nil {
		return nil, err
	}
	return &List[T]{content: content}, nil
}

// Make a List with DefaultCapacity.
func Make[T any]() *List[T] {
	return &List[T]{content: make([]T, DefaultCapacity)}
}

func (u *List[T]) Size() int {
	return u.sz
}

func (u *List[T]) Capacity() int {
	return len(u.content)
}

func (u *List[T]) IsEmpty() bool {
	return u.sz == 0
}

// grow doubles the capacity, or makes it 1 if it was 0.
func (u *List[T]) grow() error {
	nc, err := wlib.Alloc[T](max(len(u.content)<<1, 1))
	if err != nil {
		return err
	}
	copy(nc, u.content[:u.sz])
	u.content = nc
	return nil
}

func (u *List[T]) Get(i int) (v T, err error) {
	if u.closed {
		return v, wlib.Closed("List.Get")
	}
	if err = wlib.CheckIndex("List.Get", i, u.sz); err == nil {
		v = u.content[i]
	}
	return
}

func (u *List[T]) Set(i int, v T) error {
	if u.closed {
		return wlib.Closed("List.Set")
	}
	if err := wlib.CheckIndex("List.Set", i, u.sz); err != nil {
		return err
	}
	u.content[i] = v
	return nil
}

// Add v at position i, 0<=i<=Size(). Elements from i onward move one position back.
func (u *List[T]) Add(i int, v T) error {
	if u.closed {
		return wlib.Closed("List.Add")
	}
	if i < 0 || i > u.sz {
		return wlib.Invalid("List.Add: index %d out of range [0,%d]", i, u.sz)
	}
	if u.sz == len(u.content) {
		if err := u.grow(); err != nil {
			return err
		}
	}
	copy(u.content[i+1:u.sz+1], u.content[i:u.sz])
	u.content[i] = v
	u.sz++
	return nil
}

// Remove the element at position i, 0<=i<Size(), and return it. Elements after i move one position forward.
func (u *List[T]) Remove(i int) (v T, err error) {
	if u.closed {
		return v, wlib.Closed("List.Remove")
	}
	if err = wlib.CheckIndex("List.Remove", i, u.sz); err != nil {
		return
	}
	v = u.content[i]
	copy(u.content[i:u.sz-1], u.content[i+1:u.sz])
	u.sz--
	u.content[u.sz] = *new(T) //don't keep the removed value reachable.
	return
}

func (u *List[T]) AddFirst(v T) error {
	return u.Add(0, v)
}

func (u *List[T]) AddLast(v T) error {
	return u.Add(u.sz, v)
}

func (u *List[T]) RemoveFirst() (T, error) {
	return u.Remove(0)
}

func (u *List[T]) RemoveLast() (T, error) {
	return u.Remove(u.sz - 1)
}

// Clear removes all elements but keeps the capacity.
func (u *List[T]) Clear() {
	clear(u.content[:u.sz])
	u.sz = 0
}

// Close releases the buffer. The list can't be used afterward; a second Close fails with wlib.ErrClosed.
func (u *List[T]) Close() error {
	if u.closed {
		return wlib.Closed("List.Close")
	}
	u.content, u.sz, u.closed = nil, 0, true
	return nil
}
