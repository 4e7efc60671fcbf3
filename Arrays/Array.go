// Package Arrays implements fixed-size containers: a one-dimensional Array and a dense, row-major NDArray.
// All accesses are bounds-checked and report a wlib.ValidationFailure instead of panicking.
// Buffers are always zero-filled at construction.
package Arrays

import (
	"github.com/g-m-twostay/wlib"
)

// Array is a fixed-length, bounds-checked buffer of T.
type Array[T any] struct {
	data   []T
	closed bool
}

// New Array holding size zero values.
func New[T any](size int) (*Array[T], error) {
	if size < 0 {
		return nil, wlib.Invalid("Array.New: negative size %d", size)
	}
	data, err := wlib.Alloc[T](size)
	if err != nil {
		return nil, err
	}
	return &Array[T]{data: data}, nil
}

// Len of the array; 0 once closed.
func (u *Array[T]) Len() int {
	return len(u.data)
}

func (u *Array[T]) Get(i int) (v T, err error) {
	if u.closed {
		return v, wlib.Closed("Array.Get")
	}
	if err = wlib.CheckIndex("Array.Get", i, len(u.data)); err == nil {
		v = u.data[i]
	}
	return
}

func (u *Array[T]) Set(i int, v T) error {
	if u.closed {
		return wlib.Closed("Array.Set")
	}
	if err := wlib.CheckIndex("Array.Set", i, len(u.data)); err != nil {
		return err
	}
	u.data[i] = v
	return nil
}

// Close releases the buffer. The array can't be used afterward; a second Close fails with wlib.ErrClosed.
func (u *Array[T]) Close() error {
	if u.closed {
		return wlib.Closed("Array.Close")
	}
	u.data, u.closed = nil, true
	return nil
}
