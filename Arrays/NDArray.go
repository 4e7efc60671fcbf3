package Arrays

import (
	"math/bits"

	"github.com/g-m-twostay/wlib"
	"github.com/pkg/errors"
)

// NDArray is a dense array of fixed rank stored in row-major order: the last coordinate varies fastest.
type NDArray[T any] struct {
	shape  []int
	data   []T
	closed bool
}

// NewND creates an NDArray with the given dimension extents. shape is copied.
// The rank is len(shape) and must be at least 1. An extent may be 0, which makes every coordinate out of range.
func NewND[T any](shape []int) (*NDArray[T], error) {
	if len(shape) == 0 {
		return nil, wlib.Invalid("NDArray.New: rank must be positive")
	}
	count := uint(1)
	for k, d := range shape {
		if d < 0 {
			return nil, wlib.Invalid("NDArray.New: dimension %d has negative extent %d", k, d)
		}
		hi, lo := bits.Mul(count, uint(d))
		if hi != 0 || lo > ^uint(0)>>1 {
			return nil, errors.Wrapf(wlib.AllocationFailure, "NDArray.New: element count of shape %v overflows", shape)
		}
		count = lo
	}
	data, err := wlib.Alloc[T](int(count))
	if err != nil {
		return nil, err
	}
	return &NDArray[T]{shape: append([]int(nil), shape...), data: data}, nil
}

// Index folds coords into the offset of the element in the flat buffer:
// flat = c0, then flat = flat*shape[k] + ck for every following k.
func (u *NDArray[T]) Index(coords []int) (int, error) {
	if u.closed {
		return 0, wlib.Closed("NDArray.Index")
	}
	if len(coords) != len(u.shape) {
		return 0, wlib.Invalid("NDArray.Index: got %d coordinates for rank %d", len(coords), len(u.shape))
	}
	flat := 0
	for k, c := range coords {
		if c < 0 || c >= u.shape[k] {
			return 0, wlib.Invalid("NDArray.Index: coordinate %d is %d, out of range [0,%d)", k, c, u.shape[k])
		}
		flat = flat*u.shape[k] + c
	}
	return flat, nil
}

func (u *NDArray[T]) Get(coords []int) (v T, err error) {
	var i int
	if i, err = u.Index(coords); err == nil {
		v = u.data[i]
	}
	return
}

func (u *NDArray[T]) Set(v T, coords []int) error {
	i, err := u.Index(coords)
	if err == nil {
		u.data[i] = v
	}
	return err
}

// Shape returns a copy of the dimension extents.
func (u *NDArray[T]) Shape() []int {
	return append([]int(nil), u.shape...)
}

func (u *NDArray[T]) Rank() int {
	return len(u.shape)
}

// Len is the total number of elements, the product of the extents.
func (u *NDArray[T]) Len() int {
	return len(u.data)
}

// Close releases both the shape and the element buffer.
func (u *NDArray[T]) Close() error {
	if u.closed {
		return wlib.Closed("NDArray.Close")
	}
	u.shape, u.data, u.closed = nil, nil, true
	return nil
}
