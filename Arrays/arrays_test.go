package Arrays

import (
	"math"
	"slices"
	"testing"

	"github.com/g-m-twostay/wlib"
	"github.com/pkg/errors"
)

func TestArray_All(t *testing.T) {
	A, err := New[int64](16)
	if err != nil {
		t.Fatal(err)
	}
	if err = A.Set(0, 123456); err != nil {
		t.Fatal(err)
	}
	if v, err := A.Get(0); err != nil || v != 123456 {
		t.Errorf("Get(0) = %d, %v; want 123456", v, err)
	}
	for i := 1; i < A.Len(); i++ {
		if v, _ := A.Get(i); v != 0 {
			t.Errorf("element %d not zeroed: %d", i, v)
		}
	}
	for i := 0; i < A.Len(); i++ {
		if err = A.Set(i, int64(i*i)); err != nil {
			t.Fatal(err)
		}
	}
	for i := 0; i < A.Len(); i++ {
		if v, _ := A.Get(i); v != int64(i*i) {
			t.Errorf("round trip at %d: got %d", i, v)
		}
	}
	for _, i := range []int{-1, 16, math.MaxInt} {
		if _, err = A.Get(i); !errors.Is(err, wlib.ValidationFailure) {
			t.Errorf("Get(%d) = %v, want ValidationFailure", i, err)
		}
		if err = A.Set(i, 1); !errors.Is(err, wlib.ValidationFailure) {
			t.Errorf("Set(%d) = %v, want ValidationFailure", i, err)
		}
	}
}

func TestArray_New(t *testing.T) {
	if _, err := New[int](-1); !errors.Is(err, wlib.ValidationFailure) {
		t.Errorf("New(-1) = %v", err)
	}
	A, err := New[string](0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = A.Get(0); err == nil {
		t.Error("empty array returned an element")
	}
	if _, err = New[int64](math.MaxInt); !errors.Is(err, wlib.AllocationFailure) {
		t.Errorf("New(MaxInt) = %v, want AllocationFailure", err)
	}
}

func TestArray_Close(t *testing.T) {
	A, _ := New[int](4)
	if err := A.Close(); err != nil {
		t.Fatal(err)
	}
	if A.Len() != 0 {
		t.Errorf("closed array has length %d", A.Len())
	}
	if _, err := A.Get(0); !errors.Is(err, wlib.ErrClosed) {
		t.Errorf("Get after Close = %v", err)
	}
	if err := A.Set(0, 1); !errors.Is(err, wlib.ErrClosed) {
		t.Errorf("Set after Close = %v", err)
	}
	if err := A.Close(); !errors.Is(err, wlib.ErrClosed) {
		t.Errorf("second Close = %v", err)
	}
}

func TestNDArray_Index(t *testing.T) {
	N, err := NewND[float64]([]int{2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if i, err := N.Index([]int{1, 2}); err != nil || i != 5 {
		t.Errorf("Index(1,2) = %d, %v; want 5", i, err)
	}
	if err = N.Set(2.5, []int{1, 2}); err != nil {
		t.Fatal(err)
	}
	if v, err := N.Get([]int{1, 2}); err != nil || v != 2.5 {
		t.Errorf("Get(1,2) = %v, %v", v, err)
	}
	//every flat offset is reached exactly once, in row-major order.
	next := 0
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if f, _ := N.Index([]int{i, j}); f != next {
				t.Errorf("Index(%d,%d) = %d, want %d", i, j, f, next)
			}
			next++
		}
	}
	bad := [][]int{{2, 0}, {0, 3}, {-1, 0}, {0}, {0, 0, 0}, nil}
	for _, c := range bad {
		if _, err = N.Index(c); !errors.Is(err, wlib.ValidationFailure) {
			t.Errorf("Index(%v) = %v, want ValidationFailure", c, err)
		}
	}
}

func TestNDArray_Rank5(t *testing.T) {
	shape := []int{1, 2, 3, 4, 5}
	N, err := NewND[int32](shape)
	if err != nil {
		t.Fatal(err)
	}
	if N.Len() != 120 || N.Rank() != 5 {
		t.Fatalf("len %d rank %d, want 120 and 5", N.Len(), N.Rank())
	}
	origin := []int{0, 0, 0, 0, 0}
	if err = N.Set(77, origin); err != nil {
		t.Fatal(err)
	}
	if v, _ := N.Get(origin); v != 77 {
		t.Errorf("Get(origin) = %d", v)
	}
	last := []int{0, 1, 2, 3, 4}
	if i, _ := N.Index(last); i != 119 {
		t.Errorf("Index(%v) = %d, want 119", last, i)
	}
	got := N.Shape()
	if !slices.Equal(got, shape) {
		t.Errorf("Shape() = %v", got)
	}
	got[0] = 9
	shape[1] = 9
	if !slices.Equal(N.Shape(), []int{1, 2, 3, 4, 5}) {
		t.Error("shape is aliased")
	}
}

func TestNDArray_New(t *testing.T) {
	if _, err := NewND[int](nil); !errors.Is(err, wlib.ValidationFailure) {
		t.Errorf("rank 0: %v", err)
	}
	if _, err := NewND[int]([]int{3, -1}); !errors.Is(err, wlib.ValidationFailure) {
		t.Errorf("negative extent: %v", err)
	}
	if _, err := NewND[int]([]int{math.MaxInt, 3}); !errors.Is(err, wlib.AllocationFailure) {
		t.Errorf("overflowing shape: %v", err)
	}
	N, err := NewND[int]([]int{4, 0})
	if err != nil {
		t.Fatal(err)
	}
	if N.Len() != 0 {
		t.Errorf("len %d", N.Len())
	}
	if _, err = N.Get([]int{0, 0}); !errors.Is(err, wlib.ValidationFailure) {
		t.Errorf("access into empty dimension: %v", err)
	}
	if err = N.Close(); err != nil {
		t.Fatal(err)
	}
	if N.Rank() != 0 || N.Shape() != nil {
		t.Error("closed array kept its shape")
	}
	if _, err = N.Get([]int{0, 0}); !errors.Is(err, wlib.ErrClosed) {
		t.Errorf("Get after Close = %v", err)
	}
	if err = N.Close(); !errors.Is(err, wlib.ErrClosed) {
		t.Errorf("second Close = %v", err)
	}
}
