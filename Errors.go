package wlib

import (
	"fmt"

	"github.com/pkg/errors"
)

// Failure classifies every error returned by the containers. Match with errors.Is.
type Failure byte

const (
	ValidationFailure Failure = iota + 1 //invalid argument: negative size, index or coordinate out of range, bad rank, use after Close.
	AllocationFailure                    //backing store could not be allocated.
	LookupFailure                        //key absent from a map.
)

// ErrClosed is returned by every operation on a container after its Close.
var ErrClosed = fmt.Errorf("use of closed container: %w", ValidationFailure)

func (f Failure) Error() string {
	switch f {
	case ValidationFailure:
		return "validation failure"
	case AllocationFailure:
		return "allocation failure"
	case LookupFailure:
		return "lookup failure"
	}
	return fmt.Sprintf("failure(%d)", byte(f))
}

// Invalid returns a ValidationFailure describing the failed condition. The call site is recorded.
func Invalid(format string, args ...any) error {
	return errors.Wrapf(ValidationFailure, format, args...)
}

// Missing returns a LookupFailure. The call site is recorded.
func Missing(format string, args ...any) error {
	return errors.Wrapf(LookupFailure, format, args...)
}

// Closed wraps ErrClosed with the name of the rejected operation.
func Closed(op string) error {
	return errors.Wrap(ErrClosed, op)
}

// CheckIndex validates 0<=i<n.
func CheckIndex(op string, i, n int) error {
	if i < 0 || i >= n {
		return Invalid("%s: index %d out of range [0,%d)", op, i, n)
	}
	return nil
}

// Alloc makes a zero-filled slice of length n, turning the runtime's allocation panic into an AllocationFailure.
func Alloc[T any](n int) (buf []T, err error) {
	if n < 0 {
		return nil, Invalid("negative length %d", n)
	}
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, errors.Wrapf(AllocationFailure, "cannot allocate %d elements: %v", n, r)
		}
	}()
	return make([]T, n), nil
}
