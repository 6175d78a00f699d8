package vector

import (
	"errors"
	"fmt"
)

// Domain errors for container operations.
var (
	// ErrNilVector indicates a mutating call on a nil container.
	ErrNilVector = errors.New("vector: nil vector")

	// ErrEmpty indicates a pop or removal from an empty container.
	ErrEmpty = errors.New("vector: empty vector")

	// ErrIndexOutOfRange indicates an index outside the occupied range.
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrInvalidCapacity indicates a negative or too small capacity request.
	ErrInvalidCapacity = errors.New("vector: invalid capacity")

	// ErrAllocation indicates the backing buffer could not be (re)allocated.
	ErrAllocation = errors.New("vector: buffer allocation failed")

	// ErrNilFunc indicates a nil comparator or callback.
	ErrNilFunc = errors.New("vector: nil function")
)

// IndexError reports the offending index together with the size it was
// checked against.
type IndexError struct {
	Op    string
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("vector: %s index %d out of range [0,%d)", e.Op, e.Index, e.Size)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
