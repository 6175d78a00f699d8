package vector

import (
	"fmt"
	"math"
)

const (
	// DefaultCapacity replaces a zero initial capacity and is the floor
	// below which Pop never shrinks.
	DefaultCapacity = 8

	// GrowthFactor multiplies the capacity when a full container grows.
	GrowthFactor = 2

	// shrinkDivisor sets the shrink trigger at size < capacity/4, twice as
	// strict as the grow trigger.
	shrinkDivisor = 4
)

// NotFound is the index Find reports when no element matches.
const NotFound = math.MaxInt

// allocHook runs before every buffer allocation. Tests replace it to
// simulate exhaustion.
var allocHook = func(capacity int) error { return nil }

// reallocate returns a fresh buffer of newCap slots holding the first size
// elements of data. data itself is never modified, so a failure leaves the
// caller's container intact.
func reallocate[T any](data []T, size, newCap int) (out []T, err error) {
	if newCap <= 0 || newCap < size {
		return nil, ErrInvalidCapacity
	}
	if err := allocHook(newCap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAllocation, err)
	}
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("%w: %v", ErrAllocation, r)
		}
	}()
	out = make([]T, newCap)
	copy(out, data[:size])
	return out, nil
}

func grownCapacity(capacity int) (int, error) {
	if capacity == 0 {
		return DefaultCapacity, nil
	}
	if capacity > math.MaxInt/GrowthFactor {
		return 0, ErrAllocation
	}
	return capacity * GrowthFactor, nil
}

func shouldShrink(size, capacity int) bool {
	return size < capacity/shrinkDivisor && capacity > DefaultCapacity
}

func normalizeCapacity(initial int) (int, error) {
	switch {
	case initial < 0:
		return 0, ErrInvalidCapacity
	case initial == 0:
		return DefaultCapacity, nil
	default:
		return initial, nil
	}
}
