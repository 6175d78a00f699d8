package vector

import (
	"fmt"
	"slices"
	"unsafe"
)

// CompareFunc orders two elements: negative if a < b, zero if equal,
// positive if a > b.
type CompareFunc[T any] func(a, b T) int

// ProcessFunc visits one element in place. It may modify *elem but must not
// change the container it came from.
type ProcessFunc[T any] func(elem *T, userData any)

// Vector is a generic growable array. Get, Set, Push and Pop copy values in
// and out; At, Front, Back and Data expose the buffer directly.
type Vector[T any] struct {
	data []T
	size int
}

// New allocates a Vector with room for initialCapacity elements. Zero
// selects DefaultCapacity.
func New[T any](initialCapacity int) (*Vector[T], error) {
	capacity, err := normalizeCapacity(initialCapacity)
	if err != nil {
		return nil, err
	}
	data, err := reallocate[T](nil, 0, capacity)
	if err != nil {
		return nil, err
	}
	return &Vector[T]{data: data}, nil
}

// From builds a Vector holding a copy of values.
func From[T any](values []T) (*Vector[T], error) {
	v, err := New[T](len(values))
	if err != nil {
		return nil, err
	}
	copy(v.data, values)
	v.size = len(values)
	return v, nil
}

// Destroy releases the buffer. Calling it on nil is a no-op.
func (v *Vector[T]) Destroy() {
	if v == nil {
		return
	}
	v.data = nil
	v.size = 0
}

func (v *Vector[T]) growIfFull() error {
	if v.size < len(v.data) {
		return nil
	}
	newCap, err := grownCapacity(len(v.data))
	if err != nil {
		return err
	}
	data, err := reallocate(v.data, v.size, newCap)
	if err != nil {
		return err
	}
	v.data = data
	return nil
}

// Push appends a copy of elem.
func (v *Vector[T]) Push(elem T) error {
	if v == nil {
		return ErrNilVector
	}
	if err := v.growIfFull(); err != nil {
		return err
	}
	v.data[v.size] = elem
	v.size++
	return nil
}

// Pop removes and returns the last element, shrinking the buffer under the
// same rule as IntVector.Pop.
func (v *Vector[T]) Pop() (T, error) {
	var zero T
	if v == nil {
		return zero, ErrNilVector
	}
	if v.size == 0 {
		return zero, ErrEmpty
	}
	v.size--
	elem := v.data[v.size]
	v.data[v.size] = zero

	if shouldShrink(v.size, len(v.data)) {
		if data, err := reallocate(v.data, v.size, len(v.data)/GrowthFactor); err == nil {
			v.data = data
		}
	}
	return elem, nil
}

// Get returns a copy of the element at index.
func (v *Vector[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index >= v.Size() {
		return zero, &IndexError{Op: "get", Index: index, Size: v.Size()}
	}
	return v.data[index], nil
}

// Set stores a copy of elem at index.
func (v *Vector[T]) Set(index int, elem T) error {
	if v == nil {
		return ErrNilVector
	}
	if index < 0 || index >= v.size {
		return &IndexError{Op: "set", Index: index, Size: v.size}
	}
	v.data[index] = elem
	return nil
}

// Insert places elem at index, shifting the tail right by one. index may
// equal Size, which appends.
func (v *Vector[T]) Insert(index int, elem T) error {
	if v == nil {
		return ErrNilVector
	}
	if index < 0 || index > v.size {
		return &IndexError{Op: "insert", Index: index, Size: v.size + 1}
	}
	if err := v.growIfFull(); err != nil {
		return err
	}
	copy(v.data[index+1:v.size+1], v.data[index:v.size])
	v.data[index] = elem
	v.size++
	return nil
}

// Remove deletes and returns the element at index, shifting the tail left.
func (v *Vector[T]) Remove(index int) (T, error) {
	var zero T
	if v == nil {
		return zero, ErrNilVector
	}
	if index < 0 || index >= v.size {
		return zero, &IndexError{Op: "remove", Index: index, Size: v.size}
	}
	elem := v.data[index]
	copy(v.data[index:v.size-1], v.data[index+1:v.size])
	v.size--
	v.data[v.size] = zero
	return elem, nil
}

// Size returns the number of stored elements, 0 for nil.
func (v *Vector[T]) Size() int {
	if v == nil {
		return 0
	}
	return v.size
}

// Capacity returns the number of slots in the buffer, 0 for nil.
func (v *Vector[T]) Capacity() int {
	if v == nil {
		return 0
	}
	return len(v.data)
}

// ElementSize reports the in-memory width of one element in bytes.
func (v *Vector[T]) ElementSize() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// Empty reports whether the vector holds no elements. nil is empty.
func (v *Vector[T]) Empty() bool {
	return v.Size() == 0
}

// Clear drops every element and keeps the capacity.
func (v *Vector[T]) Clear() {
	if v == nil {
		return
	}
	clear(v.data[:v.size])
	v.size = 0
}

// Reserve grows the capacity to at least n without touching the size.
func (v *Vector[T]) Reserve(n int) error {
	if v == nil {
		return ErrNilVector
	}
	if n < 0 {
		return ErrInvalidCapacity
	}
	if n <= len(v.data) {
		return nil
	}
	data, err := reallocate(v.data, v.size, n)
	if err != nil {
		return err
	}
	v.data = data
	return nil
}

// ShrinkToFit sets the capacity to the current size, or 1 when empty.
func (v *Vector[T]) ShrinkToFit() error {
	if v == nil {
		return ErrNilVector
	}
	target := max(v.size, 1)
	if target == len(v.data) {
		return nil
	}
	data, err := reallocate(v.data, v.size, target)
	if err != nil {
		return err
	}
	v.data = data
	return nil
}

// Find returns the index of the first element equal to elem under cmp, or
// NotFound.
func (v *Vector[T]) Find(elem T, cmp CompareFunc[T]) int {
	if v == nil || cmp == nil {
		return NotFound
	}
	for i := 0; i < v.size; i++ {
		if cmp(v.data[i], elem) == 0 {
			return i
		}
	}
	return NotFound
}

// Sort orders the elements in place. Equal elements may be reordered.
func (v *Vector[T]) Sort(cmp CompareFunc[T]) error {
	if v == nil {
		return ErrNilVector
	}
	if cmp == nil {
		return ErrNilFunc
	}
	slices.SortFunc(v.data[:v.size], cmp)
	return nil
}

// Foreach calls process once per element in index order.
func (v *Vector[T]) Foreach(process ProcessFunc[T], userData any) {
	if v == nil || process == nil {
		return
	}
	for i := 0; i < v.size; i++ {
		process(&v.data[i], userData)
	}
}

// Clone returns an independent copy with the same size and elements. The
// copy's capacity is the source size (at least 1).
func (v *Vector[T]) Clone() (*Vector[T], error) {
	if v == nil {
		return nil, ErrNilVector
	}
	data, err := reallocate(v.data, v.size, max(v.size, 1))
	if err != nil {
		return nil, err
	}
	return &Vector[T]{data: data, size: v.size}, nil
}

// At returns a pointer to the element at index, or nil when out of range.
// The pointer is invalidated by the next mutating call.
func (v *Vector[T]) At(index int) *T {
	if index < 0 || index >= v.Size() {
		return nil
	}
	return &v.data[index]
}

// Front returns a pointer to the first element, or nil when empty.
func (v *Vector[T]) Front() *T {
	return v.At(0)
}

// Back returns a pointer to the last element, or nil when empty.
func (v *Vector[T]) Back() *T {
	return v.At(v.Size() - 1)
}

// Data returns the occupied part of the buffer without copying. Writing
// through it modifies the vector; appending to it does not.
func (v *Vector[T]) Data() []T {
	if v == nil {
		return nil
	}
	return v.data[:v.size:v.size]
}

func (v *Vector[T]) String() string {
	if v == nil {
		return "Vector is nil"
	}
	return fmt.Sprintf("Vector[%d/%d]: %v", v.size, len(v.data), v.data[:v.size])
}
