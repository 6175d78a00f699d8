package vector

import (
	"strconv"
	"strings"
)

// IntVector is a growable array of int32 values. The zero value is not
// usable; construct one with NewInt.
type IntVector struct {
	data []int32
	size int
}

// NewInt allocates an IntVector able to hold initialCapacity values before
// its first reallocation. Zero selects DefaultCapacity.
func NewInt(initialCapacity int) (*IntVector, error) {
	capacity, err := normalizeCapacity(initialCapacity)
	if err != nil {
		return nil, err
	}
	data, err := reallocate[int32](nil, 0, capacity)
	if err != nil {
		return nil, err
	}
	return &IntVector{data: data}, nil
}

// Destroy releases the buffer. Calling it on nil is a no-op.
func (v *IntVector) Destroy() {
	if v == nil {
		return
	}
	v.data = nil
	v.size = 0
}

// Push appends value, doubling the capacity first when the buffer is full.
func (v *IntVector) Push(value int32) error {
	if v == nil {
		return ErrNilVector
	}
	if v.size == len(v.data) {
		newCap, err := grownCapacity(len(v.data))
		if err != nil {
			return err
		}
		data, err := reallocate(v.data, v.size, newCap)
		if err != nil {
			return err
		}
		v.data = data
	}
	v.data[v.size] = value
	v.size++
	return nil
}

// Pop removes and returns the last value. A failed shrink afterwards is
// ignored; the pop itself has already happened.
func (v *IntVector) Pop() (int32, error) {
	if v == nil {
		return 0, ErrNilVector
	}
	if v.size == 0 {
		return 0, ErrEmpty
	}
	v.size--
	value := v.data[v.size]

	if shouldShrink(v.size, len(v.data)) {
		if data, err := reallocate(v.data, v.size, len(v.data)/GrowthFactor); err == nil {
			v.data = data
		}
	}
	return value, nil
}

// Get returns the value at index. A nil vector behaves as an empty one.
func (v *IntVector) Get(index int) (int32, error) {
	if index < 0 || index >= v.Size() {
		return 0, &IndexError{Op: "get", Index: index, Size: v.Size()}
	}
	return v.data[index], nil
}

// Set overwrites the value at index.
func (v *IntVector) Set(index int, value int32) error {
	if v == nil {
		return ErrNilVector
	}
	if index < 0 || index >= v.size {
		return &IndexError{Op: "set", Index: index, Size: v.size}
	}
	v.data[index] = value
	return nil
}

// Size returns the number of stored values, 0 for nil.
func (v *IntVector) Size() int {
	if v == nil {
		return 0
	}
	return v.size
}

// Capacity returns the number of slots in the buffer, 0 for nil.
func (v *IntVector) Capacity() int {
	if v == nil {
		return 0
	}
	return len(v.data)
}

// Values returns a copy of the stored values in index order.
func (v *IntVector) Values() []int32 {
	if v == nil {
		return nil
	}
	out := make([]int32, v.size)
	copy(out, v.data[:v.size])
	return out
}

func (v *IntVector) String() string {
	if v == nil {
		return "Vector is nil"
	}
	var b strings.Builder
	b.WriteString("Vector[")
	b.WriteString(strconv.Itoa(v.size))
	b.WriteByte('/')
	b.WriteString(strconv.Itoa(len(v.data)))
	b.WriteString("]: [")
	for i := 0; i < v.size; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatInt(int64(v.data[i]), 10))
	}
	b.WriteByte(']')
	return b.String()
}
