// Package vector provides growable contiguous containers.
//
// Two variants share one capacity policy:
//
//   - [IntVector]: a container specialised to int32 values
//   - [Vector]: a generic container over any element type
//
// Both start at the requested capacity ([DefaultCapacity] when zero),
// double when a push finds the buffer full, and halve after a pop leaves
// fewer than a quarter of the slots in use while the capacity is above
// [DefaultCapacity]. Growth either fully succeeds or leaves the container
// untouched.
//
// # Direct access
//
// [Vector.At], [Vector.Front], [Vector.Back] and [Vector.Data] return
// references into the backing buffer. Any mutating call (Push, Pop, Insert,
// Remove, Reserve, ShrinkToFit, Sort, Clear) invalidates them.
//
//	v, _ := vector.New[string](0)
//	_ = v.Push("a")
//	p := v.At(0)
//	*p = "b"      // fine
//	_ = v.Push("c")
//	// p must not be used from here on
//
// # Thread Safety
//
// Containers are NOT thread-safe. Callers sharing one instance across
// goroutines must guard every call with their own mutex.
package vector
