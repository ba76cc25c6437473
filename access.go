package vector

import (
	"github.com/goliatone/go-vector/pkg/fatal"
)

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	return v.block.Cap()
}

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// Data returns the live elements as a slice aliasing the vector's storage.
// Writes through it are visible to the vector; appending to it never touches
// the vector's spare capacity. It is invalidated by any reallocation.
func (v *Vector[T]) Data() []T {
	return v.block.Live(v.size)
}

// Slice returns a detached copy of the live elements.
func (v *Vector[T]) Slice() []T {
	out := make([]T, v.size)
	copy(out, v.block.Live(v.size))
	return out
}

// Front returns the first element.
func (v *Vector[T]) Front() T {
	v.fail(v.size == 0, fatal.FrontEmpty)
	return *v.block.Slot(0)
}

// Back returns the last element.
func (v *Vector[T]) Back() T {
	v.fail(v.size == 0, fatal.BackEmpty)
	return *v.block.Slot(v.size - 1)
}

// At returns the element at index i.
func (v *Vector[T]) At(i int) T {
	v.checkIndex(i)
	return *v.block.Slot(i)
}

// Ptr returns a pointer to the element at index i, valid until the next
// reallocation.
func (v *Vector[T]) Ptr(i int) *T {
	v.checkIndex(i)
	return v.block.Slot(i)
}

// Set overwrites the element at index i.
func (v *Vector[T]) Set(i int, value T) {
	v.checkIndex(i)
	*v.block.Slot(i) = value
}

// Fill overwrites every live element with a copy of value. Size and capacity
// are unchanged.
func (v *Vector[T]) Fill(value T) {
	copyFn := v.copier()
	for i := 0; i < v.size; i++ {
		*v.block.Slot(i) = copyFn(value)
	}
}
