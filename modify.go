package vector

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-vector/pkg/activity"
	"github.com/goliatone/go-vector/pkg/fatal"
)

// PushBack appends a copy of value, doubling the capacity when full.
func (v *Vector[T]) PushBack(value T) {
	v.ensure(1)
	v.block.ConstructAt(v.size, v.copier()(value))
	v.size++
}

// EmplaceBack appends an element constructed in place by init and returns a
// pointer to it. A nil init leaves the zero value. The pointer is valid until
// the next reallocation.
func (v *Vector[T]) EmplaceBack(init func(*T)) *T {
	v.ensure(1)
	slot := v.block.ConstructWith(v.size, init)
	v.size++
	return slot
}

// Insert places a copy of value before pos and returns an iterator to it.
// Elements at or after pos shift back by one.
func (v *Vector[T]) Insert(pos ConstForwardIterator[T], value T) ForwardIterator[T] {
	index := v.openGap(pos.c)
	v.block.ConstructAt(index, v.copier()(value))
	v.size++
	return v.iteratorAt(index)
}

// Emplace constructs an element in place before pos and returns an iterator
// to it.
func (v *Vector[T]) Emplace(pos ConstForwardIterator[T], init func(*T)) ForwardIterator[T] {
	index := v.openGap(pos.c)
	v.block.ConstructWith(index, init)
	v.size++
	return v.iteratorAt(index)
}

// openGap validates pos, grows the storage when full, and shifts the tail one
// slot back so the slot at pos's index is free. The index survives
// reallocation.
func (v *Vector[T]) openGap(pos cursor[T, Forward]) int {
	index := v.position(pos)
	v.ensure(1)
	v.block.Shift(index, index+1, v.size-index)
	return index
}

// PopBack destroys the last element. Capacity is unchanged.
func (v *Vector[T]) PopBack() {
	v.fail(v.size == 0, fatal.PopEmpty)
	v.size--
	v.block.DestroyAt(v.size)
}

// Reserve grows the capacity to exactly n when n exceeds it. It never
// shrinks.
func (v *Vector[T]) Reserve(n int) {
	if n > v.block.Cap() {
		v.reallocate(n, activity.VerbReallocate)
	}
}

// Resize changes the number of elements to n. Shrinking destroys the
// trailing elements and keeps the capacity; growing reallocates to exactly n
// when needed and fills the new slots with copies of value.
func (v *Vector[T]) Resize(n int, value T) {
	v.checkCount(n)
	if n == v.size {
		return
	}
	if n < v.size {
		v.block.DestroyRange(n, v.size)
		v.size = n
		return
	}
	if n > v.block.Cap() {
		v.reallocate(n, activity.VerbReallocate)
	}
	copyFn := v.copier()
	for i := v.size; i < n; i++ {
		v.block.ConstructAt(i, copyFn(value))
	}
	v.size = n
}

// ShrinkToFit reallocates so that capacity equals size.
func (v *Vector[T]) ShrinkToFit() {
	if v.block.Cap() > v.size {
		v.reallocate(v.size, activity.VerbShrink)
	}
}

// Clear destroys every element. Capacity is preserved.
func (v *Vector[T]) Clear() {
	cleared := v.size
	v.block.DestroyRange(0, v.size)
	v.size = 0
	if cleared > 0 {
		v.emit(activity.VerbClear, map[string]any{"cleared": cleared})
	}
}

// Erase removes the elements in [first, last) and returns an iterator to the
// element that followed the erased range, or End. Erasing an empty range is a
// no-op that returns last.
func (v *Vector[T]) Erase(first, last ForwardIterator[T]) ForwardIterator[T] {
	from, to := v.position(first.c), v.position(last.c)
	if from == to {
		return last
	}
	v.fail(from > to, fatal.TraversedPastBounds, zap.Int("first", from), zap.Int("last", to))

	tail := v.size - to
	v.block.DestroyRange(from, to)
	v.block.Shift(to, from, tail)
	v.block.Vacate(from+tail, v.size)
	v.size -= to - from
	return v.iteratorAt(from)
}

// position validates that c belongs to v and addresses a slot in [0, size],
// returning its index.
func (v *Vector[T]) position(c cursor[T, Forward]) int {
	v.fail(c.owner != v, fatal.ForeignIterator)
	v.fail(c.pos < 0 || c.pos > v.size, fatal.TraversedPastBounds, zap.Int("position", c.pos))
	return c.pos
}
