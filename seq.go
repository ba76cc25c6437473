package vector

import "iter"

// All yields index/element pairs in forward order. Mutating the vector while
// ranging is not supported.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.block.Slot(i)) {
				return
			}
		}
	}
}

// Values yields the elements in forward order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.block.Slot(i)) {
				return
			}
		}
	}
}

// Backward yields index/element pairs from the last element to the first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, *v.block.Slot(i)) {
				return
			}
		}
	}
}
