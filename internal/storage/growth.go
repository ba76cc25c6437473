package storage

// Grow returns the capacity to reallocate to once capacity is exhausted:
// doubling, with a floor of one slot when growing from empty.
func Grow(capacity int) int {
	if capacity == 0 {
		return 1
	}
	return capacity * 2
}

// Exhausted reports whether adding extra live slots to size would overflow
// capacity.
func Exhausted(size, capacity, extra int) bool {
	return size+extra > capacity
}
