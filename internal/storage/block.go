// Package storage implements the raw slot block and growth policy behind
// vector.Vector. A Block never runs element lifecycle on its own; the owner
// decides which slots are live and constructs or destroys them explicitly.
package storage

// Stats counts slot lifecycle operations across every block that shares it.
type Stats struct {
	Allocations   int
	Constructions int
	Destructions  int
	Relocations   int
	Shifts        int
}

func (s *Stats) count(field func(*Stats) *int, n int) {
	if s == nil || n <= 0 {
		return
	}
	*field(s) += n
}

func allocations(s *Stats) *int   { return &s.Allocations }
func constructions(s *Stats) *int { return &s.Constructions }
func destructions(s *Stats) *int  { return &s.Destructions }
func relocations(s *Stats) *int   { return &s.Relocations }
func shifts(s *Stats) *int        { return &s.Shifts }

// Block is an owned run of slots sized to a fixed capacity. Slots that are not
// live hold the zero value of T.
type Block[T any] struct {
	slots []T
	stats *Stats
}

// Allocate returns a block with n slots. A non-positive n yields the
// zero-capacity block, which performs no allocation.
func Allocate[T any](n int, stats *Stats) Block[T] {
	if n <= 0 {
		return Block[T]{stats: stats}
	}
	stats.count(allocations, 1)
	return Block[T]{slots: make([]T, n), stats: stats}
}

// Cap returns the number of addressable slots.
func (b Block[T]) Cap() int {
	return len(b.slots)
}

// Slot addresses slot i.
func (b Block[T]) Slot(i int) *T {
	return &b.slots[i]
}

// Live returns the first n slots as a slice that cannot be appended into the
// spare capacity.
func (b Block[T]) Live(n int) []T {
	if b.slots == nil {
		return nil
	}
	return b.slots[:n:n]
}

// ConstructAt places value into slot i.
func (b Block[T]) ConstructAt(i int, value T) {
	b.slots[i] = value
	b.stats.count(constructions, 1)
}

// ConstructWith runs init against the zeroed slot i and returns its address.
func (b Block[T]) ConstructWith(i int, init func(*T)) *T {
	slot := &b.slots[i]
	var zero T
	*slot = zero
	if init != nil {
		init(slot)
	}
	b.stats.count(constructions, 1)
	return slot
}

// DestroyAt resets slot i to the zero value so the collector can reclaim
// anything the element referenced.
func (b Block[T]) DestroyAt(i int) {
	var zero T
	b.slots[i] = zero
	b.stats.count(destructions, 1)
}

// DestroyRange destroys slots [from, to).
func (b Block[T]) DestroyRange(from, to int) {
	if from >= to {
		return
	}
	clear(b.slots[from:to])
	b.stats.count(destructions, to-from)
}

// Vacate zeroes moved-from slots [from, to). Their elements already live
// elsewhere, so no destruction is counted.
func (b Block[T]) Vacate(from, to int) {
	if from >= to {
		return
	}
	clear(b.slots[from:to])
}

// Shift moves n slots starting at from so they start at to. Overlapping
// ranges are handled; the vacated source slots keep stale values and must be
// destroyed or overwritten by the caller.
func (b Block[T]) Shift(from, to, n int) {
	if n <= 0 || from == to {
		return
	}
	copy(b.slots[to:to+n], b.slots[from:from+n])
	b.stats.count(shifts, n)
}

// RelocateTo moves the first n slots into dst and leaves them zeroed here.
func (b Block[T]) RelocateTo(dst Block[T], n int) {
	if n <= 0 {
		return
	}
	copy(dst.slots[:n], b.slots[:n])
	clear(b.slots[:n])
	b.stats.count(relocations, n)
}

// Release drops the slots. The block keeps its stats and becomes the
// zero-capacity block.
func (b *Block[T]) Release() {
	b.slots = nil
}
