package vector

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-vector/pkg/fatal"
)

// Forward tags iterators that walk from the first element toward End.
type Forward struct{}

// Reverse tags iterators that walk from the last element toward REnd.
type Reverse struct{}

// Direction is the closed set of traversal tags. Dispatch on it is resolved
// per instantiation, so iterators carry no vtable and never allocate.
type Direction interface {
	Forward | Reverse

	// first returns the slot of the first element in traversal order.
	first(size int) int
	// sentinel returns the one-past-the-last slot in traversal order.
	sentinel(size int) int
	step() int
	incrementKind() fatal.Kind
	decrementKind() fatal.Kind
	dereferenceKind() fatal.Kind
}

func (Forward) first(int) int               { return 0 }
func (Forward) sentinel(size int) int       { return size }
func (Forward) step() int                   { return 1 }
func (Forward) incrementKind() fatal.Kind   { return fatal.IncrementEnd }
func (Forward) decrementKind() fatal.Kind   { return fatal.DecrementBegin }
func (Forward) dereferenceKind() fatal.Kind { return fatal.DereferenceEnd }

func (Reverse) first(size int) int          { return size - 1 }
func (Reverse) sentinel(int) int            { return -1 }
func (Reverse) step() int                   { return -1 }
func (Reverse) incrementKind() fatal.Kind   { return fatal.IncrementRend }
func (Reverse) decrementKind() fatal.Kind   { return fatal.DecrementRbegin }
func (Reverse) dereferenceKind() fatal.Kind { return fatal.DereferenceRend }

// Iterator aliases for the four variants.
type (
	ForwardIterator[T any]      = Iterator[T, Forward]
	ReverseIterator[T any]      = Iterator[T, Reverse]
	ConstForwardIterator[T any] = ConstIterator[T, Forward]
	ConstReverseIterator[T any] = ConstIterator[T, Reverse]
)

// cursor is the state shared by every iterator variant: a slot position and a
// non-owning back-reference to the vector that produced it. The owner is only
// consulted for its current size and identity.
type cursor[T any, D Direction] struct {
	owner *Vector[T]
	pos   int
}

func newCursor[T any, D Direction](v *Vector[T], atSentinel bool) cursor[T, D] {
	var d D
	if atSentinel {
		return cursor[T, D]{owner: v, pos: d.sentinel(v.size)}
	}
	return cursor[T, D]{owner: v, pos: d.first(v.size)}
}

// offset is the number of increments from the first element to c: 0 at the
// first element, size at the sentinel.
func (c cursor[T, D]) offset() int {
	var d D
	return (c.pos - d.first(c.owner.size)) * d.step()
}

func (c cursor[T, D]) fail(cond bool, kind fatal.Kind, fields ...zap.Field) {
	if !cond {
		return
	}
	c.owner.fail(true, kind, append(fields, zap.Int("position", c.pos))...)
}

func (c *cursor[T, D]) increment() {
	var d D
	c.fail(c.offset() >= c.owner.size, d.incrementKind())
	c.pos += d.step()
}

func (c *cursor[T, D]) decrement() {
	var d D
	c.fail(c.offset() <= 0, d.decrementKind())
	c.pos -= d.step()
}

func (c *cursor[T, D]) advance(k int) {
	if k < 0 {
		c.retreat(-k)
		return
	}
	var d D
	c.fail(c.offset()+k > c.owner.size, fatal.TraversedPastBounds, zap.Int("offset", k))
	c.pos += k * d.step()
}

func (c *cursor[T, D]) retreat(k int) {
	if k < 0 {
		c.advance(-k)
		return
	}
	var d D
	c.fail(c.offset()-k < 0, fatal.TraversedPastBounds, zap.Int("offset", -k))
	c.pos -= k * d.step()
}

// slot returns the element k increments past c.
func (c cursor[T, D]) slot(k int) *T {
	var d D
	target := c.offset() + k
	c.fail(target < 0 || target > c.owner.size, fatal.TraversedPastBounds, zap.Int("offset", k))
	c.fail(target == c.owner.size, d.dereferenceKind())
	return c.owner.block.Slot(c.pos + k*d.step())
}

func (c cursor[T, D]) equal(o cursor[T, D]) bool {
	return c.owner == o.owner && c.pos == o.pos
}

func (c cursor[T, D]) distance(o cursor[T, D]) int {
	return c.offset() - o.offset()
}

// Iterator is a mutable, checked position in a Vector. D selects the
// traversal direction. Iterators are small values; copy them freely.
type Iterator[T any, D Direction] struct {
	c cursor[T, D]
}

// Increment moves one element forward in traversal order.
func (it *Iterator[T, D]) Increment() { it.c.increment() }

// Decrement moves one element backward in traversal order.
func (it *Iterator[T, D]) Decrement() { it.c.decrement() }

// Advance moves k elements forward in traversal order.
func (it *Iterator[T, D]) Advance(k int) { it.c.advance(k) }

// Retreat moves k elements backward in traversal order.
func (it *Iterator[T, D]) Retreat(k int) { it.c.retreat(k) }

// Next returns the iterator one element forward.
func (it Iterator[T, D]) Next() Iterator[T, D] {
	it.c.increment()
	return it
}

// Prev returns the iterator one element backward.
func (it Iterator[T, D]) Prev() Iterator[T, D] {
	it.c.decrement()
	return it
}

// Add returns the iterator k elements forward.
func (it Iterator[T, D]) Add(k int) Iterator[T, D] {
	it.c.advance(k)
	return it
}

// Sub returns the iterator k elements backward.
func (it Iterator[T, D]) Sub(k int) Iterator[T, D] {
	it.c.retreat(k)
	return it
}

// Get returns the referenced element.
func (it Iterator[T, D]) Get() T { return *it.c.slot(0) }

// Ptr returns a pointer to the referenced element.
func (it Iterator[T, D]) Ptr() *T { return it.c.slot(0) }

// Set overwrites the referenced element.
func (it Iterator[T, D]) Set(value T) { *it.c.slot(0) = value }

// At returns the element k positions away in traversal order.
func (it Iterator[T, D]) At(k int) T { return *it.c.slot(k) }

// Index returns the slot index the iterator addresses. The reverse sentinel
// is -1.
func (it Iterator[T, D]) Index() int { return it.c.pos }

// Equal reports whether it and o address the same position.
func (it Iterator[T, D]) Equal(o Iterator[T, D]) bool { return it.c.equal(o.c) }

// Less reports whether it comes before o in traversal order. The relational
// methods below follow the same order.
func (it Iterator[T, D]) Less(o Iterator[T, D]) bool         { return it.c.distance(o.c) < 0 }
func (it Iterator[T, D]) LessEqual(o Iterator[T, D]) bool    { return it.c.distance(o.c) <= 0 }
func (it Iterator[T, D]) Greater(o Iterator[T, D]) bool      { return it.c.distance(o.c) > 0 }
func (it Iterator[T, D]) GreaterEqual(o Iterator[T, D]) bool { return it.c.distance(o.c) >= 0 }

// Distance returns the number of increments needed to reach it from o.
func (it Iterator[T, D]) Distance(o Iterator[T, D]) int { return it.c.distance(o.c) }

// Const returns the read-only view of the same position.
func (it Iterator[T, D]) Const() ConstIterator[T, D] {
	return ConstIterator[T, D]{c: it.c}
}

// ConstIterator is the read-only counterpart of Iterator. It can be obtained
// from an Iterator but never converted back.
type ConstIterator[T any, D Direction] struct {
	c cursor[T, D]
}

// Increment moves one position forward in traversal order.
func (it *ConstIterator[T, D]) Increment() { it.c.increment() }

// Decrement moves one position backward in traversal order.
func (it *ConstIterator[T, D]) Decrement() { it.c.decrement() }

// Advance moves k positions forward in traversal order.
func (it *ConstIterator[T, D]) Advance(k int) { it.c.advance(k) }

// Retreat moves k positions backward.
func (it *ConstIterator[T, D]) Retreat(k int) { it.c.retreat(k) }

// Next returns a copy moved one position forward.
func (it ConstIterator[T, D]) Next() ConstIterator[T, D] {
	it.c.increment()
	return it
}

// Prev returns a copy moved one position backward.
func (it ConstIterator[T, D]) Prev() ConstIterator[T, D] {
	it.c.decrement()
	return it
}

// Add returns a copy moved k positions forward.
func (it ConstIterator[T, D]) Add(k int) ConstIterator[T, D] {
	it.c.advance(k)
	return it
}

// Sub returns a copy moved k positions backward.
func (it ConstIterator[T, D]) Sub(k int) ConstIterator[T, D] {
	it.c.retreat(k)
	return it
}

// Get returns the element under the iterator.
func (it ConstIterator[T, D]) Get() T { return *it.c.slot(0) }

// At returns the element k positions away in traversal order.
func (it ConstIterator[T, D]) At(k int) T { return *it.c.slot(k) }

// Index returns the slot index the iterator addresses. The reverse sentinel
// is -1.
func (it ConstIterator[T, D]) Index() int { return it.c.pos }

// Equal reports whether it and o address the same position.
func (it ConstIterator[T, D]) Equal(o ConstIterator[T, D]) bool { return it.c.equal(o.c) }

// Less reports whether it comes before o in traversal order. The relational
// methods below follow the same order.
func (it ConstIterator[T, D]) Less(o ConstIterator[T, D]) bool      { return it.c.distance(o.c) < 0 }
func (it ConstIterator[T, D]) LessEqual(o ConstIterator[T, D]) bool { return it.c.distance(o.c) <= 0 }
func (it ConstIterator[T, D]) Greater(o ConstIterator[T, D]) bool   { return it.c.distance(o.c) > 0 }

// GreaterEqual reports whether it does not come before o.
func (it ConstIterator[T, D]) GreaterEqual(o ConstIterator[T, D]) bool {
	return it.c.distance(o.c) >= 0
}

// Distance returns the number of increments needed to reach it from o.
func (it ConstIterator[T, D]) Distance(o ConstIterator[T, D]) int { return it.c.distance(o.c) }

// Begin returns an iterator at the first element, or End when empty.
func (v *Vector[T]) Begin() ForwardIterator[T] {
	return ForwardIterator[T]{c: newCursor[T, Forward](v, false)}
}

// End returns the one-past-the-last sentinel.
func (v *Vector[T]) End() ForwardIterator[T] {
	return ForwardIterator[T]{c: newCursor[T, Forward](v, true)}
}

// CBegin returns the read-only form of Begin.
func (v *Vector[T]) CBegin() ConstForwardIterator[T] { return v.Begin().Const() }

// CEnd returns the read-only form of End.
func (v *Vector[T]) CEnd() ConstForwardIterator[T] { return v.End().Const() }

// RBegin returns a reverse iterator at the last element, or REnd when empty.
func (v *Vector[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{c: newCursor[T, Reverse](v, false)}
}

// REnd returns the one-before-the-first sentinel.
func (v *Vector[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{c: newCursor[T, Reverse](v, true)}
}

// CRBegin returns the read-only form of RBegin.
func (v *Vector[T]) CRBegin() ConstReverseIterator[T] { return v.RBegin().Const() }

// CREnd returns the read-only form of REnd.
func (v *Vector[T]) CREnd() ConstReverseIterator[T] { return v.REnd().Const() }

func (v *Vector[T]) iteratorAt(index int) ForwardIterator[T] {
	return ForwardIterator[T]{c: cursor[T, Forward]{owner: v, pos: index}}
}
