package vector

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-vector/pkg/fatal"
)

// ForwardRange is satisfied by multi-pass traversal handles: values that can
// be copied, compared, and walked again from any copy. Single-pass sources
// such as channels or iter.Seq do not satisfy it, so range construction over
// them does not compile.
type ForwardRange[T any, I any] interface {
	Get() T
	Next() I
	Equal(I) bool
}

// FromRange returns a vector holding copies of the elements in [first, last).
// Storage is sized to the traversal distance up front.
//
//	v := vector.FromRange[int](src.CBegin().Add(1), src.CEnd())
func FromRange[T any, I ForwardRange[T, I]](first, last I, opts ...Option) *Vector[T] {
	v := New[T](opts...)
	fillFrom(v, first, last)
	return v
}

// Assign replaces the contents of v with copies of the elements in
// [first, last). The range may come from v itself.
func Assign[T any, I ForwardRange[T, I]](v *Vector[T], first, last I) {
	fillFrom(v, first, last)
}

// Distance counts the increments from first to last.
func Distance[T any, I ForwardRange[T, I]](first, last I) int {
	n := 0
	for it := first; !it.Equal(last); it = it.Next() {
		n++
	}
	return n
}

// fillFrom builds the new block before discarding the old one so a range over
// v's own elements stays readable while it is copied.
func fillFrom[T any, I ForwardRange[T, I]](v *Vector[T], first, last I) {
	n := Distance[T](first, last)
	next := v.allocate(n)
	copyFn := v.copier()
	i := 0
	for it := first; !it.Equal(last); it = it.Next() {
		next.ConstructAt(i, copyFn(it.Get()))
		i++
	}
	v.discard()
	v.block = next
	v.size = n
}

// SliceCursor adapts a plain slice to ForwardRange. Cursors over different
// slices must not be compared.
type SliceCursor[T any] struct {
	items []T
	pos   int
}

// SliceBegin returns a cursor at the first element of items.
func SliceBegin[T any](items []T) SliceCursor[T] {
	return SliceCursor[T]{items: items}
}

// SliceEnd returns the one-past-the-last cursor of items.
func SliceEnd[T any](items []T) SliceCursor[T] {
	return SliceCursor[T]{items: items, pos: len(items)}
}

// Get returns the element under c. Reading at the end of the slice reports
// dereference-end and terminates.
func (c SliceCursor[T]) Get() T {
	c.check(c.pos >= len(c.items), fatal.DereferenceEnd)
	return c.items[c.pos]
}

// Next returns a cursor one element further along. Stepping past the end of
// the slice reports traversed-past-bounds and terminates, which also stops a
// range whose first cursor lies after its last.
func (c SliceCursor[T]) Next() SliceCursor[T] {
	c.check(c.pos >= len(c.items), fatal.TraversedPastBounds)
	c.pos++
	return c
}

// Equal reports whether c and o stand at the same position.
func (c SliceCursor[T]) Equal(o SliceCursor[T]) bool {
	return c.pos == o.pos
}

func (c SliceCursor[T]) check(cond bool, kind fatal.Kind) {
	fatal.Default().ExitIf(cond, kind,
		zap.String("container", "slice"),
		zap.Int("position", c.pos),
		zap.Int("size", len(c.items)),
	)
}
