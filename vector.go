// Package vector provides Vector, a generic contiguous-storage dynamic array
// with explicit copy and move semantics, amortized constant-time append, and
// four checked iterator variants (forward/reverse, mutable/read-only).
//
// Misuse is a programmer error. Popping an empty vector, indexing past the
// end, stepping an iterator outside its bounds, or handing a vector an
// iterator produced by another vector writes a diagnostic to stderr and
// terminates the process. No error value is ever returned for these cases.
//
// Any reallocation invalidates every iterator and element pointer previously
// obtained from the vector. This is not detected.
package vector

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goliatone/go-vector/internal/clone"
	"github.com/goliatone/go-vector/internal/storage"
	"github.com/goliatone/go-vector/pkg/activity"
	"github.com/goliatone/go-vector/pkg/fatal"
)

// Cloner is implemented by element types that need custom copy-construction.
// The vector calls Clone whenever it copies an element into a slot.
type Cloner[T any] interface {
	Clone() T
}

// Stats reports slot lifecycle counters accumulated by a vector's storage.
// Counters follow the storage: Move and Swap carry them along.
type Stats struct {
	Allocations   int
	Constructions int
	Destructions  int
	Relocations   int
	Shifts        int
}

// noCopy makes go vet flag Vector values copied by assignment, which would
// alias the same storage. Use Clone or Move instead.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Vector is a resizable, randomly indexable sequence. The zero value is an
// empty vector that has not allocated. A Vector must not be copied after first
// use; it is not safe for concurrent use.
type Vector[T any] struct {
	_ noCopy

	block storage.Block[T]
	size  int
	stats *storage.Stats

	cfg    *config
	id     uuid.UUID
	copyFn func(T) T
}

// New returns an empty vector. No storage is allocated until the first
// insertion.
func New[T any](opts ...Option) *Vector[T] {
	return &Vector[T]{cfg: applyOptions(opts)}
}

// NewSized returns a vector holding n zero values.
func NewSized[T any](n int, opts ...Option) *Vector[T] {
	var zero T
	return NewFilled(n, zero, opts...)
}

// NewFilled returns a vector holding n copies of value.
func NewFilled[T any](n int, value T, opts ...Option) *Vector[T] {
	v := New[T](opts...)
	v.checkCount(n)
	v.construct(n)
	copyFn := v.copier()
	for i := 0; i < n; i++ {
		v.block.ConstructAt(i, copyFn(value))
	}
	v.size = n
	return v
}

// Of returns a vector holding values in order.
func Of[T any](values ...T) *Vector[T] {
	return FromSlice(values)
}

// FromSlice returns a vector holding copies of items in order.
func FromSlice[T any](items []T, opts ...Option) *Vector[T] {
	v := New[T](opts...)
	v.construct(len(items))
	copyFn := v.copier()
	for i, item := range items {
		v.block.ConstructAt(i, copyFn(item))
	}
	v.size = len(items)
	return v
}

// Clone returns an independent copy: fresh storage sized to v's capacity with
// every live element copy-constructed in index order. The copy shares v's
// options.
func (v *Vector[T]) Clone() *Vector[T] {
	out := &Vector[T]{cfg: v.cfg}
	out.copyElements(v)
	return out
}

// CopyFrom replaces v's contents with copies of src's elements. Copying a
// vector onto itself is a no-op. v keeps its own options.
func (v *Vector[T]) CopyFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.discard()
	v.copyElements(src)
}

// Move returns a vector that takes over src's storage and options. src is
// left empty with no allocation.
func Move[T any](src *Vector[T]) *Vector[T] {
	out := &Vector[T]{cfg: src.cfg}
	out.MoveFrom(src)
	return out
}

// MoveFrom releases v's elements and takes over src's storage. src is left
// empty with no allocation. Moving a vector onto itself is a no-op.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.discard()
	v.block, v.size, v.stats = src.block, src.size, src.stats
	src.block, src.size, src.stats = storage.Block[T]{}, 0, nil
}

// Swap exchanges storage with other in constant time. Options and identities
// stay with their vectors.
func (v *Vector[T]) Swap(other *Vector[T]) {
	if v == other {
		return
	}
	v.block, other.block = other.block, v.block
	v.size, other.size = other.size, v.size
	v.stats, other.stats = other.stats, v.stats
}

// Destroy destructs every live element in index order and releases the
// storage. The vector remains usable as an empty vector.
func (v *Vector[T]) Destroy() {
	released := v.block.Cap()
	v.discard()
	if released > 0 {
		v.emit(activity.VerbRelease, map[string]any{"capacity": released})
	}
}

// ID returns the vector's identity token, minted on first use. It labels
// diagnostics and activity events.
func (v *Vector[T]) ID() string {
	if v.id == uuid.Nil {
		v.id = uuid.New()
	}
	return v.id.String()
}

// Stats returns the storage counters.
func (v *Vector[T]) Stats() Stats {
	if v.stats == nil {
		return Stats{}
	}
	return Stats(*v.stats)
}

// construct replaces the storage with a fresh block of n slots. Callers are
// responsible for the previous block's live elements.
func (v *Vector[T]) construct(n int) {
	v.block = v.allocate(n)
}

func (v *Vector[T]) allocate(n int) storage.Block[T] {
	if v.stats == nil {
		v.stats = &storage.Stats{}
	}
	return storage.Allocate[T](n, v.stats)
}

// reallocate moves the live elements into a block of exactly capacity slots.
func (v *Vector[T]) reallocate(capacity int, verb string) {
	from := v.block.Cap()
	next := v.allocate(capacity)
	v.block.RelocateTo(next, v.size)
	v.block.Release()
	v.block = next
	v.emit(verb, map[string]any{
		"from_capacity": from,
		"to_capacity":   capacity,
		"relocated":     v.size,
	})
}

// ensure grows the storage when extra more elements would not fit.
func (v *Vector[T]) ensure(extra int) {
	if storage.Exhausted(v.size, v.block.Cap(), extra) {
		v.reallocate(storage.Grow(v.block.Cap()), activity.VerbReallocate)
	}
}

func (v *Vector[T]) discard() {
	v.block.DestroyRange(0, v.size)
	v.block.Release()
	v.size = 0
}

func (v *Vector[T]) copyElements(src *Vector[T]) {
	v.construct(src.block.Cap())
	copyFn := v.copier()
	for i := 0; i < src.size; i++ {
		v.block.ConstructAt(i, copyFn(*src.block.Slot(i)))
	}
	v.size = src.size
}

// copier resolves the copy-construction policy for T once per vector.
func (v *Vector[T]) copier() func(T) T {
	if v.copyFn != nil {
		return v.copyFn
	}
	var zero T
	switch {
	case isCloner(zero):
		v.copyFn = func(value T) T {
			return any(value).(Cloner[T]).Clone()
		}
	case v.cfg.deep():
		v.copyFn = clone.Value[T]
	default:
		v.copyFn = func(value T) T { return value }
	}
	return v.copyFn
}

func isCloner[T any](zero T) bool {
	_, ok := any(zero).(Cloner[T])
	return ok
}

func (v *Vector[T]) reporter() *fatal.Reporter {
	return v.cfg.fatal()
}

func (v *Vector[T]) fail(cond bool, kind fatal.Kind, fields ...zap.Field) {
	if !cond {
		return
	}
	all := append([]zap.Field{zap.String("container", v.ID()), zap.Int("size", v.size)}, fields...)
	v.reporter().Exit(kind, all...)
}

func (v *Vector[T]) checkCount(n int) {
	v.fail(n < 0, fatal.NegativeCount, zap.Int("count", n))
}

func (v *Vector[T]) checkIndex(i int) {
	v.fail(i < 0 || i >= v.size, fatal.SubscriptOutOfRange, zap.Int("index", i))
}

func (v *Vector[T]) emit(verb string, metadata map[string]any) {
	emitter := v.cfg.activity()
	if !emitter.Enabled() {
		return
	}
	err := emitter.Emit(context.Background(), activity.Event{
		Verb:       verb,
		ObjectType: activity.ObjectTypeVector,
		ObjectID:   v.ID(),
		Metadata:   metadata,
	})
	if err != nil {
		v.reporter().Logger().Warn("vector activity hook failed",
			zap.String("container", v.ID()),
			zap.String("verb", verb),
			zap.Error(err),
		)
	}
}
