package vector

import (
	"testing"

	"github.com/goliatone/go-vector/pkg/fatal/fataltest"
)

// forward collects v through its read-only forward iterators.
func forward[T any](v *Vector[T]) []T {
	out := []T{}
	for it := v.CBegin(); !it.Equal(v.CEnd()); it.Increment() {
		out = append(out, it.Get())
	}
	return out
}

// backward collects v through its read-only reverse iterators.
func backward[T any](v *Vector[T]) []T {
	out := []T{}
	for it := v.CRBegin(); !it.Equal(v.CREnd()); it.Increment() {
		out = append(out, it.Get())
	}
	return out
}

// recorded returns a vector holding items whose violations are captured by a
// fresh recorder instead of exiting.
func recorded[T any](t *testing.T, items ...T) (*Vector[T], *fataltest.Recorder) {
	t.Helper()
	rec := fataltest.New()
	return FromSlice(items, WithLogger(rec.Logger())), rec
}
