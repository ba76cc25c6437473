// Package fataltest captures fatal diagnostics in-process so tests can assert
// on violations without terminating the test binary.
package fataltest

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-vector/pkg/fatal"
)

// Recorder owns a logger whose fatal hook panics instead of exiting, plus the
// observed entries written through it.
type Recorder struct {
	logger *zap.Logger
	logs   *observer.ObservedLogs
}

// New builds a Recorder.
func New() *Recorder {
	core, logs := observer.New(zapcore.DebugLevel)
	return &Recorder{
		logger: zap.New(core, zap.WithFatalHook(zapcore.WriteThenPanic)),
		logs:   logs,
	}
}

// Logger returns the capturing logger.
func (r *Recorder) Logger() *zap.Logger {
	return r.logger
}

// Reporter returns a fatal.Reporter bound to the capturing logger.
func (r *Recorder) Reporter() *fatal.Reporter {
	return fatal.New(r.logger)
}

// Entries returns every entry logged so far.
func (r *Recorder) Entries() []observer.LoggedEntry {
	return r.logs.All()
}

// Expect runs fn and fails t unless fn triggers a violation of kind. It
// returns the context fields of the fatal entry.
func (r *Recorder) Expect(t testing.TB, kind fatal.Kind, fn func()) map[string]any {
	t.Helper()
	before := r.logs.Len()
	if !panics(fn) {
		t.Fatalf("expected %s violation, call returned normally", kind)
		return nil
	}
	entries := r.logs.All()
	if len(entries) <= before {
		t.Fatalf("expected %s violation, nothing was logged", kind)
		return nil
	}
	last := entries[len(entries)-1]
	if last.Level != zapcore.FatalLevel {
		t.Fatalf("expected fatal entry, got %s %q", last.Level, last.Message)
	}
	fields := last.ContextMap()
	if fields["kind"] != kind.Code() {
		t.Fatalf("expected violation %s, got %v (%s)", kind.Code(), fields["kind"], last.Message)
	}
	if fields["condition"] != kind.Condition().String() {
		t.Fatalf("expected condition %s, got %v", kind.Condition(), fields["condition"])
	}
	return fields
}

func panics(fn func()) (panicked bool) {
	defer func() {
		if recover() != nil {
			panicked = true
		}
	}()
	fn()
	return false
}
