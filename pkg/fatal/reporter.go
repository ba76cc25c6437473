package fatal

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Reporter writes a structured diagnostic for a violation and terminates the
// process through the logger's fatal path. A Reporter never returns control
// after a violation: if a custom fatal hook on the logger returns, the
// process exits anyway.
type Reporter struct {
	logger *zap.Logger
}

var (
	defaultOnce     sync.Once
	defaultReporter *Reporter
)

// Default returns the process-wide reporter, which writes console-encoded
// diagnostics to stderr.
func Default() *Reporter {
	defaultOnce.Do(func() {
		defaultReporter = &Reporter{logger: newStderrLogger()}
	})
	return defaultReporter
}

// New wraps logger. A nil logger falls back to the Default reporter's logger.
func New(logger *zap.Logger) *Reporter {
	if logger == nil {
		return Default()
	}
	return &Reporter{logger: logger}
}

func newStderrLogger() *zap.Logger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		zapcore.DebugLevel,
	)
	return zap.New(core).Named("vector")
}

// Logger exposes the underlying logger for non-fatal diagnostics.
func (r *Reporter) Logger() *zap.Logger {
	if r == nil || r.logger == nil {
		return Default().logger
	}
	return r.logger
}

// ExitIf reports kind and terminates when cond holds.
func (r *Reporter) ExitIf(cond bool, kind Kind, fields ...zap.Field) {
	if !cond {
		return
	}
	r.Exit(kind, fields...)
}

// Exit reports kind and terminates.
func (r *Reporter) Exit(kind Kind, fields ...zap.Field) {
	all := make([]zap.Field, 0, len(fields)+2)
	all = append(all,
		zap.Stringer("condition", kind.Condition()),
		zap.String("kind", kind.Code()),
	)
	all = append(all, fields...)
	logger := r.Logger()
	logger.Fatal(kind.Message(), all...)
	_ = logger.Sync()
	os.Exit(1)
}
