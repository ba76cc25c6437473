package predicate

import (
	"time"

	"go.uber.org/zap"
)

// EvaluatorLogEvent describes one rule evaluation against one element.
type EvaluatorLogEvent struct {
	Engine    string
	Expr      string
	Container string
	Index     int
	Duration  time.Duration
	Err       error
}

// EvaluatorLogger records evaluator events.
type EvaluatorLogger interface {
	LogEvaluation(EvaluatorLogEvent)
}

// EvaluatorLoggerFunc adapts a function to EvaluatorLogger.
type EvaluatorLoggerFunc func(EvaluatorLogEvent)

// LogEvaluation implements EvaluatorLogger.
func (f EvaluatorLoggerFunc) LogEvaluation(event EvaluatorLogEvent) {
	if f != nil {
		f(event)
	}
}

type noopEvaluatorLogger struct{}

func (noopEvaluatorLogger) LogEvaluation(EvaluatorLogEvent) {}

// ZapEvaluatorLogger writes successful evaluations at debug level and failed
// ones at warn level.
func ZapEvaluatorLogger(logger *zap.Logger) EvaluatorLogger {
	if logger == nil {
		return noopEvaluatorLogger{}
	}
	return EvaluatorLoggerFunc(func(event EvaluatorLogEvent) {
		fields := []zap.Field{
			zap.String("engine", event.Engine),
			zap.String("expr", event.Expr),
			zap.String("container", event.Container),
			zap.Int("index", event.Index),
			zap.Duration("duration", event.Duration),
		}
		if event.Err != nil {
			logger.Warn("predicate evaluation failed", append(fields, zap.Error(event.Err))...)
			return
		}
		logger.Debug("predicate evaluated", fields...)
	})
}
