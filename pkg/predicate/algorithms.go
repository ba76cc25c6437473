package predicate

import (
	"time"

	vector "github.com/goliatone/go-vector"
)

// MatchOption configures CountIf, FindIf, EraseIf and Filter.
type MatchOption func(*matcher)

// WithEvaluatorLogger receives one event per evaluated element.
func WithEvaluatorLogger(logger EvaluatorLogger) MatchOption {
	return func(m *matcher) {
		if logger == nil {
			m.logger = noopEvaluatorLogger{}
			return
		}
		m.logger = logger
	}
}

// WithMetadata binds metadata as the `metadata` variable.
func WithMetadata(metadata map[string]any) MatchOption {
	return func(m *matcher) {
		m.metadata = metadata
	}
}

type matcher struct {
	rule      Rule
	container string
	logger    EvaluatorLogger
	metadata  map[string]any
}

// newMatcher tags every evaluation with container, the ID of the vector being
// scanned.
func newMatcher(rule Rule, container string, opts []MatchOption) *matcher {
	m := &matcher{rule: rule, container: container, logger: noopEvaluatorLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

func (m *matcher) match(index int, element any) (bool, error) {
	ctx := RuleContext{
		Element:   element,
		Index:     index,
		Container: m.container,
		Metadata:  m.metadata,
	}.withDefaults()
	start := time.Now()
	value, err := m.rule.Evaluate(ctx)
	matched := false
	if err == nil {
		matched, err = truth(m.rule, ctx, value)
	}
	m.logger.LogEvaluation(EvaluatorLogEvent{
		Engine:    m.rule.Engine(),
		Expr:      m.rule.Expression(),
		Container: ctx.Container,
		Index:     ctx.Index,
		Duration:  time.Since(start),
		Err:       err,
	})
	return matched, err
}

// CountIf returns the number of elements of v matching rule.
func CountIf[T any](v *vector.Vector[T], rule Rule, opts ...MatchOption) (int, error) {
	m := newMatcher(rule, v.ID(), opts)
	count := 0
	for i, element := range v.All() {
		matched, err := m.match(i, element)
		if err != nil {
			return 0, err
		}
		if matched {
			count++
		}
	}
	return count, nil
}

// FindIf returns an iterator at the first element matching rule, or CEnd.
func FindIf[T any](v *vector.Vector[T], rule Rule, opts ...MatchOption) (vector.ConstForwardIterator[T], error) {
	m := newMatcher(rule, v.ID(), opts)
	for it := v.CBegin(); !it.Equal(v.CEnd()); it.Increment() {
		matched, err := m.match(it.Index(), it.Get())
		if err != nil {
			return v.CEnd(), err
		}
		if matched {
			return it, nil
		}
	}
	return v.CEnd(), nil
}

// EraseIf removes every element matching rule and returns how many were
// removed. Every element is evaluated before the first erase, so an
// evaluation error leaves v untouched.
func EraseIf[T any](v *vector.Vector[T], rule Rule, opts ...MatchOption) (int, error) {
	m := newMatcher(rule, v.ID(), opts)
	marked := make([]bool, v.Len())
	for i, element := range v.All() {
		matched, err := m.match(i, element)
		if err != nil {
			return 0, err
		}
		marked[i] = matched
	}

	removed := 0
	for end := len(marked); end > 0; {
		if !marked[end-1] {
			end--
			continue
		}
		start := end - 1
		for start > 0 && marked[start-1] {
			start--
		}
		v.Erase(v.Begin().Add(start), v.Begin().Add(end))
		removed += end - start
		end = start
	}
	return removed, nil
}

// Filter returns a new vector holding copies of the elements matching rule,
// in order.
func Filter[T any](v *vector.Vector[T], rule Rule, opts ...MatchOption) (*vector.Vector[T], error) {
	m := newMatcher(rule, v.ID(), opts)
	out := vector.New[T]()
	for i, element := range v.All() {
		matched, err := m.match(i, element)
		if err != nil {
			return nil, err
		}
		if matched {
			out.PushBack(element)
		}
	}
	return out, nil
}
