//go:build !js_eval

package predicate

// unavailableEvaluator stands in for the goja engine in builds without the
// js_eval tag. Every Compile fails with ErrEngineUnavailable, so callers get
// an error instead of a nil Evaluator.
type unavailableEvaluator struct {
	engine
}

// NewJSEvaluator returns an Evaluator whose Compile reports
// ErrEngineUnavailable. Build with -tags js_eval for the goja engine.
func NewJSEvaluator(opts ...EvaluatorOption) Evaluator {
	return &unavailableEvaluator{engine: newEngine("js", opts)}
}

func (e *unavailableEvaluator) Compile(expression string) (Rule, error) {
	if expression == "" {
		return nil, ErrEmptyExpression
	}
	return nil, compileError(e.name, expression, ErrEngineUnavailable)
}

func jsEvaluatorAvailable() bool {
	return false
}
