// Package predicate compiles boolean expressions into element predicates and
// runs them over a vector. Three engines are available: expr-lang/expr (the
// default), cel-go, and goja behind the js_eval build tag.
//
// Every expression sees the element as `it`, its position as `index`, and the
// caller supplied `metadata` map. When the element is a map[string]any its
// keys are also bound as top-level variables; `it`, `index` and `metadata`
// win on collision.
package predicate

import "fmt"

// RuleContext is the per-element input to a rule. Container names the vector
// the element belongs to and only shows up in errors and log events.
type RuleContext struct {
	Element   any
	Index     int
	Container string
	Metadata  map[string]any
}

func (ctx RuleContext) withDefaults() RuleContext {
	if ctx.Metadata == nil {
		ctx.Metadata = map[string]any{}
	}
	return ctx
}

// bindings returns the variables visible to an expression.
func (ctx RuleContext) bindings() map[string]any {
	env := map[string]any{}
	if fields, ok := ctx.Element.(map[string]any); ok {
		for key, value := range fields {
			env[key] = value
		}
	}
	env["it"] = ctx.Element
	env["index"] = ctx.Index
	env["metadata"] = ctx.Metadata
	return env
}

// Evaluator compiles expressions for one engine.
type Evaluator interface {
	Engine() string
	Compile(expression string) (Rule, error)
}

// Rule is a compiled expression. Rules are safe to reuse across elements.
type Rule interface {
	Engine() string
	Expression() string
	Evaluate(ctx RuleContext) (any, error)
}

// Compile compiles expression with evaluator, falling back to the expr engine
// when evaluator is nil.
func Compile(evaluator Evaluator, expression string) (Rule, error) {
	if evaluator == nil {
		evaluator = NewExprEvaluator()
	}
	return evaluator.Compile(expression)
}

func truth(rule Rule, ctx RuleContext, value any) (bool, error) {
	matched, ok := value.(bool)
	if !ok {
		return false, elementError(rule.Engine(), rule.Expression(), ctx,
			fmt.Errorf("%w: got %T", ErrNonBoolResult, value))
	}
	return matched, nil
}
