package predicate

import (
	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"
)

// exprEvaluator compiles rules with github.com/expr-lang/expr.
type exprEvaluator struct {
	engine
}

// NewExprEvaluator constructs an Evaluator backed by expr-lang/expr.
func NewExprEvaluator(opts ...EvaluatorOption) Evaluator {
	return &exprEvaluator{engine: newEngine("expr", opts)}
}

func (e *exprEvaluator) Compile(expression string) (Rule, error) {
	if expression == "" {
		return nil, ErrEmptyExpression
	}
	program, err := e.loadOrCompile(expression)
	if err != nil {
		return nil, compileError(e.name, expression, err)
	}
	return &exprRule{program: program, expression: expression}, nil
}

// loadOrCompile declares no variables up front; undefined names evaluate to
// nil so map elements can expose their keys.
func (e *exprEvaluator) loadOrCompile(expression string) (*exprvm.Program, error) {
	key := e.programKey(expression)
	if program, ok := cached[*exprvm.Program](&e.engine, key); ok {
		return program, nil
	}
	options := []exprlang.Option{
		exprlang.Env(map[string]any{}),
		exprlang.AllowUndefinedVariables(),
	}
	for _, name := range e.registry.Names() {
		options = append(options, exprlang.Function(name, e.registryFunction(name)))
	}
	program, err := exprlang.Compile(expression, options...)
	if err != nil {
		return nil, err
	}
	e.store(key, program)
	return program, nil
}

func (e *exprEvaluator) registryFunction(name string) func(...any) (any, error) {
	registry := e.registry
	return func(arguments ...any) (any, error) {
		return registry.Call(name, arguments...)
	}
}

type exprRule struct {
	program    *exprvm.Program
	expression string
}

func (r *exprRule) Engine() string     { return "expr" }
func (r *exprRule) Expression() string { return r.expression }

func (r *exprRule) Evaluate(ctx RuleContext) (any, error) {
	ctx = ctx.withDefaults()
	result, err := exprlang.Run(r.program, ctx.bindings())
	if err != nil {
		return nil, elementError("expr", r.expression, ctx, err)
	}
	return result, nil
}
