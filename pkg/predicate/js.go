//go:build js_eval

package predicate

import (
	"fmt"

	"github.com/dop251/goja"
)

type jsEvaluator struct {
	engine
}

// NewJSEvaluator constructs an Evaluator backed by goja.
func NewJSEvaluator(opts ...EvaluatorOption) Evaluator {
	return &jsEvaluator{engine: newEngine("js", opts)}
}

func (e *jsEvaluator) Compile(expression string) (Rule, error) {
	if expression == "" {
		return nil, ErrEmptyExpression
	}
	program, err := e.loadOrCompile(expression)
	if err != nil {
		return nil, compileError(e.name, expression, err)
	}
	return &jsRule{
		evaluator:  e,
		expression: expression,
		program:    program,
	}, nil
}

func (e *jsEvaluator) loadOrCompile(expression string) (*goja.Program, error) {
	key := e.programKey(expression)
	if program, ok := cached[*goja.Program](&e.engine, key); ok {
		return program, nil
	}
	program, err := goja.Compile("", wrapExpression(expression), false)
	if err != nil {
		return nil, err
	}
	e.store(key, program)
	return program, nil
}

// run executes program in a fresh runtime; goja runtimes are not safe for
// concurrent use.
func (e *jsEvaluator) run(ctx RuleContext, program *goja.Program) (any, error) {
	vm := goja.New()
	if err := e.injectContext(vm, ctx); err != nil {
		return nil, err
	}
	value, err := vm.RunProgram(program)
	if err != nil {
		return nil, err
	}
	return value.Export(), nil
}

func (e *jsEvaluator) injectContext(vm *goja.Runtime, ctx RuleContext) error {
	for key, value := range ctx.bindings() {
		if err := vm.Set(key, value); err != nil {
			return err
		}
	}
	for _, name := range e.registry.Names() {
		fn := name
		err := vm.Set(fn, func(arguments ...any) (any, error) {
			return e.registry.Call(fn, arguments...)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func wrapExpression(expression string) string {
	return fmt.Sprintf("(function(){ return (%s); })()", expression)
}

type jsRule struct {
	evaluator  *jsEvaluator
	expression string
	program    *goja.Program
}

func (r *jsRule) Engine() string     { return "js" }
func (r *jsRule) Expression() string { return r.expression }

func (r *jsRule) Evaluate(ctx RuleContext) (any, error) {
	ctx = ctx.withDefaults()
	result, err := r.evaluator.run(ctx, r.program)
	if err != nil {
		return nil, elementError("js", r.expression, ctx, err)
	}
	return result, nil
}

func jsEvaluatorAvailable() bool {
	return true
}
