package predicate

import (
	"sort"
	"strings"
	"sync"

	celgo "github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
)

type celProgram struct {
	env     *celgo.Env
	program celgo.Program
}

// celEvaluator declares every binding as dyn, so elements must be values CEL
// can adapt such as scalars, slices and maps. Registered functions accept one
// or two arguments.
type celEvaluator struct {
	engine
}

// NewCELEvaluator constructs an Evaluator backed by cel-go.
func NewCELEvaluator(opts ...EvaluatorOption) Evaluator {
	return &celEvaluator{engine: newEngine("cel", opts)}
}

// Compile parses expression up front. Type checking waits for the first
// element since map elements contribute their keys as variables.
func (e *celEvaluator) Compile(expression string) (Rule, error) {
	if expression == "" {
		return nil, ErrEmptyExpression
	}
	env, err := e.buildEnv(nil)
	if err != nil {
		return nil, compileError(e.name, expression, err)
	}
	if _, issues := env.Parse(expression); issues != nil && issues.Err() != nil {
		return nil, compileError(e.name, expression, issues.Err())
	}
	return &celRule{
		evaluator:  e,
		expression: expression,
		programs:   map[string]*celProgram{},
	}, nil
}

func (e *celEvaluator) loadOrCompile(expression string, names []string) (*celProgram, error) {
	key := e.programKey(expression, names...)
	if program, ok := cached[*celProgram](&e.engine, key); ok {
		return program, nil
	}

	env, err := e.buildEnv(names)
	if err != nil {
		return nil, err
	}
	ast, issues := env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, issues.Err()
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, err
	}

	bundle := &celProgram{
		env:     env,
		program: prg,
	}
	e.store(key, bundle)
	return bundle, nil
}

func (e *celEvaluator) buildEnv(names []string) (*celgo.Env, error) {
	opts := []celgo.EnvOption{
		celgo.Variable("it", celgo.DynType),
		celgo.Variable("index", celgo.IntType),
		celgo.Variable("metadata", celgo.DynType),
	}
	for _, name := range names {
		if reservedBinding(name) {
			continue
		}
		opts = append(opts, celgo.Variable(name, celgo.DynType))
	}
	for _, name := range e.registry.Names() {
		binding := celgo.FunctionBinding(e.callBinding(name))
		opts = append(opts, celgo.Function(name,
			celgo.Overload(name+"_dyn", []*celgo.Type{celgo.DynType}, celgo.DynType, binding),
			celgo.Overload(name+"_dyn_dyn", []*celgo.Type{celgo.DynType, celgo.DynType}, celgo.DynType, binding),
		))
	}
	return celgo.NewEnv(opts...)
}

func (e *celEvaluator) callBinding(name string) func(...ref.Val) ref.Val {
	return func(values ...ref.Val) ref.Val {
		args := make([]any, 0, len(values))
		for _, val := range values {
			args = append(args, val.Value())
		}
		result, err := e.registry.Call(name, args...)
		if err != nil {
			return types.NewErr("%s", err.Error())
		}
		if result == nil {
			return types.NullValue
		}
		return types.DefaultTypeAdapter.NativeToValue(result)
	}
}

func reservedBinding(name string) bool {
	switch name {
	case "it", "index", "metadata":
		return true
	}
	return false
}

type celRule struct {
	evaluator  *celEvaluator
	expression string

	mu       sync.Mutex
	programs map[string]*celProgram
}

func (r *celRule) Engine() string     { return "cel" }
func (r *celRule) Expression() string { return r.expression }

func (r *celRule) Evaluate(ctx RuleContext) (any, error) {
	ctx = ctx.withDefaults()
	bindings := ctx.bindings()
	program, err := r.program(bindings)
	if err != nil {
		return nil, elementError("cel", r.expression, ctx, err)
	}
	out, _, err := program.program.Eval(bindings)
	if err != nil {
		return nil, elementError("cel", r.expression, ctx, err)
	}
	return out.Value(), nil
}

// program returns the checked program for the variable set in bindings.
func (r *celRule) program(bindings map[string]any) (*celProgram, error) {
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	key := strings.Join(names, ",")

	r.mu.Lock()
	defer r.mu.Unlock()
	if program, ok := r.programs[key]; ok {
		return program, nil
	}
	program, err := r.evaluator.loadOrCompile(r.expression, names)
	if err != nil {
		return nil, err
	}
	r.programs[key] = program
	return program, nil
}
