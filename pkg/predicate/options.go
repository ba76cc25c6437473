package predicate

import "strings"

// EvaluatorOption configures NewExprEvaluator, NewCELEvaluator and
// NewJSEvaluator alike.
type EvaluatorOption func(*engine)

// WithProgramCache shares compiled programs through cache. One cache may
// serve several evaluators and engines: entries are keyed by engine,
// expression and the registered function names.
func WithProgramCache(cache ProgramCache) EvaluatorOption {
	return func(e *engine) {
		e.cache = cache
	}
}

// WithFunctionRegistry exposes the functions of registry to expressions.
// The registry is copied, so later registrations do not reach the evaluator.
func WithFunctionRegistry(registry *FunctionRegistry) EvaluatorOption {
	return func(e *engine) {
		if registry == nil {
			return
		}
		e.registry = registry.Clone()
	}
}

// engine holds what the three evaluators share: a name, an optional program
// cache and the functions callable from expressions.
type engine struct {
	name     string
	cache    ProgramCache
	registry *FunctionRegistry
}

func newEngine(name string, opts []EvaluatorOption) engine {
	e := engine{name: name}
	for _, opt := range opts {
		if opt != nil {
			opt(&e)
		}
	}
	return e
}

func (e *engine) Engine() string { return e.name }

// programKey identifies a compiled program. Programs capture the registry
// they were compiled against, so its names are part of the key; variables
// lists extra declarations for engines that type check against them.
func (e *engine) programKey(expression string, variables ...string) string {
	parts := []string{e.name, expression, strings.Join(e.registry.Names(), ",")}
	if len(variables) > 0 {
		parts = append(parts, strings.Join(variables, ","))
	}
	return strings.Join(parts, "\x00")
}

// cached looks key up and returns it when it holds a P. Entries of another
// type are treated as misses.
func cached[P any](e *engine, key string) (P, bool) {
	var zero P
	if e.cache == nil {
		return zero, false
	}
	value, ok := e.cache.Get(key)
	if !ok {
		return zero, false
	}
	program, ok := value.(P)
	return program, ok
}

func (e *engine) store(key string, program any) {
	if e.cache != nil {
		e.cache.Set(key, program)
	}
}
