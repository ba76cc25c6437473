package predicate

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyExpression   = errors.New("predicate: expression must not be empty")
	ErrNonBoolResult     = errors.New("predicate: expression did not produce a bool")
	ErrEngineUnavailable = errors.New("predicate: engine not built into this binary")
)

// CompileIndex is the Index of an EvaluationError raised before any element
// was evaluated.
const CompileIndex = -1

// EvaluationError reports a rule that failed to compile or failed on an
// element. Container is the ID of the vector being scanned; it is empty for
// compile failures and for rules evaluated outside the algorithms.
type EvaluationError struct {
	Engine    string
	Expr      string
	Container string
	Index     int
	Err       error
}

func (e *EvaluationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch {
	case e.Index == CompileIndex:
		return fmt.Sprintf("predicate: %s rule %q does not compile: %v", e.Engine, e.Expr, e.Err)
	case e.Container == "":
		return fmt.Sprintf("predicate: %s rule %q failed at index %d: %v", e.Engine, e.Expr, e.Index, e.Err)
	default:
		return fmt.Sprintf("predicate: %s rule %q failed at index %d of vector %s: %v",
			e.Engine, e.Expr, e.Index, e.Container, e.Err)
	}
}

func (e *EvaluationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func compileError(engine, expr string, err error) error {
	if err == nil {
		return nil
	}
	return &EvaluationError{Engine: engine, Expr: expr, Index: CompileIndex, Err: err}
}

// elementError pins err to the element described by ctx. An EvaluationError
// coming back from a registry function keeps its own details.
func elementError(engine, expr string, ctx RuleContext, err error) error {
	if err == nil {
		return nil
	}
	var evalErr *EvaluationError
	if errors.As(err, &evalErr) {
		return err
	}
	return &EvaluationError{
		Engine:    engine,
		Expr:      expr,
		Container: ctx.Container,
		Index:     ctx.Index,
		Err:       err,
	}
}
