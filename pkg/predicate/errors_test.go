package predicate

import (
	"errors"
	"strings"
	"testing"
)

func TestElementErrorCarriesPosition(t *testing.T) {
	base := errors.New("boom")
	ctx := RuleContext{Index: 1, Container: "4f1c"}
	err := elementError("expr", "it && missing", ctx, base)

	var evalErr *EvaluationError
	if !errors.As(err, &evalErr) {
		t.Fatalf("expected EvaluationError, got %T", err)
	}
	if evalErr.Engine != "expr" || evalErr.Expr != "it && missing" {
		t.Fatalf("unexpected rule metadata %+v", evalErr)
	}
	if evalErr.Index != 1 || evalErr.Container != "4f1c" {
		t.Fatalf("expected element 1 of 4f1c, got %d of %q", evalErr.Index, evalErr.Container)
	}
	if !errors.Is(err, base) {
		t.Fatalf("wrapped error should unwrap to base error")
	}
	want := `predicate: expr rule "it && missing" failed at index 1 of vector 4f1c: boom`
	if got := err.Error(); got != want {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestElementErrorWithoutContainer(t *testing.T) {
	err := elementError("cel", "it > 1", RuleContext{Index: 3}, errors.New("no such key"))
	if got := err.Error(); !strings.HasSuffix(got, "failed at index 3: no such key") {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestElementErrorKeepsExistingDetails(t *testing.T) {
	existing := &EvaluationError{Engine: "expr", Expr: "inner", Index: 2, Err: errors.New("nested")}
	err := elementError("cel", "outer", RuleContext{Index: 9}, existing)
	if err != existing {
		t.Fatalf("expected the existing error back, got %v", err)
	}
	if existing.Index != 2 || existing.Expr != "inner" {
		t.Fatalf("existing error should not be rewritten, got %+v", existing)
	}
}

func TestCompileErrorHasNoElement(t *testing.T) {
	err := compileError("js", "it >", errors.New("unexpected end"))

	var evalErr *EvaluationError
	if !errors.As(err, &evalErr) {
		t.Fatalf("expected EvaluationError, got %T", err)
	}
	if evalErr.Index != CompileIndex || evalErr.Container != "" {
		t.Fatalf("compile errors have no element, got %+v", evalErr)
	}
	if got := err.Error(); got != `predicate: js rule "it >" does not compile: unexpected end` {
		t.Fatalf("unexpected message %q", got)
	}
	if compileError("js", "it", nil) != nil || elementError("js", "it", RuleContext{}, nil) != nil {
		t.Fatalf("nil error should stay nil")
	}
	var nilErr *EvaluationError
	if nilErr.Error() != "<nil>" || nilErr.Unwrap() != nil {
		t.Fatalf("nil receiver should be safe")
	}
}
