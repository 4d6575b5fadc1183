package compile

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"

	"github.com/aledsdavies/goatlang/internal/ast"
	"github.com/aledsdavies/goatlang/internal/message"
)

// TestEndToEnd exercises the seven scenarios spec's testable-properties
// section lists verbatim, end to end through the whole front end.
func TestEndToEnd(t *testing.T) {
	t.Run("empty source", func(t *testing.T) {
		result := Compile("empty.goat", "", Options{})
		defer result.Release()

		if !result.Errs.Empty() {
			t.Fatalf("expected no errors, got: %s", result.Errs.Format("empty.goat", nil, message.New(language.English)))
		}
		if result.Root == nil {
			t.Fatal("expected a root node")
		}
		if got := result.Root.Arity(); got != 0 {
			t.Fatalf("expected zero statements, got %d", got)
		}
	})

	t.Run("simple assignment", func(t *testing.T) {
		result := Compile("assign.goat", "x = 1;", Options{})
		defer result.Release()
		requireNoCritical(t, result)

		if result.Root.Arity() != 1 {
			t.Fatalf("expected one statement, got %d", result.Root.Arity())
		}
		stmt, ok := result.Root.Child(0).(*ast.StatementExpression)
		if !ok {
			t.Fatalf("expected a statement_expression, got %T", result.Root.Child(0))
		}
		assign, ok := stmt.Expr.(*ast.SimpleAssignment)
		if !ok {
			t.Fatalf("expected a simple_assignment, got %T", stmt.Expr)
		}
		v, ok := assign.Target.(*ast.Variable)
		if !ok || v.Name != "x" {
			t.Fatalf("expected target variable x, got %#v", assign.Target)
		}
		n, ok := assign.Value.(*ast.Integer)
		if !ok || n.Value != 1 {
			t.Fatalf("expected value integer 1, got %#v", assign.Value)
		}
	})

	t.Run("function call", func(t *testing.T) {
		result := Compile("call.goat", `print("hi");`, Options{})
		defer result.Release()
		requireNoCritical(t, result)

		stmt := result.Root.Child(0).(*ast.StatementExpression)
		call, ok := stmt.Expr.(*ast.FunctionCall)
		if !ok {
			t.Fatalf("expected a function_call, got %T", stmt.Expr)
		}
		callee, ok := call.Callee.(*ast.Variable)
		if !ok || callee.Name != "print" {
			t.Fatalf("expected callee variable print, got %#v", call.Callee)
		}
		if len(call.Args) != 1 {
			t.Fatalf("expected one argument, got %d", len(call.Args))
		}
		arg, ok := call.Args[0].(*ast.StaticString)
		if !ok || arg.Value != "hi" {
			t.Fatalf("expected static_string \"hi\", got %#v", call.Args[0])
		}
	})

	t.Run("function object with params and body", func(t *testing.T) {
		result := Compile("fn.goat", "func(a,b){ return a+b; }", Options{})
		defer result.Release()
		requireNoCritical(t, result)

		if result.Root.Arity() != 1 {
			t.Fatalf("expected one statement, got %d", result.Root.Arity())
		}
		stmt := result.Root.Child(0).(*ast.StatementExpression)
		fn, ok := stmt.Expr.(*ast.FunctionObject)
		if !ok {
			t.Fatalf("expected a function_object, got %T", stmt.Expr)
		}
		if diff := cmp.Diff([]string{"a", "b"}, fn.Params); diff != "" {
			t.Errorf("params mismatch (-want +got):\n%s", diff)
		}
		if len(fn.Body) != 1 {
			t.Fatalf("expected one body statement, got %d", len(fn.Body))
		}
		ret, ok := fn.Body[0].(*ast.Return)
		if !ok {
			t.Fatalf("expected a return, got %T", fn.Body[0])
		}
		sum, ok := ret.Value.(*ast.BinaryOp)
		if !ok || sum.Op != ast.OpAdd {
			t.Fatalf("expected binary_add, got %#v", ret.Value)
		}
		left, lok := sum.Left.(*ast.Variable)
		right, rok := sum.Right.(*ast.Variable)
		if !lok || !rok || left.Name != "a" || right.Name != "b" {
			t.Fatalf("expected variable(a) + variable(b), got %#v + %#v", sum.Left, sum.Right)
		}
	})

	t.Run("var declaration", func(t *testing.T) {
		result := Compile("var.goat", "var x = 1;", Options{})
		defer result.Release()
		requireNoCritical(t, result)

		if result.Root.Arity() != 1 {
			t.Fatalf("expected one statement, got %d", result.Root.Arity())
		}
		stmt, ok := result.Root.Child(0).(*ast.StatementExpression)
		if !ok {
			t.Fatalf("expected a statement_expression, got %T", result.Root.Child(0))
		}
		assign, ok := stmt.Expr.(*ast.SimpleAssignment)
		if !ok {
			t.Fatalf("expected a simple_assignment, got %T", stmt.Expr)
		}
		v, ok := assign.Target.(*ast.Variable)
		if !ok || v.Name != "x" {
			t.Fatalf("expected target variable x, got %#v", assign.Target)
		}
	})

	t.Run("grouped var block", func(t *testing.T) {
		result := Compile("vargroup.goat", "var ( a = 1; b = 2 );", Options{})
		defer result.Release()
		requireNoCritical(t, result)

		if result.Root.Arity() != 2 {
			t.Fatalf("expected two statements, got %d", result.Root.Arity())
		}
		names := []string{"a", "b"}
		values := []int64{1, 2}
		for i, want := range names {
			stmt, ok := result.Root.Child(i).(*ast.StatementExpression)
			if !ok {
				t.Fatalf("statement %d: expected a statement_expression, got %T", i, result.Root.Child(i))
			}
			assign, ok := stmt.Expr.(*ast.SimpleAssignment)
			if !ok {
				t.Fatalf("statement %d: expected a simple_assignment, got %T", i, stmt.Expr)
			}
			v, ok := assign.Target.(*ast.Variable)
			if !ok || v.Name != want {
				t.Fatalf("statement %d: expected target variable %s, got %#v", i, want, assign.Target)
			}
			n, ok := assign.Value.(*ast.Integer)
			if !ok || n.Value != values[i] {
				t.Fatalf("statement %d: expected value %d, got %#v", i, values[i], assign.Value)
			}
		}
	})

	t.Run("unclosed opening bracket", func(t *testing.T) {
		result := Compile("unclosed.goat", "(1+2", Options{})
		defer result.Release()

		if !result.Errs.HasCritical() {
			t.Fatal("expected a critical error")
		}
		if result.Root != nil {
			t.Fatal("expected no root node after a critical error")
		}
		e := result.Errs.First()
		if !strings.Contains(e.Message, "(") {
			t.Fatalf("expected message to mention '(', got %q", e.Message)
		}
	})

	t.Run("double assignment operator", func(t *testing.T) {
		result := Compile("badassign.goat", "a = = 1;", Options{})
		defer result.Release()

		if !result.Errs.HasCritical() {
			t.Fatal("expected a critical error")
		}
		if result.Root != nil {
			t.Fatal("expected no AST to be produced")
		}
	})

	t.Run("invalid escape sequence", func(t *testing.T) {
		result := Compile("badstring.goat", `"bad\q"`, Options{})
		defer result.Release()

		if !result.Errs.HasCritical() {
			t.Fatal("expected a critical error")
		}
		found := false
		for _, e := range result.Errs.InOrder() {
			if strings.Contains(e.Message, "q") {
				found = true
			}
		}
		if !found {
			t.Fatal("expected a diagnostic mentioning the offending escape glyph")
		}
	})
}

func TestLocalizedDiagnostics(t *testing.T) {
	result := Compile("unclosed.goat", "(1+2", Options{Lang: language.Russian})
	defer result.Release()

	if !result.Errs.HasCritical() {
		t.Fatal("expected a critical error")
	}
	rendered := result.Errs.Format("unclosed.goat", []rune("(1+2"), message.New(language.Russian))
	if rendered == "" {
		t.Fatal("expected a non-empty rendered diagnostic")
	}
}

func requireNoCritical(t *testing.T, result *Result) {
	t.Helper()
	if result.Errs.HasCritical() {
		t.Fatalf("unexpected critical error: %s", result.Errs.Format("test.goat", nil, message.New(language.English)))
	}
	if result.Root == nil {
		t.Fatal("expected a root node")
	}
}
