package parser

import (
	"testing"

	"github.com/cwbudde/go-formula/internal/ast"
	"github.com/cwbudde/go-formula/internal/values"
)

func TestParseLiteralsAndCalls(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`SUM(1,2,3)`, `SUM(1, 2, 3)`},
		{`1 + 2 * 3`, `(1 + (2 * 3))`},
		{`2 ^ 3 ^ 2`, `(2 ^ (3 ^ 2))`},
		{`-1 + 2`, `((-1) + 2)`},
		{`!true`, `(!true)`},
		{`@x + @y`, `(@x + @y)`},
		{`IF(@x > 0, "pos", "neg")`, `IF((@x > 0), "pos", "neg")`},
	}
	for _, tt := range tests {
		expr, err := Parse(tt.input)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", tt.input, err)
		}
		if got := expr.String(); got != tt.want {
			t.Errorf("Parse(%q).String() = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParsePrecedenceLeftAssociative(t *testing.T) {
	expr, err := Parse(`1 - 2 - 3`)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := expr.String(), `((1 - 2) - 3)`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseIfErrorRequiresLiteralFallback(t *testing.T) {
	_, err := Parse(`IFERROR(10/0, "ERR")`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = Parse(`IFERROR(10/0, CONCAT("E","R"))`)
	if err == nil {
		t.Fatal("expected Compile error for computed IFERROR fallback")
	}
	fe, ok := values.AsFormulaError(err)
	if !ok || fe.Kind != values.KindCompileErr {
		t.Errorf("error kind = %v, want Compile", err)
	}
}

func TestParseNestedIfError(t *testing.T) {
	expr, err := Parse(`IFERROR(IFERROR(1/0, "inner"), "outer")`)
	if err != nil {
		t.Fatal(err)
	}
	ifErr, ok := expr.(*ast.IfError)
	if !ok {
		t.Fatalf("expr is %T, want *ast.IfError", expr)
	}
	if _, ok := ifErr.Inner.(*ast.IfError); !ok {
		t.Fatalf("inner is %T, want *ast.IfError", ifErr.Inner)
	}
}

func TestParseTrailingGarbageIsCompileError(t *testing.T) {
	_, err := Parse(`1 + 2 3`)
	if err == nil {
		t.Fatal("expected Compile error for trailing tokens")
	}
}

func TestParseReservedShiftOperatorsAreSyntacticallyValid(t *testing.T) {
	expr, err := Parse(`1 << 2`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	bin, ok := expr.(*ast.BinaryOp)
	if !ok {
		t.Fatalf("expr is %T, want *ast.BinaryOp", expr)
	}
	_ = bin
}

func TestParseUnterminatedCallIsCompileError(t *testing.T) {
	_, err := Parse(`SUM(1, 2`)
	if err == nil {
		t.Fatal("expected Compile error for unterminated call")
	}
}

func TestParseBooleanAndNullLiterals(t *testing.T) {
	expr, err := Parse(`true`)
	if err != nil {
		t.Fatal(err)
	}
	lit := expr.(*ast.Literal)
	if lit.Value != values.Boolean(true) {
		t.Errorf("got %v, want Boolean(true)", lit.Value)
	}
}
