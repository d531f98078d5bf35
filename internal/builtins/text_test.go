package builtins

import (
	"testing"

	"github.com/cwbudde/go-formula/internal/values"
)

func str(v Value) string { return string(v.(values.String)) }

func TestConcatStringifiesAndFlattens(t *testing.T) {
	got, err := Concat([]Value{values.String("a"), values.Sequence{values.Number(1), values.Null{}}, values.Boolean(true)})
	if err != nil {
		t.Fatal(err)
	}
	if str(got) != "a1true" {
		t.Errorf("Concat() = %q, want %q", str(got), "a1true")
	}
}

func TestLeftRightClamp(t *testing.T) {
	got, _ := Left([]Value{values.String("abc"), values.Number(100)})
	if str(got) != "abc" {
		t.Errorf("Left clamp = %q, want abc", str(got))
	}
	got, _ = Right([]Value{values.String("abc"), values.Number(-5)})
	if str(got) != "" {
		t.Errorf("Right negative = %q, want empty", str(got))
	}
}

func TestMidOneBased(t *testing.T) {
	got, err := Mid([]Value{values.String("hello"), values.Number(2), values.Number(3)})
	if err != nil {
		t.Fatal(err)
	}
	if str(got) != "ell" {
		t.Errorf("Mid() = %q, want ell", str(got))
	}
}

func TestLeftNonStringIsValueError(t *testing.T) {
	_, err := Left([]Value{values.Number(1), values.Number(1)})
	fe, ok := values.AsFormulaError(err)
	if !ok || fe.Kind != values.KindValueErr {
		t.Fatalf("err = %v, want #VALUE!", err)
	}
}

func TestUpperLowerLenient(t *testing.T) {
	got, _ := Upper([]Value{values.Number(5)})
	if str(got) != "" {
		t.Errorf("Upper(non-string) = %q, want empty", str(got))
	}
}

func TestProperTitleCases(t *testing.T) {
	got, err := Proper([]Value{values.String("john doe")})
	if err != nil {
		t.Fatal(err)
	}
	if str(got) != "John Doe" {
		t.Errorf("Proper() = %q, want John Doe", str(got))
	}
}

func TestTrimProperPipeline(t *testing.T) {
	trimmed, err := Trim([]Value{values.String("  john doe  ")})
	if err != nil {
		t.Fatal(err)
	}
	got, err := Proper([]Value{trimmed})
	if err != nil {
		t.Fatal(err)
	}
	if str(got) != "John Doe" {
		t.Errorf("Proper(Trim(...)) = %q, want John Doe", str(got))
	}
}

func TestReplaceAllOccurrences(t *testing.T) {
	got, err := Replace([]Value{values.String("banana"), values.String("a"), values.String("o")})
	if err != nil {
		t.Fatal(err)
	}
	if str(got) != "bonono" {
		t.Errorf("Replace() = %q, want bonono", str(got))
	}
}

func TestReplaceNullIsValueError(t *testing.T) {
	_, err := Replace([]Value{values.String("x"), values.Null{}, values.String("y")})
	fe, ok := values.AsFormulaError(err)
	if !ok || fe.Kind != values.KindValueErr {
		t.Fatalf("err = %v, want #VALUE!", err)
	}
}

func TestLenCountsRunes(t *testing.T) {
	got, err := Len([]Value{values.String("abc")})
	if err != nil {
		t.Fatal(err)
	}
	if num(got) != 3 {
		t.Errorf("Len() = %v, want 3", got)
	}
}
