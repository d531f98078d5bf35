package builtins

import (
	"testing"

	"github.com/cwbudde/go-formula/internal/values"
)

func boolv(v Value) bool { return bool(v.(values.Boolean)) }

func TestAndRaisesOnBadElement(t *testing.T) {
	_, err := And([]Value{values.Boolean(true), values.String("nope")})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestOrNeverRaises(t *testing.T) {
	got, err := Or([]Value{values.String("nope"), values.Boolean(true)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !boolv(got) {
		t.Errorf("Or() = %v, want true", got)
	}
}

func TestXorParity(t *testing.T) {
	got, _ := Xor([]Value{values.Boolean(true), values.Boolean(true), values.Boolean(true)})
	if !boolv(got) {
		t.Errorf("Xor(true,true,true) = %v, want true (odd count)", got)
	}
}

func TestNotNullIsTrue(t *testing.T) {
	got, err := Not([]Value{values.Null{}})
	if err != nil {
		t.Fatal(err)
	}
	if !boolv(got) {
		t.Errorf("Not(null) = %v, want true", got)
	}
}

func TestIfSelectsBranch(t *testing.T) {
	got, err := If([]Value{values.Boolean(false), values.Number(1), values.Number(2)})
	if err != nil {
		t.Fatal(err)
	}
	if num(got) != 2 {
		t.Errorf("If() = %v, want 2", got)
	}
}

func TestIfsOddArityIsValueError(t *testing.T) {
	_, err := Ifs([]Value{values.Boolean(true)})
	fe, ok := values.AsFormulaError(err)
	if !ok || fe.Kind != values.KindValueErr {
		t.Fatalf("err = %v, want #VALUE!", err)
	}
}

func TestIfsNoMatchIsNull(t *testing.T) {
	got, err := Ifs([]Value{values.Boolean(false), values.Number(1)})
	if err != nil {
		t.Fatal(err)
	}
	if !values.IsNull(got) {
		t.Errorf("Ifs() = %v, want null", got)
	}
}

func TestSwitchWithDefault(t *testing.T) {
	got, err := Switch([]Value{values.Number(3), values.Number(1), values.String("one"), values.Number(2), values.String("two"), values.String("other")})
	if err != nil {
		t.Fatal(err)
	}
	if got != values.Value(values.String("other")) {
		t.Errorf("Switch() = %v, want other", got)
	}
}

func TestSwitchNoMatchNoDefaultIsNull(t *testing.T) {
	got, err := Switch([]Value{values.Number(3), values.Number(1), values.String("one")})
	if err != nil {
		t.Fatal(err)
	}
	if !values.IsNull(got) {
		t.Errorf("Switch() = %v, want null", got)
	}
}
