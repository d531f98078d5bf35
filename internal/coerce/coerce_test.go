package coerce

import (
	"testing"

	"github.com/cwbudde/go-formula/internal/values"
)

func TestToNumber(t *testing.T) {
	tests := []struct {
		name    string
		v       values.Value
		want    float64
		wantErr bool
		errKind values.ErrorKind
	}{
		{"true", values.Boolean(true), 1, false, 0},
		{"false", values.Boolean(false), 0, false, 0},
		{"number", values.Number(3.5), 3.5, false, 0},
		{"numeric string", values.String("42"), 42, false, 0},
		{"bad string", values.String("abc"), 0, true, values.KindValueErr},
		{"null", values.Null{}, 0, true, values.KindNAErr},
		{"sequence", values.Sequence{values.Number(1)}, 0, true, values.KindValueErr},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToNumber(tt.v)
			if tt.wantErr {
				fe, ok := values.AsFormulaError(err)
				if !ok || fe.Kind != tt.errKind {
					t.Fatalf("err = %v, want kind %v", err, tt.errKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ToNumber(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestToBoolean(t *testing.T) {
	tests := []struct {
		name    string
		v       values.Value
		want    bool
		wantErr bool
	}{
		{"null", values.Null{}, false, false},
		{"true bool", values.Boolean(true), true, false},
		{"nonzero number", values.Number(5), true, false},
		{"zero number", values.Number(0), false, false},
		{"string true", values.String("TRUE"), true, false},
		{"string false", values.String("false"), false, false},
		{"other string", values.String("yes"), false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToBoolean(tt.v)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ToBoolean(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestFlatten(t *testing.T) {
	a := values.Sequence{values.Number(1)}
	b := values.Sequence{values.Number(2)}
	nested := values.Sequence{values.Sequence{values.Number(3), values.Sequence{values.Number(4)}}}

	got := Flatten([]values.Value{a, b, nested})
	want := []values.Value{values.Number(1), values.Number(2), values.Number(3), values.Number(4)}

	if len(got) != len(want) {
		t.Fatalf("Flatten() len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Flatten()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b values.Value
		want bool
	}{
		{values.Null{}, values.Null{}, true},
		{values.Null{}, values.Number(0), false},
		{values.Number(1), values.Number(1), true},
		{values.Number(1), values.String("1"), false},
		{values.String("a"), values.String("a"), true},
		{values.Boolean(true), values.Boolean(true), true},
		{values.Boolean(true), values.Number(1), false},
	}
	for _, tt := range tests {
		if got := Equal(tt.a, tt.b); got != tt.want {
			t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNFCEqualNormalizesCombiningMarks(t *testing.T) {
	precomposed := "\u00e9"
	decomposed := "e\u0301"
	if !NFCEqual(precomposed, decomposed) {
		t.Errorf("NFCEqual(%q, %q) = false, want true", precomposed, decomposed)
	}
	if NFCEqual("a", "b") {
		t.Errorf("NFCEqual(a, b) = true, want false")
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		v    values.Value
		want string
	}{
		{values.Null{}, ""},
		{values.Number(3), "3"},
		{values.Boolean(true), "true"},
		{values.String("x"), "x"},
	}
	for _, tt := range tests {
		if got := Stringify(tt.v); got != tt.want {
			t.Errorf("Stringify(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
