package values

import "testing"

func TestRecordPreservesInsertionOrder(t *testing.T) {
	r := NewRecord([]string{"b", "a", "c"}, []Value{Number(2), Number(1), Number(3)})

	want := []string{"b", "a", "c"}
	got := r.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	v, ok := r.Get("a")
	if !ok || v != Number(1) {
		t.Fatalf("Get(a) = %v, %v; want 1, true", v, ok)
	}
}

func TestRecordFirstValue(t *testing.T) {
	r := NewRecord([]string{"k", "v"}, []Value{String("b"), Number(2)})
	if got := r.FirstValue(); got != String("b") {
		t.Fatalf("FirstValue() = %v, want \"b\"", got)
	}

	empty := &Record{}
	if got := empty.FirstValue(); !IsNull(got) {
		t.Fatalf("FirstValue() on empty record = %v, want Null", got)
	}
}

func TestIsNull(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"nil interface", nil, true},
		{"Null value", Null{}, true},
		{"zero number", Number(0), false},
		{"empty string", String(""), false},
		{"false boolean", Boolean(false), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNull(tt.v); got != tt.want {
				t.Errorf("IsNull(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantOK  bool
	}{
		{"42", 42, true},
		{"3.14", 3.14, true},
		{" 5 ", 5, true},
		{"", 0, false},
		{"abc", 0, false},
		{"5x", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseNumber(tt.input)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("ParseNumber(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestFormulaErrorCode(t *testing.T) {
	tests := []struct {
		err  *FormulaError
		code string
	}{
		{NewValueError("bad"), "#VALUE!"},
		{NewRefError("bad"), "#REF!"},
		{NewNameError("bad"), "#NAME?"},
		{NewNumError("bad"), "#NUM!"},
		{NewDivByZeroError("bad"), "#DIV/0!"},
		{NewNAError("bad"), "#N/A"},
		{NewUnsafeError("bad"), ""},
		{NewCompileError("bad"), ""},
		{NewExpressionError("bad"), ""},
	}
	for _, tt := range tests {
		if got := tt.err.Kind.Code(); got != tt.code {
			t.Errorf("%v.Kind.Code() = %q, want %q", tt.err.Kind, got, tt.code)
		}
	}
}
