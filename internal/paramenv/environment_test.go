package paramenv

import (
	"testing"

	"github.com/cwbudde/go-formula/internal/values"
)

func TestLookupUnknownIsRef(t *testing.T) {
	env := New(nil)
	_, err := env.Lookup("missing")
	fe, ok := values.AsFormulaError(err)
	if !ok || fe.Kind != values.KindRefErr {
		t.Fatalf("err = %v, want #REF!", err)
	}
}

func TestLookupNullIsNA(t *testing.T) {
	env := New(map[string]values.Value{"x": values.Null{}})
	_, err := env.Lookup("x")
	fe, ok := values.AsFormulaError(err)
	if !ok || fe.Kind != values.KindNAErr {
		t.Fatalf("err = %v, want #N/A", err)
	}
}

func TestLookupScalarPassesSequenceThrough(t *testing.T) {
	seq := values.Sequence{values.Number(1), values.Number(2)}
	env := New(map[string]values.Value{"arr": seq})
	v, err := env.Lookup("arr")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := v.(values.Sequence); !ok {
		t.Fatalf("Lookup returned %T, want values.Sequence", v)
	}
}

func TestRawNullIsEmptyNotError(t *testing.T) {
	env := New(map[string]values.Value{"x": values.Null{}})
	v, err := env.Raw("x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !values.IsNull(v) {
		t.Fatalf("Raw(null) = %v, want Null", v)
	}
}

func TestSequenceWrapsScalar(t *testing.T) {
	seq := Sequence(values.Number(5))
	if len(seq) != 1 || seq[0] != values.Number(5) {
		t.Fatalf("Sequence(scalar) = %v", seq)
	}
}

func TestSequenceOfNullIsEmpty(t *testing.T) {
	seq := Sequence(values.Null{})
	if len(seq) != 0 {
		t.Fatalf("Sequence(null) = %v, want empty", seq)
	}
}

func TestNumericSequenceCoercesElements(t *testing.T) {
	seq := values.Sequence{values.String("1"), values.Boolean(true)}
	out, err := NumericSequence(seq)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || out[0] != 1 || out[1] != 1 {
		t.Fatalf("NumericSequence() = %v", out)
	}
}

func TestClassify(t *testing.T) {
	rec := values.NewRecord([]string{"k"}, []values.Value{values.Number(1)})
	tests := []struct {
		v    values.Value
		want Shape
	}{
		{values.Number(1), ShapeScalar},
		{values.Sequence{values.Number(1)}, ShapeSequence},
		{rec, ShapeRecord},
		{values.Sequence{rec}, ShapeSequenceOfRecords},
	}
	for _, tt := range tests {
		if got := Classify(tt.v); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
