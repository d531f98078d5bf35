package builtins

import (
	"math"
	"testing"

	"github.com/cwbudde/go-formula/internal/values"
)

func seq(vs ...Value) values.Sequence { return values.Sequence(vs) }

func TestParseCriterionPrefixOrder(t *testing.T) {
	cases := []struct {
		crit string
		v    Value
		want bool
	}{
		{">=3", values.Number(3), true},
		{">=3", values.Number(2), false},
		{"<=3", values.Number(3), true},
		{"<>3", values.Number(4), true},
		{"<>3", values.Number(3), false},
		{">3", values.Number(4), true},
		{"<3", values.Number(2), true},
		{"=3", values.Number(3), true},
		{"3", values.Number(3), true},
		{"apple", values.String("apple"), true},
		{"apple", values.String("banana"), false},
	}
	for _, c := range cases {
		m, err := parseCriterion(c.crit)
		if err != nil {
			t.Fatalf("parseCriterion(%q): %v", c.crit, err)
		}
		if got := m(c.v); got != c.want {
			t.Errorf("parseCriterion(%q)(%v) = %v, want %v", c.crit, c.v, got, c.want)
		}
	}
}

func TestParseCriterionRelationalNonNumericIsValueError(t *testing.T) {
	_, err := parseCriterion(">=banana")
	fe, ok := values.AsFormulaError(err)
	if !ok || fe.Kind != values.KindValueErr {
		t.Fatalf("parseCriterion(\">=banana\") err = %v, want #VALUE!", err)
	}
}

func TestParseCriterionBareStringUsesLocaleEquality(t *testing.T) {
	m, err := parseCriterion("apple")
	if err != nil {
		t.Fatal(err)
	}
	if !m(values.String("apple")) {
		t.Error("want apple == apple")
	}
	if m(values.String("banana")) {
		t.Error("want apple != banana")
	}
}

func TestCountIf(t *testing.T) {
	rng := seq(values.Number(1), values.Number(2), values.Number(3), values.Number(4))
	got, err := CountIf([]Value{rng, values.String(">2")})
	if err != nil {
		t.Fatal(err)
	}
	if num(got) != 2 {
		t.Errorf("CountIf() = %v, want 2", got)
	}
}

func TestSumIfNoCompanion(t *testing.T) {
	rng := seq(values.Number(1), values.Number(2), values.Number(3))
	got, err := SumIf([]Value{rng, values.String(">1")})
	if err != nil {
		t.Fatal(err)
	}
	if num(got) != 5 {
		t.Errorf("SumIf() = %v, want 5", got)
	}
}

func TestSumIfWithCompanionRange(t *testing.T) {
	rng := seq(values.String("a"), values.String("b"), values.String("a"))
	sumRange := seq(values.Number(10), values.Number(20), values.Number(30))
	got, err := SumIf([]Value{rng, values.String("a"), sumRange})
	if err != nil {
		t.Fatal(err)
	}
	if num(got) != 40 {
		t.Errorf("SumIf() = %v, want 40", got)
	}
}

func TestSumIfCompanionShorterTreatsMissingAsNull(t *testing.T) {
	rng := seq(values.String("a"), values.String("a"), values.String("a"))
	sumRange := seq(values.Number(10))
	got, err := SumIf([]Value{rng, values.String("a"), sumRange})
	if err != nil {
		t.Fatal(err)
	}
	if num(got) != 10 {
		t.Errorf("SumIf() = %v, want 10", got)
	}
}

func TestAverageIfNoMatchesIsNaN(t *testing.T) {
	rng := seq(values.Number(1), values.Number(2))
	got, err := AverageIf([]Value{rng, values.String(">100")})
	if err != nil {
		t.Fatal(err)
	}
	if n := num(got); !math.IsNaN(n) {
		t.Errorf("AverageIf() = %v, want NaN", n)
	}
}

func TestAverageIfWithCompanion(t *testing.T) {
	rng := seq(values.String("x"), values.String("y"), values.String("x"))
	avgRange := seq(values.Number(2), values.Number(100), values.Number(6))
	got, err := AverageIf([]Value{rng, values.String("x"), avgRange})
	if err != nil {
		t.Fatal(err)
	}
	if num(got) != 4 {
		t.Errorf("AverageIf() = %v, want 4", got)
	}
}
