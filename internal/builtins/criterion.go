package builtins

import (
	"math"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/cwbudde/go-formula/internal/coerce"
	"github.com/cwbudde/go-formula/internal/paramenv"
	"github.com/cwbudde/go-formula/internal/values"
)

// criterionCollator provides locale-aware string equality for the "="/bare
// criterion path. It uses English collation; unlike text.go's properCaser
// there is no setter, so SetProperLocale does not change it.
var criterionCollator = collate.New(language.English)

// matcher tests whether a range element satisfies a criterion.
type matcher func(v Value) bool

// parseCriterion compiles a criterion string per spec.md §4.G: prefix
// detection is tried in order ">=", "<=", "<>", ">", "<", "=", then a bare
// value is an exact-match criterion. Relational operators always parse the
// remainder as a number; a non-numeric remainder raises #VALUE! rather than
// falling back to string comparison. "<>" is a string-inequality test on
// the element's stringified form. "=" and bare criteria compare by numeric
// equality within 1e-7 if both sides parse as numbers, else by
// criterionCollator's locale-aware string equality.
func parseCriterion(crit string) (matcher, error) {
	prefixes := []string{">=", "<=", "<>", ">", "<", "="}
	var op, rest string
	for _, p := range prefixes {
		if strings.HasPrefix(crit, p) {
			op, rest = p, crit[len(p):]
			break
		}
	}
	if op == "" {
		rest = crit
	}

	switch op {
	case ">=", "<=", ">", "<":
		want, ok := values.ParseNumber(rest)
		if !ok {
			return nil, values.NewValueError("relational criterion %q is not numeric", crit)
		}
		return func(v Value) bool {
			n, err := coerce.ToNumber(v)
			if err != nil {
				return false
			}
			switch op {
			case ">=":
				return n >= want
			case "<=":
				return n <= want
			case ">":
				return n > want
			default:
				return n < want
			}
		}, nil
	case "<>":
		return func(v Value) bool {
			return coerce.Stringify(v) != rest
		}, nil
	default: // "=" or bare
		numWant, numOK := values.ParseNumber(rest)
		return func(v Value) bool {
			if numOK {
				if n, err := coerce.ToNumber(v); err == nil {
					return coerce.NumericEqualWithTolerance(n, numWant, 1e-7)
				}
				return false
			}
			return criterionCollator.CompareString(coerce.Stringify(v), rest) == 0
		}, nil
	}
}

// CountIf implements COUNTIF(range, crit).
func CountIf(args []Value) (Value, error) {
	if err := arity("COUNTIF", args, 2); err != nil {
		return nil, err
	}
	critStr, err := asString("COUNTIF", args[1])
	if err != nil {
		return nil, err
	}
	match, err := parseCriterion(critStr)
	if err != nil {
		return nil, err
	}
	var n int
	for _, v := range paramenv.Sequence(args[0]) {
		if match(v) {
			n++
		}
	}
	return values.Number(float64(n)), nil
}

// companionAt returns the companion sequence's element at i, or null if i
// is beyond the companion's length (spec.md §4.G: "treat missing
// positions as null — contributes nothing").
func companionAt(companion values.Sequence, i int) Value {
	if i < len(companion) {
		return companion[i]
	}
	return values.Null{}
}

// SumIf implements SUMIF(range, crit, sumRange?).
func SumIf(args []Value) (Value, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, values.NewValueError("SUMIF() expects 2 or 3 arguments, got %d", len(args))
	}
	rng := paramenv.Sequence(args[0])
	critStr, err := asString("SUMIF", args[1])
	if err != nil {
		return nil, err
	}
	match, err := parseCriterion(critStr)
	if err != nil {
		return nil, err
	}

	var companion values.Sequence
	hasCompanion := len(args) == 3
	if hasCompanion {
		companion = paramenv.Sequence(args[2])
	}

	var total float64
	for i, v := range rng {
		if !match(v) {
			continue
		}
		target := v
		if hasCompanion {
			target = companionAt(companion, i)
		}
		if values.IsNull(target) {
			continue
		}
		n, err := coerce.ToNumber(target)
		if err != nil {
			return nil, err
		}
		total += n
	}
	return values.Number(total), nil
}

// AverageIf implements AVERAGEIF(range, crit, avgRange?).
func AverageIf(args []Value) (Value, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, values.NewValueError("AVERAGEIF() expects 2 or 3 arguments, got %d", len(args))
	}
	rng := paramenv.Sequence(args[0])
	critStr, err := asString("AVERAGEIF", args[1])
	if err != nil {
		return nil, err
	}
	match, err := parseCriterion(critStr)
	if err != nil {
		return nil, err
	}

	var companion values.Sequence
	hasCompanion := len(args) == 3
	if hasCompanion {
		companion = paramenv.Sequence(args[2])
	}

	var total float64
	var count int
	for i, v := range rng {
		if !match(v) {
			continue
		}
		target := v
		if hasCompanion {
			target = companionAt(companion, i)
		}
		if values.IsNull(target) {
			continue
		}
		n, err := coerce.ToNumber(target)
		if err != nil {
			return nil, err
		}
		total += n
		count++
	}
	if count == 0 {
		return values.Number(math.NaN()), nil
	}
	return values.Number(total / float64(count)), nil
}
