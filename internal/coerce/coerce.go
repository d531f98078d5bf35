// Package coerce implements the numeric/boolean coercion, stringification,
// loose equality and deep-flatten rules of spec.md §4.E.
package coerce

import (
	"math"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/cwbudde/go-formula/internal/values"
)

// ToNumber coerces v to a float64 per §4.E: boolean -> 0/1, number ->
// itself, string -> decimal parse (error on any leftover character or
// parse failure), null -> #N/A, sequence -> #VALUE!.
func ToNumber(v values.Value) (float64, error) {
	switch t := v.(type) {
	case values.Boolean:
		if t {
			return 1, nil
		}
		return 0, nil
	case values.Number:
		return float64(t), nil
	case values.String:
		n, ok := values.ParseNumber(string(t))
		if !ok {
			return 0, values.NewValueError("cannot coerce string %q to a number", string(t))
		}
		return n, nil
	case values.Null, nil:
		return 0, values.NewNAError("cannot coerce null to a number")
	case values.Sequence:
		return 0, values.NewValueError("cannot coerce a sequence to a number")
	default:
		return 0, values.NewValueError("cannot coerce %T to a number", v)
	}
}

// ToBoolean coerces v to bool per §4.E: null -> false, boolean -> itself,
// number -> (x != 0), string -> #VALUE! unless exactly "true"/"false"
// case-insensitively.
func ToBoolean(v values.Value) (bool, error) {
	switch t := v.(type) {
	case values.Null, nil:
		return false, nil
	case values.Boolean:
		return bool(t), nil
	case values.Number:
		return float64(t) != 0, nil
	case values.String:
		switch strings.ToLower(string(t)) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		default:
			return false, values.NewValueError("cannot coerce string %q to a boolean", string(t))
		}
	default:
		return false, values.NewValueError("cannot coerce %T to a boolean", v)
	}
}

// Stringify renders v as text per §4.E. Everywhere except CONCAT, a null
// value should be checked for with values.IsNull before calling Stringify,
// since null otherwise renders as "" here too; CONCAT relies on that same
// empty-string rendering, so a single implementation serves both call sites.
func Stringify(v values.Value) string {
	switch t := v.(type) {
	case values.Null, nil:
		return ""
	case values.String:
		return string(t)
	case values.Number:
		return values.FormatNumber(float64(t))
	case values.Boolean:
		return values.FormatBoolean(bool(t))
	default:
		return ""
	}
}

// Flatten recursively unwraps nested Sequences into a single left-to-right
// flat Sequence. Strings and Records are not unwrapped: a Sequence of
// Records remains a Sequence of Records.
func Flatten(args []values.Value) values.Sequence {
	var out values.Sequence
	var walk func(v values.Value)
	walk = func(v values.Value) {
		if seq, ok := v.(values.Sequence); ok {
			for _, e := range seq {
				walk(e)
			}
			return
		}
		out = append(out, v)
	}
	for _, a := range args {
		walk(a)
	}
	return out
}

// Equal implements the loose equality used by SWITCH and criterion
// matching: two values are equal iff both are null, or both numbers
// comparing equal numerically, or both strings comparing equal as
// strings, or both booleans comparing equal. There is no cross-kind
// equality.
func Equal(a, b values.Value) bool {
	aNull, bNull := values.IsNull(a), values.IsNull(b)
	if aNull || bNull {
		return aNull && bNull
	}
	switch av := a.(type) {
	case values.Number:
		bv, ok := b.(values.Number)
		return ok && float64(av) == float64(bv)
	case values.String:
		bv, ok := b.(values.String)
		return ok && NFCEqual(string(av), string(bv))
	case values.Boolean:
		bv, ok := b.(values.Boolean)
		return ok && av == bv
	default:
		return false
	}
}

// NFCEqual reports whether a and b are equal after Unicode NFC
// normalization, so combining-mark variants of the same visible text (e.g.
// "é" as one codepoint vs. "e"+combining-acute) compare equal under the
// §4.E loose-equality rule.
func NFCEqual(a, b string) bool {
	if a == b {
		return true
	}
	return norm.NFC.String(a) == norm.NFC.String(b)
}

// NumericEqualWithTolerance reports whether a and b are equal within the
// given absolute tolerance, used by SUMIF/COUNTIF/AVERAGEIF's bare-form
// numeric-criterion comparison (§4.G: "numeric equality within 1e-7").
func NumericEqualWithTolerance(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}
