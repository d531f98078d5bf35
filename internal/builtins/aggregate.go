package builtins

import (
	"math"

	"github.com/cwbudde/go-formula/internal/coerce"
	"github.com/cwbudde/go-formula/internal/paramenv"
	"github.com/cwbudde/go-formula/internal/values"
)

// flattenArgs reshapes each top-level argument through paramenv.Sequence
// (spec.md §4.F form 2: scalar -> singleton, null -> empty, sequence ->
// itself) before deep-flattening, so a null-valued @param passed directly
// to a variadic aggregate contributes zero elements instead of one null
// element — "SUM(@arr)" with arr bound to null sums to 0, not #N/A.
func flattenArgs(args []Value) values.Sequence {
	reshaped := make([]Value, len(args))
	for i, a := range args {
		reshaped[i] = paramenv.Sequence(a)
	}
	return coerce.Flatten(reshaped)
}

// nonNull returns seq with every null element removed.
func nonNull(seq values.Sequence) values.Sequence {
	out := make(values.Sequence, 0, len(seq))
	for _, v := range seq {
		if !values.IsNull(v) {
			out = append(out, v)
		}
	}
	return out
}

// Sum implements SUM(...): deep-flattens its arguments, skips nulls, and
// sums every remaining element after numeric coercion. A coercion failure
// on any element raises #VALUE!. Empty input sums to 0.
func Sum(args []Value) (Value, error) {
	nums, err := paramenv.NumericSequence(nonNull(flattenArgs(args)))
	if err != nil {
		return nil, err
	}
	var total float64
	for _, n := range nums {
		total += n
	}
	return values.Number(total), nil
}

// Average implements AVERAGE(...): flattens, skips nulls, and averages the
// rest. If any non-null element fails numeric coercion, or no non-null
// elements remain, the result is NaN — never an error.
func Average(args []Value) (Value, error) {
	flat := nonNull(flattenArgs(args))
	nums, err := paramenv.NumericSequence(flat)
	if err != nil || len(nums) == 0 {
		return values.Number(math.NaN()), nil
	}
	var total float64
	for _, n := range nums {
		total += n
	}
	return values.Number(total / float64(len(nums))), nil
}

// Max implements MAX(...): same NaN-on-failure contract as Average.
func Max(args []Value) (Value, error) {
	flat := nonNull(flattenArgs(args))
	nums, err := paramenv.NumericSequence(flat)
	if err != nil || len(nums) == 0 {
		return values.Number(math.NaN()), nil
	}
	max := nums[0]
	for _, n := range nums[1:] {
		if n > max {
			max = n
		}
	}
	return values.Number(max), nil
}

// Min implements MIN(...): skips nulls but raises #VALUE! on the first
// non-null element that fails numeric coercion, unlike Max/Average. Empty
// input (after skipping nulls) is NaN.
func Min(args []Value) (Value, error) {
	flat := nonNull(flattenArgs(args))
	nums, err := paramenv.NumericSequence(flat)
	if err != nil {
		return nil, err
	}
	if len(nums) == 0 {
		return values.Number(math.NaN()), nil
	}
	min := nums[0]
	for _, n := range nums[1:] {
		if n < min {
			min = n
		}
	}
	return values.Number(min), nil
}

// Count implements COUNT(...): counts only elements whose dynamic type is
// already Number — string/boolean elements that would coerce are not
// counted.
func Count(args []Value) (Value, error) {
	flat := flattenArgs(args)
	var n int
	for _, v := range flat {
		if _, ok := v.(values.Number); ok {
			n++
		}
	}
	return values.Number(float64(n)), nil
}

// CountA implements COUNTA(...): counts every non-null element, regardless
// of type.
func CountA(args []Value) (Value, error) {
	flat := flattenArgs(args)
	var n int
	for _, v := range flat {
		if !values.IsNull(v) {
			n++
		}
	}
	return values.Number(float64(n)), nil
}
