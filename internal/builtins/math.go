package builtins

import (
	"math"

	"github.com/cwbudde/go-formula/internal/coerce"
	"github.com/cwbudde/go-formula/internal/values"
)

func arity(name string, args []Value, want int) error {
	if len(args) != want {
		return values.NewValueError("%s() expects exactly %d argument(s), got %d", name, want, len(args))
	}
	return nil
}

// Round implements ROUND(n, d): half-away-from-zero rounding to d decimal
// digits. A negative d rounds to multiples of 10^(-d).
func Round(args []Value) (Value, error) {
	if err := arity("ROUND", args, 2); err != nil {
		return nil, err
	}
	n, err := coerce.ToNumber(args[0])
	if err != nil {
		return nil, err
	}
	d, err := coerce.ToNumber(args[1])
	if err != nil {
		return nil, err
	}
	scale := math.Pow(10, d)
	return values.Number(math.Round(n*scale) / scale), nil
}

// Abs implements ABS(n).
func Abs(args []Value) (Value, error) {
	if err := arity("ABS", args, 1); err != nil {
		return nil, err
	}
	n, err := coerce.ToNumber(args[0])
	if err != nil {
		return nil, err
	}
	return values.Number(math.Abs(n)), nil
}

// Int implements INT(n): truncation toward zero.
func Int(args []Value) (Value, error) {
	if err := arity("INT", args, 1); err != nil {
		return nil, err
	}
	n, err := coerce.ToNumber(args[0])
	if err != nil {
		return nil, err
	}
	return values.Number(math.Trunc(n)), nil
}

// Sqrt implements SQRT(n): negative input raises #NUM!.
func Sqrt(args []Value) (Value, error) {
	if err := arity("SQRT", args, 1); err != nil {
		return nil, err
	}
	n, err := coerce.ToNumber(args[0])
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, values.NewNumError("SQRT() of negative number %v", n)
	}
	return values.Number(math.Sqrt(n)), nil
}

// Power implements POWER(base, exp): POWER(0, negative) raises #NUM!.
func Power(args []Value) (Value, error) {
	if err := arity("POWER", args, 2); err != nil {
		return nil, err
	}
	base, err := coerce.ToNumber(args[0])
	if err != nil {
		return nil, err
	}
	exp, err := coerce.ToNumber(args[1])
	if err != nil {
		return nil, err
	}
	if base == 0 && exp < 0 {
		return nil, values.NewNumError("POWER(0, %v): zero raised to a negative power", exp)
	}
	return values.Number(math.Pow(base, exp)), nil
}

// Mod implements MOD(a, b): zero divisor raises #DIV/0!; the result's sign
// follows the divisor, matching spreadsheet MOD convention (floored mod,
// not truncated remainder).
func Mod(args []Value) (Value, error) {
	if err := arity("MOD", args, 2); err != nil {
		return nil, err
	}
	a, err := coerce.ToNumber(args[0])
	if err != nil {
		return nil, err
	}
	b, err := coerce.ToNumber(args[1])
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, values.NewDivByZeroError("MOD(%v, 0)", a)
	}
	return values.Number(a - b*math.Floor(a/b)), nil
}
