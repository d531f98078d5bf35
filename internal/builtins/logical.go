package builtins

import (
	"github.com/cwbudde/go-formula/internal/coerce"
	"github.com/cwbudde/go-formula/internal/values"
)

// And implements AND(...): flattens, requires every element coerce to
// true. A coercion failure on any element raises #VALUE!.
func And(args []Value) (Value, error) {
	flat := coerce.Flatten(args)
	result := true
	for _, v := range flat {
		b, err := coerce.ToBoolean(v)
		if err != nil {
			return nil, err
		}
		if !b {
			result = false
		}
	}
	return values.Boolean(result), nil
}

// Or implements OR(...): flattens, true if any element coerces to true.
// Elements that fail boolean coercion are treated as falsy rather than
// raising — OR never raises on mixed types, per spec.md §4.G.
func Or(args []Value) (Value, error) {
	flat := coerce.Flatten(args)
	result := false
	for _, v := range flat {
		if b, err := coerce.ToBoolean(v); err == nil && b {
			result = true
		}
	}
	return values.Boolean(result), nil
}

// Xor implements XOR(...): true iff an odd number of flattened elements
// coerce to true. A coercion failure raises #VALUE!, matching AND.
func Xor(args []Value) (Value, error) {
	flat := coerce.Flatten(args)
	truthy := 0
	for _, v := range flat {
		b, err := coerce.ToBoolean(v)
		if err != nil {
			return nil, err
		}
		if b {
			truthy++
		}
	}
	return values.Boolean(truthy%2 == 1), nil
}

// Not implements NOT(x): null is treated as true (the negation of null's
// false boolean coercion), otherwise the boolean-coerced argument is
// negated.
func Not(args []Value) (Value, error) {
	if err := arity("NOT", args, 1); err != nil {
		return nil, err
	}
	if values.IsNull(args[0]) {
		return values.Boolean(true), nil
	}
	b, err := coerce.ToBoolean(args[0])
	if err != nil {
		return nil, err
	}
	return values.Boolean(!b), nil
}
