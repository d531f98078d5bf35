package builtins

import (
	"github.com/cwbudde/go-formula/internal/coerce"
	"github.com/cwbudde/go-formula/internal/values"
)

// If implements IF(cond, t, f). All three arguments are evaluated eagerly
// by the evaluator before this built-in runs — only IFERROR gets
// parser-level lazy treatment (spec.md §4.D) — so IF is an ordinary
// three-argument function.
func If(args []Value) (Value, error) {
	if err := arity("IF", args, 3); err != nil {
		return nil, err
	}
	cond, err := coerce.ToBoolean(args[0])
	if err != nil {
		return nil, err
	}
	if cond {
		return args[1], nil
	}
	return args[2], nil
}

// Ifs implements IFS(c1, v1, c2, v2, ...): an odd argument count raises
// #VALUE!; returns the value paired with the first truthy condition, or
// null if none match.
func Ifs(args []Value) (Value, error) {
	if len(args)%2 != 0 {
		return nil, values.NewValueError("IFS() requires an even number of arguments, got %d", len(args))
	}
	for i := 0; i+1 < len(args); i += 2 {
		cond, err := coerce.ToBoolean(args[i])
		if err != nil {
			return nil, err
		}
		if cond {
			return args[i+1], nil
		}
	}
	return values.Null{}, nil
}

// Switch implements SWITCH(key, c1, v1, ..., [default]): an odd trailing
// value after key is the default; no match with no default yields null.
func Switch(args []Value) (Value, error) {
	if len(args) < 1 {
		return nil, values.NewValueError("SWITCH() requires at least a key argument")
	}
	key := args[0]
	rest := args[1:]

	var hasDefault bool
	var def Value
	if len(rest)%2 == 1 {
		hasDefault = true
		def = rest[len(rest)-1]
		rest = rest[:len(rest)-1]
	}

	for i := 0; i+1 < len(rest); i += 2 {
		if coerce.Equal(key, rest[i]) {
			return rest[i+1], nil
		}
	}
	if hasDefault {
		return def, nil
	}
	return values.Null{}, nil
}
