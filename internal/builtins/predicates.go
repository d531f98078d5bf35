package builtins

import (
	"strings"

	"github.com/cwbudde/go-formula/internal/values"
)

// IsBlank implements ISBLANK(v): true for null or an all-whitespace
// string. There is no database-null marker in this in-process engine (a
// host integration that introduces one is out of scope per spec.md §1),
// so that clause of spec.md §4.G's contract does not apply here.
func IsBlank(args []Value) (Value, error) {
	if err := arity("ISBLANK", args, 1); err != nil {
		return nil, err
	}
	if values.IsNull(args[0]) {
		return values.Boolean(true), nil
	}
	if s, ok := args[0].(values.String); ok {
		return values.Boolean(strings.TrimSpace(string(s)) == ""), nil
	}
	return values.Boolean(false), nil
}

// IsNumber implements ISNUMBER(v): true for a Number, or a string that
// fully parses as a decimal number.
func IsNumber(args []Value) (Value, error) {
	if err := arity("ISNUMBER", args, 1); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case values.Number:
		return values.Boolean(true), nil
	case values.String:
		_, ok := values.ParseNumber(string(v))
		return values.Boolean(ok), nil
	default:
		return values.Boolean(false), nil
	}
}
