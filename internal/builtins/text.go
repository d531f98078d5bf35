package builtins

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/cwbudde/go-formula/internal/coerce"
	"github.com/cwbudde/go-formula/internal/values"
)

// properCaser performs the title casing PROPER uses. It defaults to
// English rules; the process locale is not consulted. It is a package
// variable rather than a constant so SetProperLocale can replace it.
var properCaser = cases.Title(language.English)

// SetProperLocale overrides the locale PROPER() uses for title casing.
// The default is English; call this once at startup to use another
// locale's title-casing rules.
func SetProperLocale(tag language.Tag) {
	properCaser = cases.Title(tag)
}

func asString(name string, v Value) (string, error) {
	s, ok := v.(values.String)
	if !ok {
		return "", values.NewValueError("%s() expects a string argument, got %s", name, v.Kind())
	}
	return string(s), nil
}

// Concat implements CONCAT(...): flattens, stringifies every element
// (null renders as "" here, uniquely among the text functions), and joins
// with no separator.
func Concat(args []Value) (Value, error) {
	flat := coerce.Flatten(args)
	var sb strings.Builder
	for _, v := range flat {
		sb.WriteString(coerce.Stringify(v))
	}
	return values.String(sb.String()), nil
}

// Left implements LEFT(text, n): n is clamped to [0, len(text)].
func Left(args []Value) (Value, error) {
	if err := arity("LEFT", args, 2); err != nil {
		return nil, err
	}
	s, err := asString("LEFT", args[0])
	if err != nil {
		return nil, err
	}
	n, err := coerce.ToNumber(args[1])
	if err != nil {
		return nil, err
	}
	runes := []rune(s)
	count := clamp(int(n), 0, len(runes))
	return values.String(string(runes[:count])), nil
}

// Right implements RIGHT(text, n): n is clamped to [0, len(text)].
func Right(args []Value) (Value, error) {
	if err := arity("RIGHT", args, 2); err != nil {
		return nil, err
	}
	s, err := asString("RIGHT", args[0])
	if err != nil {
		return nil, err
	}
	n, err := coerce.ToNumber(args[1])
	if err != nil {
		return nil, err
	}
	runes := []rune(s)
	count := clamp(int(n), 0, len(runes))
	return values.String(string(runes[len(runes)-count:])), nil
}

// Mid implements MID(text, start, length): start is 1-based and clamped;
// length is clamped to the remaining string bounds.
func Mid(args []Value) (Value, error) {
	if err := arity("MID", args, 3); err != nil {
		return nil, err
	}
	s, err := asString("MID", args[0])
	if err != nil {
		return nil, err
	}
	startN, err := coerce.ToNumber(args[1])
	if err != nil {
		return nil, err
	}
	lengthN, err := coerce.ToNumber(args[2])
	if err != nil {
		return nil, err
	}

	runes := []rune(s)
	start := clamp(int(startN), 1, len(runes)+1)
	length := clamp(int(lengthN), 0, len(runes))

	startIdx := start - 1
	endIdx := clamp(startIdx+length, startIdx, len(runes))
	return values.String(string(runes[startIdx:endIdx])), nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Trim implements TRIM(text): NFC-normalizes, then strips leading/trailing
// whitespace. Non-string input raises #VALUE!, like PROPER/LEN/REPLACE.
// Normalizing first means a combining-mark variant of a whitespace-padded
// string trims identically to its precomposed form.
func Trim(args []Value) (Value, error) {
	if err := arity("TRIM", args, 1); err != nil {
		return nil, err
	}
	s, err := asString("TRIM", args[0])
	if err != nil {
		return nil, err
	}
	return values.String(strings.TrimSpace(norm.NFC.String(s))), nil
}

// Upper implements UPPER(text): lenient — a non-string argument yields "".
// Input is NFC-normalized before case-folding.
func Upper(args []Value) (Value, error) {
	if err := arity("UPPER", args, 1); err != nil {
		return nil, err
	}
	s, ok := args[0].(values.String)
	if !ok {
		return values.String(""), nil
	}
	return values.String(strings.ToUpper(norm.NFC.String(string(s)))), nil
}

// Lower implements LOWER(text): lenient — a non-string argument yields "".
// Input is NFC-normalized before case-folding.
func Lower(args []Value) (Value, error) {
	if err := arity("LOWER", args, 1); err != nil {
		return nil, err
	}
	s, ok := args[0].(values.String)
	if !ok {
		return values.String(""), nil
	}
	return values.String(strings.ToLower(norm.NFC.String(string(s)))), nil
}

// Proper implements PROPER(text): title-cases using the configured
// locale (see SetProperLocale). Non-string input raises #VALUE!.
func Proper(args []Value) (Value, error) {
	if err := arity("PROPER", args, 1); err != nil {
		return nil, err
	}
	s, err := asString("PROPER", args[0])
	if err != nil {
		return nil, err
	}
	return values.String(properCaser.String(s)), nil
}

// Len implements LEN(text): non-string input raises #VALUE!.
func Len(args []Value) (Value, error) {
	if err := arity("LEN", args, 1); err != nil {
		return nil, err
	}
	s, err := asString("LEN", args[0])
	if err != nil {
		return nil, err
	}
	return values.Number(float64(len([]rune(s)))), nil
}

// Replace implements REPLACE(text, old, new): substitutes every
// occurrence of old with new. A null old or new argument raises #VALUE!.
func Replace(args []Value) (Value, error) {
	if err := arity("REPLACE", args, 3); err != nil {
		return nil, err
	}
	text, err := asString("REPLACE", args[0])
	if err != nil {
		return nil, err
	}
	if values.IsNull(args[1]) {
		return nil, values.NewValueError("REPLACE() old argument must not be null")
	}
	if values.IsNull(args[2]) {
		return nil, values.NewValueError("REPLACE() new argument must not be null")
	}
	old, err := asString("REPLACE", args[1])
	if err != nil {
		return nil, err
	}
	repl, err := asString("REPLACE", args[2])
	if err != nil {
		return nil, err
	}
	return values.String(strings.ReplaceAll(text, old, repl)), nil
}
