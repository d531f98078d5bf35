// Package paramenv implements the caller-supplied parameter environment
// (spec.md §3, §4.F): name-to-value lookup plus the four dereferencing
// forms a ParamRef's consuming context selects.
//
// Following the simplification spec.md §9 sanctions ("resolve ParamRef to
// a value lazily, then let each built-in's argument contract drive
// coercion"), the evaluator resolves every ParamRef through Raw, which
// does no reshaping; Sequence, Numeric and NumericSequence are then
// applied by the evaluator/built-ins at the point a value is consumed,
// rather than decided up front from operator-adjacency regexes. Lookup
// offers eager scalar dereferencing for callers that want it.
package paramenv

import (
	"github.com/cwbudde/go-formula/internal/coerce"
	"github.com/cwbudde/go-formula/internal/values"
)

// Shape classifies a resolved value's static shape for introspection.
type Shape int

const (
	ShapeScalar Shape = iota
	ShapeSequence
	ShapeRecord
	ShapeSequenceOfRecords
)

// Environment is a name -> value mapping supplied by the caller.
type Environment struct {
	vals map[string]values.Value
}

// New builds an Environment from a caller-supplied parameter map. A nil
// map is treated as empty, per spec.md §6's default.
func New(params map[string]values.Value) *Environment {
	if params == nil {
		params = map[string]values.Value{}
	}
	return &Environment{vals: params}
}

// Lookup resolves name using scalar dereference (§4.F form 1): unknown
// name raises #REF!; a bound null value raises #N/A; any other value,
// including a sequence, is returned unchanged — the caller is responsible
// for further reshaping via Sequence/Numeric/NumericSequence.
func (e *Environment) Lookup(name string) (values.Value, error) {
	v, ok := e.vals[name]
	if !ok {
		return nil, values.NewRefError("unknown parameter: %s", name)
	}
	if values.IsNull(v) {
		return nil, values.NewNAError("parameter %q is null", name)
	}
	return v, nil
}

// Raw resolves name without the null-to-#N/A conversion Lookup applies,
// returning values.Null{} for a bound-null parameter instead of erroring.
// SUM(@arr) style sequence consumers call Raw then Sequence, since a null
// parameter there means "empty sequence", not "#N/A".
func (e *Environment) Raw(name string) (values.Value, error) {
	v, ok := e.vals[name]
	if !ok {
		return nil, values.NewRefError("unknown parameter: %s", name)
	}
	if values.IsNull(v) {
		return values.Null{}, nil
	}
	return v, nil
}

// Sequence applies sequence dereference (§4.F form 2) to an already
// resolved value: a scalar is wrapped in a singleton, null becomes an
// empty sequence, and a sequence (including a sequence of records) passes
// through unchanged.
func Sequence(v values.Value) values.Sequence {
	switch t := v.(type) {
	case values.Sequence:
		return t
	case values.Null:
		return values.Sequence{}
	case nil:
		return values.Sequence{}
	default:
		return values.Sequence{v}
	}
}

// Numeric applies numeric dereference (§4.F form 3): coerces a resolved
// scalar value to a number; a sequence is rejected with #VALUE! by the
// same coercion rule §4.E uses for every other numeric coercion.
func Numeric(v values.Value) (float64, error) {
	return coerce.ToNumber(v)
}

// NumericSequence applies numeric-sequence dereference (§4.F form 4):
// sequence-dereferences v, then numerically coerces every element.
func NumericSequence(v values.Value) ([]float64, error) {
	seq := Sequence(v)
	out := make([]float64, 0, len(seq))
	for _, e := range seq {
		n, err := coerce.ToNumber(e)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// Classify reports the static shape of a resolved value, for
// introspection/debugging parity with the teacher's environment model.
func Classify(v values.Value) Shape {
	switch t := v.(type) {
	case *values.Record:
		return ShapeRecord
	case values.Sequence:
		if len(t) > 0 {
			if _, ok := t[0].(*values.Record); ok {
				return ShapeSequenceOfRecords
			}
		}
		return ShapeSequence
	default:
		return ShapeScalar
	}
}
