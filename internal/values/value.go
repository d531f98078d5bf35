// Package values implements the tagged value model shared by every layer of
// the formula engine: the lexer/parser produce literal values, the
// parameter environment stores them, the built-in library consumes and
// produces them, and the evaluator returns one to the caller.
package values

import (
	"strconv"
	"strings"
)

// Kind identifies the dynamic type of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindSequence
	KindRecord
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindRecord:
		return "record"
	default:
		return "unknown"
	}
}

// Value is any value the engine can produce: null, boolean, number, string,
// sequence, or record. Values are immutable by contract — no operation
// mutates a Value in place.
type Value interface {
	Kind() Kind
}

// Null is the singleton null value.
type Null struct{}

func (Null) Kind() Kind { return KindNull }

// IsNull reports whether v is null (including a nil interface).
func IsNull(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(Null)
	return ok
}

// Boolean is a boolean value.
type Boolean bool

func (Boolean) Kind() Kind { return KindBoolean }

// Number is the canonical numeric representation: an IEEE-754 double.
// NaN is a valid, visible Number.
type Number float64

func (Number) Kind() Kind { return KindNumber }

// String is a text value.
type String string

func (String) Kind() Kind { return KindString }

// Sequence is an ordered, zero-indexed, possibly-nested list of values.
type Sequence []Value

func (Sequence) Kind() Kind { return KindSequence }

// Record is an ordered string-keyed mapping, preserving insertion order.
// The zero value is an empty record ready to use.
type Record struct {
	keys []string
	vals map[string]Value
}

func (*Record) Kind() Kind { return KindRecord }

// NewRecord builds a Record from keys and values in the given order.
// len(keys) must equal len(vals); later duplicate keys overwrite earlier
// ones but keep the first key's position.
func NewRecord(keys []string, vals []Value) *Record {
	r := &Record{vals: make(map[string]Value, len(keys))}
	for i, k := range keys {
		r.Set(k, vals[i])
	}
	return r
}

// Set assigns a key, appending it to the key order the first time it is seen.
func (r *Record) Set(key string, v Value) {
	if r.vals == nil {
		r.vals = make(map[string]Value)
	}
	if _, exists := r.vals[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.vals[key] = v
}

// Get returns the value bound to key and whether it exists.
func (r *Record) Get(key string) (Value, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r.vals[key]
	return v, ok
}

// Keys returns the record's keys in insertion order. The slice is owned by
// the caller; callers must not mutate r's internal order through it.
func (r *Record) Keys() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Values returns the record's values in key-insertion order.
func (r *Record) Values() []Value {
	if r == nil {
		return nil
	}
	out := make([]Value, len(r.keys))
	for i, k := range r.keys {
		out[i] = r.vals[k]
	}
	return out
}

// Len reports the number of keys in the record.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

// FirstValue returns the value bound to the record's first key (used by
// VLOOKUP, which matches against a record's first column). Returns Null if
// the record is empty.
func (r *Record) FirstValue() Value {
	if r.Len() == 0 {
		return Null{}
	}
	v, _ := r.Get(r.keys[0])
	return v
}

// FormatNumber renders a Number using round-trip decimal formatting, the
// convention used everywhere a number is stringified (CONCAT, error
// messages, criterion comparisons).
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// FormatBoolean renders a Boolean as "true"/"false".
func FormatBoolean(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// ParseNumber parses s as a decimal number, rejecting trailing garbage.
// Decimal parsing is always '.'-based, independent of process locale.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
