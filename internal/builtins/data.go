package builtins

import (
	"github.com/cwbudde/go-formula/internal/coerce"
	"github.com/cwbudde/go-formula/internal/paramenv"
	"github.com/cwbudde/go-formula/internal/values"
)

func asSequence(name string, v Value) (values.Sequence, error) {
	seq, ok := v.(values.Sequence)
	if !ok {
		return nil, values.NewValueError("%s() expects a sequence argument, got %s", name, v.Kind())
	}
	return seq, nil
}

// Index implements INDEX(range, row, col): row is 1-based; out of bounds
// raises #REF!. col is a 1-based integer indexing into a row sequence or
// a record's insertion-ordered values, or a string key into a record.
func Index(args []Value) (Value, error) {
	if err := arity("INDEX", args, 3); err != nil {
		return nil, err
	}
	rng, err := asSequence("INDEX", args[0])
	if err != nil {
		return nil, err
	}
	rowN, err := coerce.ToNumber(args[1])
	if err != nil {
		return nil, err
	}
	rowIdx := int(rowN) - 1
	if rowIdx < 0 || rowIdx >= len(rng) {
		return nil, values.NewRefError("INDEX() row %v is out of bounds for a range of length %d", rowN, len(rng))
	}
	row := rng[rowIdx]

	col := args[2]
	if colKey, ok := col.(values.String); ok {
		rec, ok := row.(*values.Record)
		if !ok {
			return nil, values.NewValueError("INDEX() string column key requires a record row, got %s", row.Kind())
		}
		v, ok := rec.Get(string(colKey))
		if !ok {
			return nil, values.NewRefError("INDEX() record has no column %q", string(colKey))
		}
		return v, nil
	}

	colN, err := coerce.ToNumber(col)
	if err != nil {
		return nil, err
	}
	colIdx := int(colN) - 1

	switch paramenv.Classify(row) {
	case paramenv.ShapeSequence, paramenv.ShapeSequenceOfRecords:
		r := row.(values.Sequence)
		if colIdx < 0 || colIdx >= len(r) {
			return nil, values.NewRefError("INDEX() column %v is out of bounds for a row of length %d", colN, len(r))
		}
		return r[colIdx], nil
	case paramenv.ShapeRecord:
		vals := row.(*values.Record).Values()
		if colIdx < 0 || colIdx >= len(vals) {
			return nil, values.NewRefError("INDEX() column %v is out of bounds for a record of %d fields", colN, len(vals))
		}
		return vals[colIdx], nil
	default:
		if colIdx == 0 {
			return row, nil
		}
		return nil, values.NewRefError("INDEX() column %v is out of bounds for a scalar row", colN)
	}
}

// Vlookup implements VLOOKUP(key, range, colIndex, exactMatch?): range is
// a sequence of records; matches the first record whose first-key value
// equals key. With exactMatch false, and both key and first column
// parsing as numbers, returns the record with the largest numeric
// first-column value <= key (the range is assumed sorted ascending on
// that column, per spreadsheet convention).
func Vlookup(args []Value) (Value, error) {
	if len(args) != 3 && len(args) != 4 {
		return nil, values.NewValueError("VLOOKUP() expects 3 or 4 arguments, got %d", len(args))
	}
	key := args[0]
	rng, err := asSequence("VLOOKUP", args[1])
	if err != nil {
		return nil, err
	}
	colN, err := coerce.ToNumber(args[2])
	if err != nil {
		return nil, err
	}
	colIdx := int(colN) - 1

	exact := true
	if len(args) == 4 {
		exact, err = coerce.ToBoolean(args[3])
		if err != nil {
			return nil, err
		}
	}

	records := make([]*values.Record, 0, len(rng))
	for _, v := range rng {
		rec, ok := v.(*values.Record)
		if !ok {
			return nil, values.NewValueError("VLOOKUP() range must be a sequence of records")
		}
		records = append(records, rec)
	}

	var match *values.Record
	if exact {
		for _, rec := range records {
			if coerce.Equal(rec.FirstValue(), key) {
				match = rec
				break
			}
		}
	} else if keyN, kerr := coerce.ToNumber(key); kerr == nil {
		bestFound := false
		var best float64
		for _, rec := range records {
			firstN, ferr := coerce.ToNumber(rec.FirstValue())
			if ferr != nil {
				continue
			}
			if firstN <= keyN && (!bestFound || firstN > best) {
				best = firstN
				bestFound = true
				match = rec
			}
		}
	} else {
		for _, rec := range records {
			if coerce.Equal(rec.FirstValue(), key) {
				match = rec
				break
			}
		}
	}

	if match == nil {
		return nil, values.NewNAError("VLOOKUP() found no matching row for key %v", key)
	}

	vals := match.Values()
	if colIdx < 0 || colIdx >= len(vals) {
		return nil, values.NewRefError("VLOOKUP() column %v is out of bounds for a record of %d fields", colN, len(vals))
	}
	return vals[colIdx], nil
}

// Unique implements UNIQUE(...): deep-flattens its arguments then
// deduplicates, preserving first-seen order.
func Unique(args []Value) (Value, error) {
	flat := coerce.Flatten(args)
	var out values.Sequence
	for _, v := range flat {
		seen := false
		for _, u := range out {
			if coerce.Equal(u, v) {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, v)
		}
	}
	return out, nil
}
