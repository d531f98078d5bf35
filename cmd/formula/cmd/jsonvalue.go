package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/cwbudde/go-formula/internal/values"
)

// decodeParams parses a JSON object into a parameter map the engine
// accepts. Nested JSON objects become values.Record with keys sorted
// alphabetically — encoding/json's map decoding does not preserve source
// key order, so a CLI-supplied record's column order is only as
// meaningful as its sorted keys. This is a CLI-only limitation: the
// library API (pkg/formula.Evaluate) takes already-ordered
// values.Record values built in Go, where this limitation does not apply.
func decodeParams(raw string) (map[string]values.Value, error) {
	if raw == "" {
		return nil, nil
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, fmt.Errorf("invalid --params JSON: %w", err)
	}
	out := make(map[string]values.Value, len(m))
	for k, v := range m {
		out[k] = jsonToValue(v)
	}
	return out, nil
}

func jsonToValue(v any) values.Value {
	switch t := v.(type) {
	case nil:
		return values.Null{}
	case bool:
		return values.Boolean(t)
	case float64:
		return values.Number(t)
	case string:
		return values.String(t)
	case []any:
		seq := make(values.Sequence, len(t))
		for i, e := range t {
			seq[i] = jsonToValue(e)
		}
		return seq
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		vals := make([]values.Value, len(keys))
		for i, k := range keys {
			vals[i] = jsonToValue(t[k])
		}
		return values.NewRecord(keys, vals)
	default:
		return values.Null{}
	}
}
