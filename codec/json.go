package codec

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

func init() {
	Register("json", jsonLoader, jsonDumper)
}

// jsonLoader parses a JSON document into a nested mapping. Numbers without
// a fractional part or exponent decode as int64 rather than float64, so
// integer fields survive a round-trip through JSON.
func jsonLoader(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("top-level JSON value must be an object, got %T", raw)
	}
	return resolveNumbers(m).(map[string]any), nil
}

// resolveNumbers rewrites json.Number leaves into int64 or float64.
func resolveNumbers(v any) any {
	switch val := v.(type) {
	case json.Number:
		if !strings.ContainsAny(string(val), ".eE") {
			if n, err := val.Int64(); err == nil {
				return n
			}
		}
		f, _ := val.Float64()
		return f
	case []any:
		for i, elem := range val {
			val[i] = resolveNumbers(elem)
		}
		return val
	case map[string]any:
		for k, elem := range val {
			val[k] = resolveNumbers(elem)
		}
		return val
	default:
		return v
	}
}

func jsonDumper(data map[string]any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
