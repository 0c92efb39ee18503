package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Kind identifies a value variant. Field declarations reuse the same
// enumeration, so a schema field's declared kind can be compared directly
// against the kind of a supplied value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindMap
	KindRefs
	KindRecord
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindRefs:
		return "refs"
	case KindRecord:
		return "record"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a sealed interface over the closed set of field value variants.
// Only Null, Bool, Int, Float, String, List, Map, Refs, and *Record
// implement it.
type Value interface {
	Kind() Kind
	value() // sealed
}

// Null represents an absent value.
type Null struct{}

func (Null) Kind() Kind { return KindNull }
func (Null) value()     {}

// Bool represents a boolean value.
type Bool bool

func (Bool) Kind() Kind { return KindBool }
func (Bool) value()     {}

// Int represents an integer value. Always int64.
type Int int64

func (Int) Kind() Kind { return KindInt }
func (Int) value()     {}

// Float represents a floating-point value.
type Float float64

func (Float) Kind() Kind { return KindFloat }
func (Float) value()     {}

// String represents a string value.
type String string

func (String) Kind() Kind { return KindString }
func (String) value()     {}

// List represents an ordered sequence of values.
type List []Value

func (List) Kind() Kind { return KindList }
func (List) value()     {}

// Map represents a mapping of string keys to values. Iteration order is
// unspecified; the canonical form sorts keys.
type Map map[string]Value

func (Map) Kind() Kind { return KindMap }
func (Map) value()     {}

// FromAny converts parser output (the nested map[string]any / []any shapes
// produced by the codec package) into a Value, bottom-up: inner mappings are
// converted before outer ones. Values pass through unchanged. Input outside
// the supported shapes is rejected with a *TypeError.
func FromAny(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return val, nil
	case bool:
		return Bool(val), nil
	case string:
		return String(val), nil
	case int:
		return Int(val), nil
	case int8:
		return Int(val), nil
	case int16:
		return Int(val), nil
	case int32:
		return Int(val), nil
	case int64:
		return Int(val), nil
	case uint:
		if uint64(val) > math.MaxInt64 {
			return nil, &TypeError{Op: "convert", Message: fmt.Sprintf("number out of range: %d", val)}
		}
		return Int(val), nil
	case uint8:
		return Int(val), nil
	case uint16:
		return Int(val), nil
	case uint32:
		return Int(val), nil
	case uint64:
		if val > math.MaxInt64 {
			return nil, &TypeError{Op: "convert", Message: fmt.Sprintf("number out of range: %d", val)}
		}
		return Int(val), nil
	case float32:
		return Float(val), nil
	case float64:
		return Float(val), nil
	case json.Number:
		if !strings.ContainsAny(string(val), ".eE") {
			n, err := val.Int64()
			if err == nil {
				return Int(n), nil
			}
		}
		f, err := val.Float64()
		if err != nil {
			return nil, &TypeError{Op: "convert", Message: fmt.Sprintf("number out of range: %s", val)}
		}
		return Float(f), nil
	case []any:
		lst := make(List, len(val))
		for i, elem := range val {
			conv, err := FromAny(elem)
			if err != nil {
				return nil, err
			}
			lst[i] = conv
		}
		return lst, nil
	case []string:
		lst := make(List, len(val))
		for i, elem := range val {
			lst[i] = String(elem)
		}
		return lst, nil
	case []*Record:
		lst := make(List, len(val))
		for i, elem := range val {
			lst[i] = elem
		}
		return lst, nil
	case map[string]any:
		m := make(Map, len(val))
		for k, elem := range val {
			conv, err := FromAny(elem)
			if err != nil {
				return nil, err
			}
			m[k] = conv
		}
		return m, nil
	default:
		return nil, &TypeError{Op: "convert", Message: fmt.Sprintf("unsupported value type %T", v)}
	}
}

// ToAny converts a Value back into plain Go data suitable for the codec
// package. Records and references become mappings and lists of mappings.
func ToAny(v Value) any {
	switch val := v.(type) {
	case Null:
		return nil
	case Bool:
		return bool(val)
	case Int:
		return int64(val)
	case Float:
		return float64(val)
	case String:
		return string(val)
	case List:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = ToAny(elem)
		}
		return out
	case Map:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = ToAny(elem)
		}
		return out
	case Refs:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = ToAny(elem)
		}
		return out
	case *Record:
		return val.Export()
	default:
		return nil
	}
}

// Equal reports whether two values are structurally equal, defined as
// equality of their canonical forms.
func Equal(a, b Value) bool {
	return Canonical(a) == Canonical(b)
}
