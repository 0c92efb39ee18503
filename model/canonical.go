package model

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Canonical returns the canonical string form of a value. The form is
// deterministic: map keys are sorted, strings are NFC-normalized, and
// scalars use fixed formats. It is an internal encoding for equality and
// hashing, not an interchange format.
func Canonical(v Value) string {
	return string(AppendCanonical(nil, v))
}

// AppendCanonical appends the canonical form of v to dst and returns the
// extended buffer.
func AppendCanonical(dst []byte, v Value) []byte {
	switch val := v.(type) {
	case nil:
		return append(dst, "null"...)
	case Null:
		return append(dst, "null"...)
	case Bool:
		if val {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case Int:
		return strconv.AppendInt(dst, int64(val), 10)
	case Float:
		return strconv.AppendFloat(dst, float64(val), 'g', -1, 64)
	case String:
		return appendCanonicalString(dst, string(val))
	case List:
		dst = append(dst, '[')
		for i, elem := range val {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = AppendCanonical(dst, elem)
		}
		return append(dst, ']')
	case Map:
		return appendCanonicalMap(dst, val)
	case Refs:
		dst = append(dst, "refs["...)
		for i, elem := range val {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = AppendCanonical(dst, elem)
		}
		return append(dst, ']')
	case *Record:
		dst = append(dst, val.Schema().Name...)
		dst = append(dst, '{')
		for i, f := range val.Schema().Fields {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendCanonicalString(dst, f.Name)
			dst = append(dst, ':')
			fv, ok := val.Field(f.Name)
			if !ok {
				fv = Null{}
			}
			dst = AppendCanonical(dst, fv)
		}
		return append(dst, '}')
	default:
		// Unreachable for sealed variants.
		return dst
	}
}

// appendCanonicalString appends an NFC-normalized, quoted string.
func appendCanonicalString(dst []byte, s string) []byte {
	return strconv.AppendQuote(dst, norm.NFC.String(s))
}

// appendCanonicalMap appends a map with keys NFC-normalized and sorted.
func appendCanonicalMap(dst []byte, m Map) []byte {
	keys := make([]string, 0, len(m))
	normalized := make(map[string]string, len(m))
	for k := range m {
		nk := norm.NFC.String(k)
		keys = append(keys, nk)
		normalized[nk] = k
	}
	sort.Strings(keys)

	dst = append(dst, '{')
	for i, nk := range keys {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = strconv.AppendQuote(dst, nk)
		dst = append(dst, ':')
		dst = AppendCanonical(dst, m[normalized[nk]])
	}
	return append(dst, '}')
}

// Compare imposes a total order on values: first by kind, then by a
// kind-specific comparison. Lists, reference containers, and key tuples
// compare element-wise; maps and records fall back to canonical form.
// It is the ordering used by the store's sorted collections.
func Compare(a, b Value) int {
	if a == nil {
		a = Null{}
	}
	if b == nil {
		b = Null{}
	}
	if a.Kind() != b.Kind() {
		return int(a.Kind()) - int(b.Kind())
	}

	switch av := a.(type) {
	case Null:
		return 0
	case Bool:
		bv := b.(Bool)
		switch {
		case av == bv:
			return 0
		case !bool(av):
			return -1
		default:
			return 1
		}
	case Int:
		bv := b.(Int)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	case Float:
		bv := b.(Float)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	case String:
		return strings.Compare(norm.NFC.String(string(av)), norm.NFC.String(string(b.(String))))
	case List:
		return compareSeq(av, b.(List))
	case Refs:
		return compareSeq(List(av), List(b.(Refs)))
	case *Record:
		if c := compareSeq(av.Key(), b.(*Record).Key()); c != 0 {
			return c
		}
		return strings.Compare(av.Canonical(), b.(*Record).Canonical())
	default:
		return strings.Compare(Canonical(a), Canonical(b))
	}
}

// CompareKeys compares two key tuples element-wise, shorter tuples first on
// a shared prefix.
func CompareKeys(a, b List) int {
	return compareSeq(a, b)
}

func compareSeq(a, b List) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return len(a) - len(b)
}
