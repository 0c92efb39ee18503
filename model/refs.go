package model

import "fmt"

// Refs is a one-to-many reference: an ordered, non-empty, homogeneous
// sequence of values used to link a record to others. Construct it through
// NewRefs; the zero value and literal construction skip the constraints and
// must not be stored in records.
type Refs []Value

func (Refs) Kind() Kind { return KindRefs }
func (Refs) value()     {}

// NewRefs builds a one-to-many reference from elems, preserving order.
//
// Constraints:
//   - elems must be non-empty (*ValueError otherwise)
//   - all elements must be of the same kind (*TypeError otherwise)
//   - record elements must share the same schema (*TypeError otherwise)
func NewRefs(elems []Value) (Refs, error) {
	if len(elems) == 0 {
		return nil, &ValueError{Op: "refs", Message: "a one-to-many reference can't be empty"}
	}

	first := elems[0].Kind()
	var schema string
	if rec, ok := elems[0].(*Record); ok {
		schema = rec.Schema().Name
	}

	for i, elem := range elems {
		if elem.Kind() != first {
			return nil, &TypeError{
				Op:      "refs",
				Message: fmt.Sprintf("element %d is %s, want %s: all elements must be of the same type", i, elem.Kind(), first),
			}
		}
		if rec, ok := elem.(*Record); ok && rec.Schema().Name != schema {
			return nil, &TypeError{
				Op:      "refs",
				Message: fmt.Sprintf("element %d is a %s record, want %s", i, rec.Schema().Name, schema),
			}
		}
	}

	out := make(Refs, len(elems))
	copy(out, elems)
	return out, nil
}

// NewRefsFromAny converts raw input into a one-to-many reference. The input
// must convert to a sequence; anything else is a *TypeError.
func NewRefsFromAny(v any) (Refs, error) {
	conv, err := FromAny(v)
	if err != nil {
		return nil, err
	}
	switch seq := conv.(type) {
	case Refs:
		return seq, nil
	case List:
		return NewRefs(seq)
	default:
		return nil, &TypeError{
			Op:      "refs",
			Message: fmt.Sprintf("initialization input must be a sequence, got %s", conv.Kind()),
		}
	}
}
