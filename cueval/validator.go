// Package cueval implements the schema-validation collaborator on top of
// the CUE SDK's Go API (not a CLI subprocess).
//
// A schema's field descriptors compile into a closed CUE struct, memoized
// per schema. Validation encodes the normalized field values, unifies them
// with the struct, and reports every violation found. Closedness makes
// validation strict: unknown fields are rejected, and int, float, string,
// and bool are distinct with no coercion between them.
//
// Reference and record fields never reach CUE; their elements are records
// and are checked natively by the record lifecycle. Reference or record
// values supplied where a non-reference field is declared are rejected
// before encoding, since CUE would only see them flattened into mappings.
package cueval

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/roach88/serdex/model"
)

// Validator validates normalized record fields against their schema.
// Compiled schema structs are cached; a Validator is meant to live as long
// as the store using it.
type Validator struct {
	ctx      *cue.Context
	compiled map[string]cue.Value
}

// New returns a Validator with an empty compilation cache.
func New() *Validator {
	return &Validator{
		ctx:      cuecontext.New(),
		compiled: make(map[string]cue.Value),
	}
}

// Validate checks fields against sc in strict mode. All violations are
// collected into a single *Error rather than failing on the first.
func (v *Validator) Validate(sc *model.Schema, fields model.Map) error {
	schemaVal, err := v.schemaValue(sc)
	if err != nil {
		return err
	}

	var refErrs []FieldError
	data := make(map[string]any, len(fields))
	for name, val := range fields {
		f, declared := sc.Field(name)
		if declared && (f.Kind == model.KindRefs || f.Kind == model.KindRecord) {
			continue
		}
		if val.Kind() == model.KindRefs || val.Kind() == model.KindRecord {
			if declared {
				// Encoding would flatten the value into a mapping and lose
				// the kind mismatch, so reject it here.
				refErrs = append(refErrs, FieldError{
					Field:   name,
					Message: fmt.Sprintf("cannot use a %s value where %s is declared", val.Kind(), f.Kind),
				})
				continue
			}
			// Reference values under undeclared names would otherwise leak
			// into CUE as mappings; let closedness report the field name.
			data[name] = map[string]any{}
			continue
		}
		data[name] = model.ToAny(val)
	}
	if len(refErrs) > 0 {
		sort.Slice(refErrs, func(i, j int) bool { return refErrs[i].Field < refErrs[j].Field })
		return &Error{Schema: sc.Name, Fields: refErrs}
	}

	dataVal := v.ctx.Encode(data)
	if err := dataVal.Err(); err != nil {
		return fmt.Errorf("encode %s fields: %w", sc.Name, err)
	}

	unified := schemaVal.Unify(dataVal)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return newError(sc.Name, err)
	}
	return nil
}

// schemaValue compiles (or returns the cached) closed struct for sc.
func (v *Validator) schemaValue(sc *model.Schema) (cue.Value, error) {
	if cached, ok := v.compiled[sc.Name]; ok {
		return cached, nil
	}

	src := Source(sc)
	val := v.ctx.CompileString(src, cue.Filename(sc.Name+".cue"))
	if err := val.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("compile schema %s: %w", sc.Name, err)
	}

	v.compiled[sc.Name] = val
	return val, nil
}

// Source renders the CUE source for a schema's closed struct. Reference
// fields are omitted; constraints are unified with the base type.
func Source(sc *model.Schema) string {
	var b strings.Builder
	b.WriteString("close({\n")
	for _, f := range sc.Fields {
		if f.Kind == model.KindRefs || f.Kind == model.KindRecord {
			continue
		}
		b.WriteByte('\t')
		b.WriteString(strconv.Quote(f.Name))
		if f.Optional {
			b.WriteByte('?')
		}
		b.WriteString(": ")
		b.WriteString(cueType(f.Kind))
		if f.Constraint != "" {
			b.WriteString(" & (")
			b.WriteString(f.Constraint)
			b.WriteByte(')')
		}
		b.WriteByte('\n')
	}
	b.WriteString("})\n")
	return b.String()
}

func cueType(k model.Kind) string {
	switch k {
	case model.KindNull:
		return "null"
	case model.KindBool:
		return "bool"
	case model.KindInt:
		return "int"
	case model.KindFloat:
		return "float"
	case model.KindString:
		return "string"
	case model.KindList:
		return "[...]"
	case model.KindMap:
		return "{...}"
	default:
		// Reference and record kinds never reach CUE.
		return "_"
	}
}
