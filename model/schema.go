package model

import "fmt"

// Field describes one typed field of a schema. The descriptor is plain data:
// the validation step interprets it, rather than the field carrying
// behavior of its own.
type Field struct {
	// Name is the field name as it appears in ingested mappings.
	Name string

	// Kind is the declared value kind. KindRefs declares a one-to-many
	// reference field; Elem then names the element schema.
	Kind Kind

	// Elem names the schema referenced by a KindRefs field. Empty means any
	// record schema is accepted.
	Elem string

	// Optional marks fields that may be absent from ingested data.
	Optional bool

	// Constraint is an optional CUE expression unified with the base type
	// during validation, e.g. ">=18 & <=100" or `=~"^[^@]+@[^@]+$"`.
	Constraint string
}

// Lookup is the read surface handed to PreCreate hooks. *store.Store
// satisfies it.
type Lookup interface {
	Filter(sc *Schema, params map[string]any) ([]*Record, error)
	Get(sc *Schema, params map[string]any) (*Record, error)
}

// PreCreateFunc runs before normalization and validation of a single record.
// Hooks typically resolve cross-references by querying already-created
// records through the lookup, returning the adjusted raw fields. Returning
// an error aborts that record's creation.
type PreCreateFunc func(lookup Lookup, raw map[string]any) (map[string]any, error)

// Schema declares a record type: its fields, identity/sort key, ingestion
// directive, and duplicate policy. Schemas are plain data declared once and
// registered explicitly; they must not be mutated after registration.
type Schema struct {
	// Name identifies the record type and partitions the store.
	Name string

	// Directive is the mapping key that binds ingested data to this schema.
	// Schemas without one are never auto-dispatched.
	Directive string

	// KeyFields names the fields whose values form the record's key tuple,
	// in order. The key governs sort order and lookups, not uniqueness.
	// Must be non-empty.
	KeyFields []string

	// ErrOnDuplicate makes saving an exact duplicate an error instead of a
	// silent no-op.
	ErrOnDuplicate bool

	// Fields declares the record's fields in order. Declaration order is the
	// order used for the identity hash and the canonical form.
	Fields []Field

	// PreCreate, when set, runs at the start of record creation.
	PreCreate PreCreateFunc

	// Template names the render template for this schema, without extension.
	// Empty means the name is derived from the schema name; schemas that
	// never render can ignore it.
	Template string
}

// Field returns the declaration of the named field.
func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Validate checks that the schema is concrete: named, with at least one
// field, a non-empty key naming declared fields, and well-formed field
// declarations. A schema failing this is treated like an abstract base and
// can never produce records.
func (s *Schema) Validate() error {
	if s.Name == "" {
		return &InitializationError{Reason: "schema has no name"}
	}
	if len(s.Fields) == 0 {
		return &InitializationError{Schema: s.Name, Reason: "no fields declared"}
	}
	seen := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		if f.Name == "" {
			return &InitializationError{Schema: s.Name, Reason: "field with empty name"}
		}
		if seen[f.Name] {
			return &InitializationError{Schema: s.Name, Reason: fmt.Sprintf("duplicate field %q", f.Name)}
		}
		seen[f.Name] = true
		if f.Elem != "" && f.Kind != KindRefs {
			return &InitializationError{Schema: s.Name, Reason: fmt.Sprintf("field %q declares an element schema but is not a reference", f.Name)}
		}
	}
	if len(s.KeyFields) == 0 {
		return &InitializationError{Schema: s.Name, Reason: "no key fields declared"}
	}
	for _, k := range s.KeyFields {
		if !seen[k] {
			return &InitializationError{Schema: s.Name, Reason: fmt.Sprintf("key field %q is not declared", k)}
		}
	}
	return nil
}
