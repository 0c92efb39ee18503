package model

// Record is an immutable instance of a schema. Records are values
// themselves, so a record can appear inside another record's one-to-many
// reference fields.
//
// The key tuple (the values of the schema's KeyFields, in order) governs
// where the record sorts in its collection. The identity hash, computed
// over every field value plus the schema name, governs duplicate detection.
// Records sharing a key but differing elsewhere are distinct entries.
type Record struct {
	schema    *Schema
	fields    Map
	key       List
	identity  string
	canonical string
}

func (r *Record) Kind() Kind { return KindRecord }
func (r *Record) value()     {}

// NewRecord assembles a record from already-normalized field values,
// computing its key tuple, identity hash, and canonical form. It performs
// no validation and no store insertion: the record lifecycle in the store
// package is the supported entry point, and it calls NewRecord after the
// normalize and validate steps have passed.
func NewRecord(sc *Schema, fields Map) (*Record, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	copied := make(Map, len(fields))
	for k, v := range fields {
		copied[k] = v
	}

	key := make(List, len(sc.KeyFields))
	for i, name := range sc.KeyFields {
		kv, ok := copied[name]
		if !ok {
			kv = Null{}
		}
		key[i] = kv
	}

	rec := &Record{schema: sc, fields: copied, key: key}
	rec.identity = identityHash(sc, copied)
	rec.canonical = Canonical(rec)
	return rec, nil
}

// Schema returns the record's schema.
func (r *Record) Schema() *Schema { return r.schema }

// Field returns the value of the named field.
func (r *Record) Field(name string) (Value, bool) {
	v, ok := r.fields[name]
	return v, ok
}

// Key returns the record's key tuple: the values of the schema's KeyFields
// in declaration order.
func (r *Record) Key() List { return r.key }

// Identity returns the record's identity hash.
func (r *Record) Identity() string { return r.identity }

// Canonical returns the record's canonical string form.
func (r *Record) Canonical() string { return r.canonical }

// Export returns the record's field values as plain Go data, with nested
// records and references exported as mappings and lists of mappings.
// Fields left unset are omitted.
func (r *Record) Export() map[string]any {
	out := make(map[string]any, len(r.fields))
	for _, f := range r.schema.Fields {
		if v, ok := r.fields[f.Name]; ok {
			out[f.Name] = ToAny(v)
		}
	}
	return out
}
