package store

import (
	"fmt"

	"github.com/roach88/serdex/model"
)

// Create turns raw field data into a validated, registered record of sc.
//
// Pipeline, in order:
//  1. PreCreate hook, if the schema declares one (cross-reference
//     resolution runs against this store).
//  2. Normalize: convert every raw value bottom-up into model values and,
//     best-effort, wrap plain sequences supplied for reference fields into
//     one-to-many references.
//  3. Validate: reference fields are checked natively against the declared
//     element schema; everything else goes to the validator in strict mode.
//  4. Admit: compute key and identity, then Save.
//
// Every step is synchronous and non-retrying. A failure at any step aborts
// this record only: nothing partial becomes visible in the store.
func (s *Store) Create(sc *model.Schema, raw map[string]any) (*model.Record, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	if sc.PreCreate != nil {
		adjusted, err := sc.PreCreate(s, raw)
		if err != nil {
			return nil, fmt.Errorf("%s pre-create: %w", sc.Name, err)
		}
		raw = adjusted
	}

	fields, err := normalize(sc, raw)
	if err != nil {
		return nil, err
	}

	if err := checkRefFields(sc, fields); err != nil {
		return nil, err
	}
	if err := s.validator.Validate(sc, fields); err != nil {
		return nil, err
	}

	rec, err := model.NewRecord(sc, fields)
	if err != nil {
		return nil, err
	}
	if err := s.Save(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// CreateFromLoadedData accepts either a single mapping or a sequence of
// mappings, creating one record per mapping in order and stopping at the
// first failure. Any other shape fails with *model.TypeError.
func (s *Store) CreateFromLoadedData(sc *model.Schema, data any) error {
	switch d := data.(type) {
	case map[string]any:
		_, err := s.Create(sc, d)
		return err
	case []map[string]any:
		for _, m := range d {
			if _, err := s.Create(sc, m); err != nil {
				return err
			}
		}
		return nil
	case []any:
		for i, elem := range d {
			m, ok := elem.(map[string]any)
			if !ok {
				return &model.TypeError{
					Op:      "create",
					Message: fmt.Sprintf("%s: element %d must be a mapping, got %T", sc.Name, i, elem),
				}
			}
			if _, err := s.Create(sc, m); err != nil {
				return err
			}
		}
		return nil
	default:
		return &model.TypeError{
			Op:      "create",
			Message: fmt.Sprintf("data for %s must be a mapping or a sequence of mappings, got %T", sc.Name, data),
		}
	}
}

// normalize converts raw values into model values and wraps plain sequences
// into one-to-many references for fields declared as references. The
// wrapping is a convenience, not a substitute for the caller supplying a
// proper reference container.
func normalize(sc *model.Schema, raw map[string]any) (model.Map, error) {
	fields := make(model.Map, len(raw))
	for k, v := range raw {
		conv, err := model.FromAny(v)
		if err != nil {
			return nil, fmt.Errorf("%s field %q: %w", sc.Name, k, err)
		}
		fields[k] = conv
	}

	for _, f := range sc.Fields {
		if f.Kind != model.KindRefs {
			continue
		}
		if lst, ok := fields[f.Name].(model.List); ok {
			refs, err := model.NewRefs(lst)
			if err != nil {
				return nil, fmt.Errorf("%s field %q: %w", sc.Name, f.Name, err)
			}
			fields[f.Name] = refs
		}
	}
	return fields, nil
}

// checkRefFields validates one-to-many reference fields natively: the
// value must be a reference container and, when the field declares an
// element schema, every element must be a record of that schema. The CUE
// validator never sees reference fields.
func checkRefFields(sc *model.Schema, fields model.Map) error {
	for _, f := range sc.Fields {
		if f.Kind != model.KindRefs {
			continue
		}
		v, ok := fields[f.Name]
		if !ok {
			if f.Optional {
				continue
			}
			return &model.TypeError{
				Op:      "create",
				Message: fmt.Sprintf("%s: required reference field %q is missing", sc.Name, f.Name),
			}
		}
		refs, ok := v.(model.Refs)
		if !ok {
			return &model.TypeError{
				Op:      "create",
				Message: fmt.Sprintf("%s: field %q must be a one-to-many reference, got %s", sc.Name, f.Name, v.Kind()),
			}
		}
		if f.Elem == "" {
			continue
		}
		for i, elem := range refs {
			rec, ok := elem.(*model.Record)
			if !ok || rec.Schema().Name != f.Elem {
				return &model.TypeError{
					Op:      "create",
					Message: fmt.Sprintf("%s: field %q element %d must be a %s record", sc.Name, f.Name, i, f.Elem),
				}
			}
		}
	}
	return nil
}
