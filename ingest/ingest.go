// Package ingest walks a loaded nested mapping and creates every record it
// describes, dispatching each directive key to the schema bound to it.
//
// Directives are processed in schema registration order, not mapping
// iteration order, so cross-references resolve deterministically: register
// the referenced schema before the referencing one. Keys bound to no
// registered directive are skipped, not errors.
package ingest

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/roach88/serdex/codec"
	"github.com/roach88/serdex/model"
	"github.com/roach88/serdex/store"
)

// Generate creates records for every recognized directive in data. Sequence
// values are walked element-wise first: directive blocks nested inside list
// elements are created before, and excluded from, the outer block's records.
//
// Errors are wrapped with a fresh run token; when ingestion fails partway,
// the token ties the failure to the records the same run already saved.
func Generate(st *store.Store, reg *model.Registry, data map[string]any) error {
	run := uuid.NewString()
	if err := generate(st, reg, data); err != nil {
		return fmt.Errorf("ingest run %s: %w", run, err)
	}
	return nil
}

// GenerateFromFile loads the file at path with the codec its extension
// implies and ingests the result. Use this only when the loaded data needs
// no pre-processing; otherwise load with the codec package, adjust, and
// call Generate.
func GenerateFromFile(st *store.Store, reg *model.Registry, path string) error {
	data, err := codec.LoadFile(path)
	if err != nil {
		return err
	}
	return Generate(st, reg, data)
}

func generate(st *store.Store, reg *model.Registry, data map[string]any) error {
	index := reg.ByDirective()

	for _, sc := range reg.Schemas() {
		if sc.Directive == "" {
			continue
		}
		value, ok := data[sc.Directive]
		if !ok {
			continue
		}

		if seq, ok := value.([]any); ok {
			// Nested directive blocks are resolved first and excluded from
			// the outer block's records.
			remaining := make([]any, 0, len(seq))
			for _, elem := range seq {
				if nested, ok := elem.(map[string]any); ok && containsDirective(nested, index) {
					if err := generate(st, reg, nested); err != nil {
						return err
					}
					continue
				}
				remaining = append(remaining, elem)
			}
			value = remaining
			if len(remaining) == 0 {
				continue
			}
		}

		if err := st.CreateFromLoadedData(sc, value); err != nil {
			return fmt.Errorf("directive %q: %w", sc.Directive, err)
		}
	}
	return nil
}

// containsDirective reports whether m carries any key that dispatches to a
// registered schema. Plain record mappings don't, which keeps recursion
// from re-creating them out of context.
func containsDirective(m map[string]any, index map[string]*model.Schema) bool {
	for k := range m {
		if _, ok := index[k]; ok {
			return true
		}
	}
	return false
}
