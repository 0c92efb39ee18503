package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/serdex/model"
)

// productSchema is a small catalog type with a strict duplicate policy.
func productSchema() *model.Schema {
	return &model.Schema{
		Name:           "ProductModel",
		Directive:      "products",
		KeyFields:      []string{"prod_id"},
		ErrOnDuplicate: true,
		Fields: []model.Field{
			{Name: "prod_id", Kind: model.KindString},
			{Name: "name", Kind: model.KindString},
			{Name: "category", Kind: model.KindString},
		},
	}
}

// customerSchema exercises constraints, optional reference fields, and a
// pre-create hook that resolves category names into product records.
func customerSchema() *model.Schema {
	return &model.Schema{
		Name:      "CustomerModel",
		Directive: "customers",
		KeyFields: []string{"email"},
		Fields: []model.Field{
			{Name: "name", Kind: model.KindString},
			{Name: "age", Kind: model.KindInt, Constraint: ">=18 & <=100"},
			{Name: "email", Kind: model.KindString},
			{Name: "flagged_interests", Kind: model.KindRefs, Elem: "ProductModel", Optional: true},
		},
		PreCreate: resolveInterests,
	}
}

// resolveInterests swaps the raw category names in flagged_interests for the
// product records of those categories.
func resolveInterests(lookup model.Lookup, raw map[string]any) (map[string]any, error) {
	interests, ok := raw["flagged_interests"].([]any)
	if !ok {
		return raw, nil
	}

	var resolved []any
	for _, interest := range interests {
		category, ok := interest.(string)
		if !ok {
			return nil, fmt.Errorf("flagged interest must be a category name, got %T", interest)
		}
		prods, err := lookup.Filter(productSchema(), map[string]any{"category": category})
		if err != nil {
			return nil, err
		}
		for _, p := range prods {
			resolved = append(resolved, p)
		}
	}

	out := make(map[string]any, len(raw))
	for k, v := range raw {
		out[k] = v
	}
	out["flagged_interests"] = resolved
	return out, nil
}

func mustCreate(t *testing.T, s *Store, sc *model.Schema, raw map[string]any) *model.Record {
	t.Helper()
	rec, err := s.Create(sc, raw)
	require.NoError(t, err)
	return rec
}

func productRaw(id, name, category string) map[string]any {
	return map[string]any{"prod_id": id, "name": name, "category": category}
}
