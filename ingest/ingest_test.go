package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/serdex/model"
	"github.com/roach88/serdex/store"
)

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
		PreCreate: func(lookup model.Lookup, raw map[string]any) (map[string]any, error) {
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
		},
	}
}

// newRegistry binds products before customers so customer pre-create hooks
// see the products of the same run.
func newRegistry(t *testing.T) *model.Registry {
	t.Helper()
	reg := model.NewRegistry()
	require.NoError(t, reg.Register(productSchema()))
	require.NoError(t, reg.Register(customerSchema()))
	return reg
}

func TestGenerate(t *testing.T) {
	st := store.New()
	reg := newRegistry(t)

	err := Generate(st, reg, map[string]any{
		"products": []any{
			map[string]any{"prod_id": "P1", "name": "Widget", "category": "tools"},
		},
		"customers": []any{
			map[string]any{
				"name":              "Ana",
				"age":               30,
				"email":             "ana@example.com",
				"flagged_interests": []any{"tools"},
			},
		},
	})
	require.NoError(t, err)

	products, err := reg.Get("ProductModel")
	require.NoError(t, err)
	assert.Equal(t, 1, st.Len(products))

	customers, err := reg.Get("CustomerModel")
	require.NoError(t, err)
	ana, err := st.Get(customers, map[string]any{"email": "ana@example.com"})
	require.NoError(t, err)

	v, ok := ana.Field("flagged_interests")
	require.True(t, ok)
	refs, ok := v.(model.Refs)
	require.True(t, ok)
	require.Len(t, refs, 1)

	widget, ok := refs[0].(*model.Record)
	require.True(t, ok)
	id, ok := widget.Field("prod_id")
	require.True(t, ok)
	assert.Equal(t, model.String("P1"), id)
}

func TestGenerateSkipsUnrecognizedDirectives(t *testing.T) {
	st := store.New()
	reg := newRegistry(t)

	err := Generate(st, reg, map[string]any{
		"vendors": []any{
			map[string]any{"vendor_id": "V1"},
		},
		"products": []any{
			map[string]any{"prod_id": "P1", "name": "Widget", "category": "tools"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, st.Len(productSchema()))
}

func TestGenerateNestedDirectiveBlocks(t *testing.T) {
	st := store.New()
	reg := newRegistry(t)

	// A directive block nested inside a sequence element is resolved on its
	// own and does not become a record of the outer directive.
	err := Generate(st, reg, map[string]any{
		"customers": []any{
			map[string]any{
				"products": []any{
					map[string]any{"prod_id": "P1", "name": "Widget", "category": "tools"},
				},
			},
			map[string]any{
				"name":              "Ana",
				"age":               30,
				"email":             "ana@example.com",
				"flagged_interests": []any{"tools"},
			},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, st.Len(productSchema()))
	assert.Equal(t, 1, st.Len(customerSchema()))
}

func TestGenerateWrapsErrorsWithRunToken(t *testing.T) {
	st := store.New()
	reg := newRegistry(t)

	err := Generate(st, reg, map[string]any{
		"customers": []any{
			map[string]any{"name": "Kid", "age": 12, "email": "kid@example.com"},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ingest run ")
	assert.Contains(t, err.Error(), `directive "customers"`)
}

func TestGenerateFromFile(t *testing.T) {
	doc := `---
products:
  - prod_id: P1
    name: Widget
    category: tools
customers:
  - name: Ana
    age: 30
    email: ana@example.com
    flagged_interests:
      - tools
`
	path := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	st := store.New()
	reg := newRegistry(t)
	require.NoError(t, GenerateFromFile(st, reg, path))

	assert.Equal(t, 1, st.Len(productSchema()))
	assert.Equal(t, 1, st.Len(customerSchema()))
}

func TestGenerateFromFileUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.xml")
	require.NoError(t, os.WriteFile(path, []byte("<x/>"), 0o644))

	err := GenerateFromFile(store.New(), newRegistry(t), path)
	require.Error(t, err)
}
