package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaValidate(t *testing.T) {
	tests := []struct {
		name   string
		schema *Schema
		reason string
	}{
		{
			"no name",
			&Schema{KeyFields: []string{"id"}, Fields: []Field{{Name: "id", Kind: KindString}}},
			"schema has no name",
		},
		{
			"no fields",
			&Schema{Name: "Empty", KeyFields: []string{"id"}},
			"no fields declared",
		},
		{
			"empty field name",
			&Schema{Name: "Bad", KeyFields: []string{"id"}, Fields: []Field{{Kind: KindString}}},
			"field with empty name",
		},
		{
			"duplicate field",
			&Schema{
				Name:      "Dup",
				KeyFields: []string{"id"},
				Fields: []Field{
					{Name: "id", Kind: KindString},
					{Name: "id", Kind: KindInt},
				},
			},
			`duplicate field "id"`,
		},
		{
			"elem on non-reference",
			&Schema{
				Name:      "BadElem",
				KeyFields: []string{"id"},
				Fields: []Field{
					{Name: "id", Kind: KindString, Elem: "Other"},
				},
			},
			`field "id" declares an element schema but is not a reference`,
		},
		{
			"no key fields",
			&Schema{Name: "NoKey", Fields: []Field{{Name: "id", Kind: KindString}}},
			"no key fields declared",
		},
		{
			"undeclared key field",
			&Schema{
				Name:      "BadKey",
				KeyFields: []string{"missing"},
				Fields:    []Field{{Name: "id", Kind: KindString}},
			},
			`key field "missing" is not declared`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schema.Validate()
			require.Error(t, err)

			var initErr *InitializationError
			require.ErrorAs(t, err, &initErr)
			assert.Equal(t, tt.reason, initErr.Reason)
		})
	}
}

func TestSchemaValidateOK(t *testing.T) {
	sc := &Schema{
		Name:      "Widget",
		KeyFields: []string{"id"},
		Fields: []Field{
			{Name: "id", Kind: KindString},
			{Name: "parts", Kind: KindRefs, Elem: "Part", Optional: true},
		},
	}
	assert.NoError(t, sc.Validate())
}

func TestSchemaField(t *testing.T) {
	sc := testSchema(t, "Widget")

	f, ok := sc.Field("id")
	require.True(t, ok)
	assert.Equal(t, KindString, f.Kind)

	_, ok = sc.Field("missing")
	assert.False(t, ok)
}

func TestRegistryRegister(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(testSchema(t, "Alpha")))
	require.NoError(t, reg.Register(testSchema(t, "Beta")))

	err := reg.Register(testSchema(t, "Alpha"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegistryDirectiveCollision(t *testing.T) {
	a := testSchema(t, "Alpha")
	a.Directive = "things"
	b := testSchema(t, "Beta")
	b.Directive = "things"

	reg := NewRegistry()
	require.NoError(t, reg.Register(a))

	err := reg.Register(b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `directive "things" already bound`)
}

func TestRegistryRejectsInvalidSchema(t *testing.T) {
	reg := NewRegistry()
	err := reg.Register(&Schema{Name: "NoFields", KeyFields: []string{"id"}})

	var initErr *InitializationError
	require.ErrorAs(t, err, &initErr)
}

func TestRegistryGet(t *testing.T) {
	reg := NewRegistry()
	sc := testSchema(t, "Alpha")
	require.NoError(t, reg.Register(sc))

	got, err := reg.Get("Alpha")
	require.NoError(t, err)
	assert.Same(t, sc, got)

	_, err = reg.Get("Missing")
	var nre *NotRegisteredError
	require.ErrorAs(t, err, &nre)
	assert.Equal(t, "Missing", nre.Name)
}

func TestRegistrySchemasOrder(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"Zeta", "Alpha", "Mid"} {
		require.NoError(t, reg.Register(testSchema(t, name)))
	}

	var names []string
	for _, sc := range reg.Schemas() {
		names = append(names, sc.Name)
	}
	assert.Equal(t, []string{"Zeta", "Alpha", "Mid"}, names)
}

func TestRegistryByDirective(t *testing.T) {
	withDirective := testSchema(t, "Alpha")
	withDirective.Directive = "alphas"
	without := testSchema(t, "Beta")

	reg := NewRegistry()
	require.NoError(t, reg.Register(withDirective))
	require.NoError(t, reg.Register(without))

	idx := reg.ByDirective()
	assert.Len(t, idx, 1)
	assert.Same(t, withDirective, idx["alphas"])

	// Memoized: registrations after the first call are not picked up.
	late := testSchema(t, "Gamma")
	late.Directive = "gammas"
	require.NoError(t, reg.Register(late))
	assert.Len(t, reg.ByDirective(), 1)
}

func TestMustRegisterPanics(t *testing.T) {
	reg := NewRegistry()
	assert.Panics(t, func() {
		reg.MustRegister(&Schema{Name: "NoFields", KeyFields: []string{"id"}})
	})
}
