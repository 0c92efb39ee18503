package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRefsEmpty(t *testing.T) {
	_, err := NewRefs(nil)
	require.Error(t, err)
	assert.True(t, IsValueError(err))

	_, err = NewRefs([]Value{})
	require.Error(t, err)
	assert.True(t, IsValueError(err))
}

func TestNewRefsHeterogeneous(t *testing.T) {
	_, err := NewRefs([]Value{Int(1), String("a")})
	require.Error(t, err)
	assert.True(t, IsTypeError(err))
}

func TestNewRefsPreservesOrder(t *testing.T) {
	refs, err := NewRefs([]Value{Int(1), Int(2), Int(3)})
	require.NoError(t, err)
	assert.Equal(t, Refs{Int(1), Int(2), Int(3)}, refs)
}

func TestNewRefsMixedSchemas(t *testing.T) {
	a := testSchema(t, "Alpha")
	b := testSchema(t, "Beta")

	ra, err := NewRecord(a, Map{"id": String("1")})
	require.NoError(t, err)
	rb, err := NewRecord(b, Map{"id": String("2")})
	require.NoError(t, err)

	_, err = NewRefs([]Value{ra, rb})
	require.Error(t, err)
	assert.True(t, IsTypeError(err))

	refs, err := NewRefs([]Value{ra, ra})
	require.NoError(t, err)
	assert.Len(t, refs, 2)
}

func TestNewRefsFromAny(t *testing.T) {
	refs, err := NewRefsFromAny([]any{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, Refs{String("a"), String("b")}, refs)

	_, err = NewRefsFromAny("not a sequence")
	require.Error(t, err)
	assert.True(t, IsTypeError(err))

	_, err = NewRefsFromAny([]any{})
	require.Error(t, err)
	assert.True(t, IsValueError(err))
}

// testSchema declares a minimal one-field schema for value-level tests.
func testSchema(t *testing.T, name string) *Schema {
	t.Helper()
	return &Schema{
		Name:      name,
		KeyFields: []string{"id"},
		Fields:    []Field{{Name: "id", Kind: KindString}},
	}
}
