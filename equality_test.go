package jschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustReadSchema(t *testing.T, text string) *Schema {
	t.Helper()
	schema, err := ReadSchema([]byte(text))
	require.NoError(t, err)
	return schema
}

func TestSchemaEqualsSelfAndClone(t *testing.T) {
	schema := mustReadSchema(t, `{
		"type": "object",
		"properties": {
			"name": {"type": "string", "minLength": 1},
			"tags": {"type": "array", "items": {"type": "string"}}
		},
		"required": ["name"],
		"additionalProperties": {"type": "integer"},
		"definitions": {"d": {"enum": [1, 2, 3]}},
		"not": {"type": "null"}
	}`)

	assert.True(t, schema.Equals(schema))

	clone := schema.Clone()
	assert.True(t, schema.Equals(clone))

	// The clone owns its subtree: mutating it must not affect the original.
	name, _ := clone.Properties.Get("name")
	*name.MinLength = 5
	original, _ := schema.Properties.Get("name")
	assert.Equal(t, 1, *original.MinLength)
	assert.False(t, schema.Equals(clone))
}

func TestSchemaEqualsAbsentVersusPresent(t *testing.T) {
	absent := mustReadSchema(t, `{"type": "array"}`)
	zero := mustReadSchema(t, `{"type": "array", "minItems": 0}`)

	assert.False(t, absent.Equals(zero))
	assert.Nil(t, absent.MinItems)
	require.NotNil(t, zero.MinItems)
	assert.Equal(t, 0, *zero.MinItems)
}

func TestSchemaEqualsOrderSensitivity(t *testing.T) {
	// Element order matters for type, enum, required and combinators.
	assert.False(t, mustReadSchema(t, `{"type": ["string", "null"]}`).
		Equals(mustReadSchema(t, `{"type": ["null", "string"]}`)))
	assert.False(t, mustReadSchema(t, `{"enum": [1, 2]}`).
		Equals(mustReadSchema(t, `{"enum": [2, 1]}`)))
	assert.False(t, mustReadSchema(t, `{"required": ["a", "b"]}`).
		Equals(mustReadSchema(t, `{"required": ["b", "a"]}`)))

	// Key order does not matter for the schema maps.
	assert.True(t, mustReadSchema(t, `{"properties": {"a": {}, "b": {}}}`).
		Equals(mustReadSchema(t, `{"properties": {"b": {}, "a": {}}}`)))
}

func TestSchemaEqualsEnumNumericByValue(t *testing.T) {
	assert.True(t, mustReadSchema(t, `{"enum": [1]}`).
		Equals(mustReadSchema(t, `{"enum": [1.0]}`)))
}

func TestSchemaEqualsReference(t *testing.T) {
	a := mustReadSchema(t, `{"$ref": "#/definitions/d"}`)
	b := mustReadSchema(t, `{"$ref": "#/definitions/d"}`)
	c := mustReadSchema(t, `{"$ref": "#/definitions/e"}`)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}
