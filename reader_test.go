package jschema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSchemaBasic(t *testing.T) {
	schema, err := ReadSchema([]byte(`{
		"title": "Point",
		"type": "object",
		"properties": {
			"x": {"type": "number"},
			"y": {"type": "number"}
		},
		"required": ["x", "y"]
	}`))
	require.NoError(t, err)

	require.NotNil(t, schema.Title)
	assert.Equal(t, "Point", *schema.Title)
	assert.Equal(t, SchemaType{"object"}, schema.Type)
	assert.Equal(t, []string{"x", "y"}, schema.Required)
	require.Equal(t, 2, schema.Properties.Len())
	assert.Equal(t, []string{"x", "y"}, schema.Properties.Keys())

	x, ok := schema.Properties.Get("x")
	require.True(t, ok)
	assert.Equal(t, SchemaType{"number"}, x.Type)
}

func TestReadSchemaAbsentIsNil(t *testing.T) {
	schema, err := ReadSchema([]byte(`{"type": "array"}`))
	require.NoError(t, err)

	assert.Nil(t, schema.MinItems)
	assert.Nil(t, schema.MaxItems)
	assert.Nil(t, schema.UniqueItems)
	assert.Nil(t, schema.Items)
	assert.Nil(t, schema.Title)
	assert.Nil(t, schema.Required)
	assert.Nil(t, schema.Enum)
}

func TestReadSchemaReferenceKeyRewrite(t *testing.T) {
	schema, err := ReadSchema([]byte(`{
		"properties": {
			"p": {"$ref": "#/definitions/d"},
			"note": {"type": "string", "description": "may contain $ref text"}
		},
		"definitions": {
			"d": {"type": "string"}
		}
	}`))
	require.NoError(t, err)

	p, ok := schema.Properties.Get("p")
	require.True(t, ok)
	require.NotNil(t, p.Reference)
	assert.Equal(t, "#/definitions/d", p.Reference.String())
	assert.True(t, p.Reference.IsFragment())

	// A "$ref" inside a string value must not be rewritten.
	note, ok := schema.Properties.Get("note")
	require.True(t, ok)
	require.NotNil(t, note.Description)
	assert.Equal(t, "may contain $ref text", *note.Description)
}

func TestReadSchemaTypeVariants(t *testing.T) {
	single, err := ReadSchema([]byte(`{"type": "string"}`))
	require.NoError(t, err)
	assert.Equal(t, SchemaType{"string"}, single.Type)

	multi, err := ReadSchema([]byte(`{"type": ["string", "null"]}`))
	require.NoError(t, err)
	assert.Equal(t, SchemaType{"string", "null"}, multi.Type)
}

func TestReadSchemaItemsVariants(t *testing.T) {
	uniform, err := ReadSchema([]byte(`{"items": {"type": "integer"}}`))
	require.NoError(t, err)
	require.NotNil(t, uniform.Items)
	require.NotNil(t, uniform.Items.Schema)
	assert.Nil(t, uniform.Items.Schemas)

	positional, err := ReadSchema([]byte(`{"items": [{"type": "integer"}, {"type": "string"}]}`))
	require.NoError(t, err)
	require.NotNil(t, positional.Items)
	assert.Nil(t, positional.Items.Schema)
	require.Len(t, positional.Items.Schemas, 2)
}

func TestReadSchemaAdditionalPropertiesVariants(t *testing.T) {
	flag, err := ReadSchema([]byte(`{"additionalProperties": false}`))
	require.NoError(t, err)
	require.NotNil(t, flag.AdditionalProperties)
	require.NotNil(t, flag.AdditionalProperties.Boolean)
	assert.False(t, *flag.AdditionalProperties.Boolean)
	assert.True(t, flag.AdditionalProperties.Prohibits())

	schema, err := ReadSchema([]byte(`{"additionalProperties": {"type": "string"}}`))
	require.NoError(t, err)
	require.NotNil(t, schema.AdditionalProperties)
	require.NotNil(t, schema.AdditionalProperties.Schema)
	assert.False(t, schema.AdditionalProperties.Prohibits())
}

func TestReadSchemaMalformedJson(t *testing.T) {
	_, err := ReadSchema([]byte(`{"type": `))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedJson))
}

func TestReadSchemaTypeMismatch(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"title", `{"title": 123}`},
		{"description", `{"description": false}`},
		{"maxLength", `{"maxLength": "three"}`},
		{"required", `{"required": "a"}`},
		{"pattern", `{"pattern": 5}`},
		{"items", `{"items": 3}`},
		{"additionalProperties", `{"additionalProperties": "yes"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadSchema([]byte(tt.text))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrTypeMismatch))

			var schemaErr *SchemaError
			require.True(t, errors.As(err, &schemaErr))
			assert.Equal(t, TypeMismatch, schemaErr.Kind)
		})
	}
}

func TestReadSchemaInvalidReferenceForm(t *testing.T) {
	_, err := ReadSchema([]byte(`{"$ref": "#/properties/p"}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidReferenceForm))
}

func TestReadSchemaNonFragmentReferenceAllowed(t *testing.T) {
	schema, err := ReadSchema([]byte(`{"$ref": "http://example.com/other.json"}`))
	require.NoError(t, err)
	require.NotNil(t, schema.Reference)
	assert.False(t, schema.Reference.IsFragment())
}

func TestReadSchemaYAML(t *testing.T) {
	fromYAML, err := ReadSchemaYAML([]byte("type: string\nmaxLength: 3\n"))
	require.NoError(t, err)

	fromJSON, err := ReadSchema([]byte(`{"type": "string", "maxLength": 3}`))
	require.NoError(t, err)

	assert.True(t, fromYAML.Equals(fromJSON))
}

func TestReadSchemaYAMLMalformed(t *testing.T) {
	_, err := ReadSchemaYAML([]byte("type: [unclosed"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedJson))
}
