package jschema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// jsonEquivalent compares two JSON texts structurally: key order is free,
// presence and absence are not.
func jsonEquivalent(t *testing.T, want, got []byte) bool {
	t.Helper()
	wantTree, err := ParseInstance(want)
	require.NoError(t, err)
	gotTree, err := ParseInstance(got)
	require.NoError(t, err)
	return deepEqualValues(wantTree, gotTree)
}

func TestRoundTripPreservesText(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", `{}`},
		{"scalar constraints", `{
			"type": "string",
			"minLength": 1,
			"maxLength": 10,
			"pattern": "^[a-z]+$",
			"format": "hostname"
		}`},
		{"numeric bounds", `{
			"type": "number",
			"minimum": 0,
			"exclusiveMinimum": true,
			"maximum": 100,
			"exclusiveMaximum": false,
			"multipleOf": 0.5
		}`},
		{"object shape", `{
			"id": "http://example.com/point.json",
			"$schema": "http://json-schema.org/draft-04/schema#",
			"title": "Point",
			"description": "A 2D point.",
			"type": "object",
			"properties": {
				"x": {"type": "number"},
				"y": {"type": "number"}
			},
			"required": ["x", "y"],
			"additionalProperties": false,
			"minProperties": 2,
			"maxProperties": 3
		}`},
		{"array positional items", `{
			"type": "array",
			"items": [{"type": "integer"}, {"type": "string"}],
			"minItems": 1,
			"maxItems": 2,
			"uniqueItems": true
		}`},
		{"enum and combinators", `{
			"enum": [1, "a", null, [1, 2], {"k": true}],
			"allOf": [{"type": "integer"}],
			"anyOf": [{"minimum": 0}, {"maximum": 10}],
			"oneOf": [{"multipleOf": 2}, {"multipleOf": 3}],
			"not": {"type": "string"}
		}`},
		{"reference and definitions", `{
			"properties": {
				"color": {"$ref": "#/definitions/color"}
			},
			"definitions": {
				"color": {"type": "string", "enum": ["red", "green", "blue"]}
			}
		}`},
		{"boolean additionalProperties true", `{"additionalProperties": true}`},
		{"patternProperties", `{
			"patternProperties": {
				"^n": {"type": "integer"},
				"^s": {"type": "string"}
			}
		}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema, err := ReadSchema([]byte(tt.text))
			require.NoError(t, err)

			written, err := WriteSchema(schema)
			require.NoError(t, err)
			assert.True(t, jsonEquivalent(t, []byte(tt.text), written),
				"write(read(t)) not JSON-equivalent to t: %s", written)

			reread, err := ReadSchema(written)
			require.NoError(t, err)
			assert.True(t, schema.Equals(reread), "read(write(s)) not structurally equal to s")
		})
	}
}

func TestRoundTripPreservesAbsence(t *testing.T) {
	schema, err := ReadSchema([]byte(`{"type": "array"}`))
	require.NoError(t, err)

	written, err := WriteSchema(schema)
	require.NoError(t, err)

	assert.Equal(t, `{"type":"array"}`, string(written))
	assert.NotContains(t, string(written), "minItems")
}

func TestWriteSingleTypeAsBareString(t *testing.T) {
	schema, err := ReadSchema([]byte(`{"type": ["string"]}`))
	require.NoError(t, err)

	written, err := WriteSchema(schema)
	require.NoError(t, err)
	assert.Equal(t, `{"type":"string"}`, string(written))
}

func TestWriteEmitsDollarRef(t *testing.T) {
	schema, err := ReadSchema([]byte(`{"$ref": "#/definitions/d", "definitions": {"d": {}}}`))
	require.NoError(t, err)

	written, err := WriteSchema(schema)
	require.NoError(t, err)
	assert.Contains(t, string(written), `"$ref":"#/definitions/d"`)
	assert.False(t, strings.Contains(string(written), "$$ref"))
}

func TestWritePreservesPropertyOrder(t *testing.T) {
	schema, err := ReadSchema([]byte(`{"properties": {"z": {}, "a": {}, "m": {}}}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "m"}, schema.Properties.Keys())

	written, err := WriteSchema(schema)
	require.NoError(t, err)

	z := strings.Index(string(written), `"z"`)
	a := strings.Index(string(written), `"a"`)
	m := strings.Index(string(written), `"m"`)
	assert.True(t, z < a && a < m, "property order not preserved: %s", written)
}
