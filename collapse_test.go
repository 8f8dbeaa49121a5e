package jschema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollapseInlinesScalarConstraints(t *testing.T) {
	schema := mustReadSchema(t, `{
		"properties": {
			"name": {"$ref": "#/definitions/shortString"}
		},
		"definitions": {
			"shortString": {
				"type": "string",
				"minLength": 1,
				"maxLength": 8,
				"pattern": "^[a-z]+$",
				"format": "hostname"
			}
		}
	}`)

	collapsed, err := Collapse(schema)
	require.NoError(t, err)

	name, ok := collapsed.Properties.Get("name")
	require.True(t, ok)
	assert.Nil(t, name.Reference)
	assert.Equal(t, SchemaType{"string"}, name.Type)
	require.NotNil(t, name.MaxLength)
	assert.Equal(t, 8, *name.MaxLength)
	require.NotNil(t, name.Pattern)
	assert.Equal(t, "^[a-z]+$", *name.Pattern)
	require.NotNil(t, name.Format)

	// minLength is one of the inlined leaf fields too.
	require.NotNil(t, name.MinLength)
	assert.Equal(t, 1, *name.MinLength)

	// The input schema is untouched.
	original, _ := schema.Properties.Get("name")
	assert.NotNil(t, original.Reference)
	assert.Nil(t, original.MaxLength)
}

func TestCollapseRetainsReferrerStructuralFields(t *testing.T) {
	schema := mustReadSchema(t, `{
		"properties": {
			"node": {
				"$ref": "#/definitions/bounded",
				"required": ["id"],
				"properties": {"id": {"type": "integer"}}
			}
		},
		"definitions": {
			"bounded": {
				"type": "object",
				"maxItems": 4,
				"required": ["other"],
				"properties": {"other": {"type": "string"}}
			}
		}
	}`)

	collapsed, err := Collapse(schema)
	require.NoError(t, err)

	node, _ := collapsed.Properties.Get("node")
	assert.Nil(t, node.Reference)
	assert.Equal(t, SchemaType{"object"}, node.Type)
	require.NotNil(t, node.MaxItems)

	// The referrer keeps its own required and properties; the target's are
	// not inlined.
	assert.Equal(t, []string{"id"}, node.Required)
	assert.True(t, node.Properties.Has("id"))
	assert.False(t, node.Properties.Has("other"))
}

func TestCollapseItemsRecursively(t *testing.T) {
	schema := mustReadSchema(t, `{
		"properties": {
			"list": {"$ref": "#/definitions/stringList"}
		},
		"definitions": {
			"stringList": {
				"type": "array",
				"items": {"$ref": "#/definitions/shortString"}
			},
			"shortString": {"type": "string", "maxLength": 3}
		}
	}`)

	collapsed, err := Collapse(schema)
	require.NoError(t, err)

	list, _ := collapsed.Properties.Get("list")
	assert.Equal(t, SchemaType{"array"}, list.Type)
	require.NotNil(t, list.Items)
	require.NotNil(t, list.Items.Schema)
	assert.Nil(t, list.Items.Schema.Reference)
	assert.Equal(t, SchemaType{"string"}, list.Items.Schema.Type)
	require.NotNil(t, list.Items.Schema.MaxLength)
	assert.Equal(t, 3, *list.Items.Schema.MaxLength)
}

func TestCollapseResolvesAgainstRootDefinitions(t *testing.T) {
	// The nested reference must resolve against the root schema's
	// definitions, not any definitions of the subtree.
	schema := mustReadSchema(t, `{
		"properties": {
			"outer": {
				"properties": {
					"inner": {"$ref": "#/definitions/d"}
				}
			}
		},
		"definitions": {
			"d": {"type": "integer"}
		}
	}`)

	collapsed, err := Collapse(schema)
	require.NoError(t, err)

	outer, _ := collapsed.Properties.Get("outer")
	inner, _ := outer.Properties.Get("inner")
	assert.Equal(t, SchemaType{"integer"}, inner.Type)
}

func TestCollapseUnsupportedReferenceForm(t *testing.T) {
	schema := mustReadSchema(t, `{
		"properties": {
			"p": {"$ref": "http://example.com/other.json"}
		}
	}`)

	_, err := Collapse(schema)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedReferenceForm))
}

func TestCollapseDefinitionNotFound(t *testing.T) {
	schema := mustReadSchema(t, `{
		"properties": {
			"p": {"$ref": "#/definitions/missing"}
		},
		"definitions": {
			"present": {}
		}
	}`)

	_, err := Collapse(schema)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDefinitionNotFound))

	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Contains(t, schemaErr.Arguments, "missing")
}
