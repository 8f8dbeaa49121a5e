package jschema

import (
	"bytes"

	"github.com/goccy/go-json"
)

// JSON type names as they appear on the wire in the "type" keyword.
const (
	TypeNull    = "null"
	TypeBoolean = "boolean"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeString  = "string"
	TypeArray   = "array"
	TypeObject  = "object"
)

// Schema represents a JSON Schema as per Draft 4. Every keyword is optional;
// a nil field means the keyword was absent from the source text, and the
// writer omits it again on output. This presence/absence distinction is what
// makes the round-trip loss-preserving, so no field conflates "absent" with
// a zero value.
type Schema struct {
	// Core keywords
	ID            *UriOrFragment // "id", alters resolution scope for descendants
	SchemaVersion *string        // "$schema", stored but not enforced
	Title         *string
	Description   *string

	// Any-instance validation keywords
	Type SchemaType // single type or ordered sequence of types
	Enum []any      // JSON literals, matched by deep equality

	// Array keywords
	Items       *Items
	MaxItems    *int
	MinItems    *int
	UniqueItems *bool

	// Object keywords
	Properties           *SchemaMap
	Definitions          *SchemaMap
	PatternProperties    *SchemaMap
	Required             []string
	AdditionalProperties *AdditionalProperties
	MaxProperties        *int
	MinProperties        *int

	// String keywords
	MaxLength *int
	MinLength *int
	Pattern   *string
	Format    *string

	// Numeric keywords
	MultipleOf       *float64
	Maximum          *float64
	ExclusiveMaximum *bool
	Minimum          *float64
	ExclusiveMinimum *bool

	// Combinators
	AllOf []*Schema
	AnyOf []*Schema
	OneOf []*Schema
	Not   *Schema

	// Reference, serialized as "$ref" ("$$ref" in the reader intermediate)
	Reference *UriOrFragment
}

// SchemaType is the ordered sequence of JSON type names a schema permits.
// A single-element sequence serializes as a bare string, anything longer as
// an array.
type SchemaType []string

// Contains reports whether the sequence names the given type.
func (st SchemaType) Contains(name string) bool {
	for _, t := range st {
		if t == name {
			return true
		}
	}
	return false
}

// MarshalJSON writes a single-element sequence as a bare string.
func (st SchemaType) MarshalJSON() ([]byte, error) {
	if len(st) == 1 {
		return json.Marshal(st[0])
	}
	return json.Marshal([]string(st))
}

// UnmarshalJSON accepts a bare string or an array of strings.
func (st *SchemaType) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*st = SchemaType{single}
		return nil
	}
	var multi []string
	if err := json.Unmarshal(data, &multi); err == nil {
		*st = SchemaType(multi)
		return nil
	}
	return newSchemaError(TypeMismatch, "type")
}

// Items is the "items" keyword variant: exactly one of Schema (uniform
// validation of every element) or Schemas (positional validation) is set.
type Items struct {
	Schema  *Schema
	Schemas []*Schema
}

// MarshalJSON writes whichever variant is populated.
func (it *Items) MarshalJSON() ([]byte, error) {
	if it.Schemas != nil {
		return json.Marshal(it.Schemas)
	}
	return json.Marshal(it.Schema)
}

// UnmarshalJSON detects the variant by the first non-whitespace byte.
func (it *Items) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return newSchemaError(TypeMismatch, "items")
	}
	switch trimmed[0] {
	case '[':
		var raws []json.RawMessage
		if err := json.Unmarshal(trimmed, &raws); err != nil {
			return newSchemaError(TypeMismatch, "items")
		}
		schemas := make([]*Schema, 0, len(raws))
		for _, raw := range raws {
			schema := &Schema{}
			if err := schema.UnmarshalJSON(raw); err != nil {
				return err
			}
			schemas = append(schemas, schema)
		}
		it.Schemas = schemas
		return nil
	case '{':
		schema := &Schema{}
		if err := schema.UnmarshalJSON(trimmed); err != nil {
			return err
		}
		it.Schema = schema
		return nil
	}
	return newSchemaError(TypeMismatch, "items")
}

// AdditionalProperties is the "additionalProperties" keyword variant: a
// boolean flag or a schema. A false flag prohibits extra properties, a true
// flag permits any; a schema validates each extra property.
type AdditionalProperties struct {
	Boolean *bool
	Schema  *Schema
}

// Prohibits reports whether the keyword is the boolean false.
func (ap *AdditionalProperties) Prohibits() bool {
	return ap != nil && ap.Boolean != nil && !*ap.Boolean
}

// MarshalJSON writes whichever variant is populated.
func (ap *AdditionalProperties) MarshalJSON() ([]byte, error) {
	if ap.Boolean != nil {
		return json.Marshal(*ap.Boolean)
	}
	return json.Marshal(ap.Schema)
}

// UnmarshalJSON detects the variant by the first non-whitespace byte.
func (ap *AdditionalProperties) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return newSchemaError(TypeMismatch, "additionalProperties")
	}
	switch trimmed[0] {
	case 't', 'f':
		var flag bool
		if err := json.Unmarshal(trimmed, &flag); err != nil {
			return newSchemaError(TypeMismatch, "additionalProperties")
		}
		ap.Boolean = &flag
		return nil
	case '{':
		schema := &Schema{}
		if err := schema.UnmarshalJSON(trimmed); err != nil {
			return err
		}
		ap.Schema = schema
		return nil
	}
	return newSchemaError(TypeMismatch, "additionalProperties")
}
