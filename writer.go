package jschema

import (
	"bytes"

	"github.com/goccy/go-json"
)

// WriteSchema serializes a schema to JSON text. Absent fields are omitted,
// a single-element type sequence is written as a bare string, and the
// reference keyword is emitted as "$ref".
func WriteSchema(schema *Schema) ([]byte, error) {
	return schema.MarshalJSON()
}

// MarshalJSON writes the schema's keywords in a fixed canonical order.
func (s *Schema) MarshalJSON() ([]byte, error) {
	w := &schemaWriter{}
	w.buf.WriteByte('{')

	if s.ID != nil {
		w.field("id", s.ID)
	}
	if s.SchemaVersion != nil {
		w.field("$schema", *s.SchemaVersion)
	}
	if s.Title != nil {
		w.field("title", *s.Title)
	}
	if s.Description != nil {
		w.field("description", *s.Description)
	}
	if s.Type != nil {
		w.field("type", s.Type)
	}
	if s.Enum != nil {
		w.field("enum", s.Enum)
	}
	if s.Items != nil {
		w.field("items", s.Items)
	}
	if s.Properties != nil {
		w.field("properties", s.Properties)
	}
	if s.Definitions != nil {
		w.field("definitions", s.Definitions)
	}
	if s.PatternProperties != nil {
		w.field("patternProperties", s.PatternProperties)
	}
	if s.Required != nil {
		w.field("required", s.Required)
	}
	if s.AdditionalProperties != nil {
		w.field("additionalProperties", s.AdditionalProperties)
	}
	if s.MaxProperties != nil {
		w.field("maxProperties", *s.MaxProperties)
	}
	if s.MinProperties != nil {
		w.field("minProperties", *s.MinProperties)
	}
	if s.MaxLength != nil {
		w.field("maxLength", *s.MaxLength)
	}
	if s.MinLength != nil {
		w.field("minLength", *s.MinLength)
	}
	if s.Pattern != nil {
		w.field("pattern", *s.Pattern)
	}
	if s.Format != nil {
		w.field("format", *s.Format)
	}
	if s.MultipleOf != nil {
		w.field("multipleOf", *s.MultipleOf)
	}
	if s.Maximum != nil {
		w.field("maximum", *s.Maximum)
	}
	if s.ExclusiveMaximum != nil {
		w.field("exclusiveMaximum", *s.ExclusiveMaximum)
	}
	if s.Minimum != nil {
		w.field("minimum", *s.Minimum)
	}
	if s.ExclusiveMinimum != nil {
		w.field("exclusiveMinimum", *s.ExclusiveMinimum)
	}
	if s.UniqueItems != nil {
		w.field("uniqueItems", *s.UniqueItems)
	}
	if s.MinItems != nil {
		w.field("minItems", *s.MinItems)
	}
	if s.MaxItems != nil {
		w.field("maxItems", *s.MaxItems)
	}
	if s.AllOf != nil {
		w.field("allOf", s.AllOf)
	}
	if s.AnyOf != nil {
		w.field("anyOf", s.AnyOf)
	}
	if s.OneOf != nil {
		w.field("oneOf", s.OneOf)
	}
	if s.Not != nil {
		w.field("not", s.Not)
	}
	if s.Reference != nil {
		w.field(referenceKey, s.Reference)
	}

	if w.err != nil {
		return nil, w.err
	}
	w.buf.WriteByte('}')
	return w.buf.Bytes(), nil
}

type schemaWriter struct {
	buf   bytes.Buffer
	wrote bool
	err   error
}

func (w *schemaWriter) field(name string, value any) {
	if w.err != nil {
		return
	}
	if w.wrote {
		w.buf.WriteByte(',')
	}
	w.wrote = true
	w.buf.WriteByte('"')
	w.buf.WriteString(name)
	w.buf.WriteString(`":`)
	encoded, err := json.Marshal(value)
	if err != nil {
		w.err = err
		return
	}
	w.buf.Write(encoded)
}
