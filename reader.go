package jschema

import (
	"bytes"
	"errors"

	"github.com/goccy/go-json"
)

// referenceKey is the wire keyword, intermediateReferenceKey the rewritten
// form the decoder sees. The rewrite keeps "$ref" an ordinary property for
// JSON libraries that would otherwise treat it as a graph directive.
const (
	referenceKey             = "$ref"
	intermediateReferenceKey = "$$ref"
)

// ReadSchema parses JSON text into a Schema. It fails with MalformedJson on
// invalid JSON, TypeMismatch when a keyword holds the wrong JSON type, and
// InvalidReferenceForm on a fragment reference that does not target a
// definition.
func ReadSchema(data []byte) (*Schema, error) {
	rewritten := rewriteReferenceKeys(data)

	shape, err := ParseInstance(rewritten)
	if err != nil {
		return nil, err
	}
	if shape.Kind != KindObject {
		return nil, newSchemaError(MalformedJson, "schema text is not a JSON object")
	}

	schema := &Schema{}
	if err := schema.UnmarshalJSON(rewritten); err != nil {
		var schemaErr *SchemaError
		if errors.As(err, &schemaErr) {
			return nil, schemaErr
		}
		return nil, newSchemaError(MalformedJson, err.Error())
	}
	return schema, nil
}

// rewriteReferenceKeys replaces every "$ref" property key with "$$ref",
// leaving string values untouched. A string is treated as a key when the
// next non-whitespace byte is a colon.
func rewriteReferenceKeys(data []byte) []byte {
	var out bytes.Buffer
	out.Grow(len(data) + 16)

	for i := 0; i < len(data); {
		c := data[i]
		if c != '"' {
			out.WriteByte(c)
			i++
			continue
		}

		// Scan the complete string literal.
		j := i + 1
		for j < len(data) {
			if data[j] == '\\' {
				j += 2
				continue
			}
			if data[j] == '"' {
				break
			}
			j++
		}
		if j >= len(data) {
			// Unterminated string; emit as-is and let the parser report it.
			out.Write(data[i:])
			return out.Bytes()
		}

		literal := data[i : j+1]
		if string(literal) == `"`+referenceKey+`"` && nextIsColon(data, j+1) {
			out.WriteString(`"` + intermediateReferenceKey + `"`)
		} else {
			out.Write(literal)
		}
		i = j + 1
	}
	return out.Bytes()
}

func nextIsColon(data []byte, from int) bool {
	for i := from; i < len(data); i++ {
		switch data[i] {
		case ' ', '\t', '\n', '\r':
			continue
		case ':':
			return true
		default:
			return false
		}
	}
	return false
}

// UnmarshalJSON decodes a schema object keyword by keyword so that a wrongly
// typed keyword surfaces as a TypeMismatch naming the keyword instead of a
// generic decode error. Unknown keys are ignored.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return newSchemaError(TypeMismatch, "schema")
	}

	if err := decodeReference(raw, "id", &s.ID); err != nil {
		return err
	}
	if err := decodeStringKeyword(raw, "$schema", &s.SchemaVersion); err != nil {
		return err
	}
	if err := decodeStringKeyword(raw, "title", &s.Title); err != nil {
		return err
	}
	if err := decodeStringKeyword(raw, "description", &s.Description); err != nil {
		return err
	}

	if value, ok := raw["type"]; ok {
		if err := s.Type.UnmarshalJSON(value); err != nil {
			return err
		}
	}
	if value, ok := raw["enum"]; ok {
		if err := json.Unmarshal(value, &s.Enum); err != nil {
			return newSchemaError(TypeMismatch, "enum")
		}
	}

	if value, ok := raw["items"]; ok {
		s.Items = &Items{}
		if err := s.Items.UnmarshalJSON(value); err != nil {
			return err
		}
	}
	if err := decodeIntKeyword(raw, "maxItems", &s.MaxItems); err != nil {
		return err
	}
	if err := decodeIntKeyword(raw, "minItems", &s.MinItems); err != nil {
		return err
	}
	if err := decodeBoolKeyword(raw, "uniqueItems", &s.UniqueItems); err != nil {
		return err
	}

	if err := decodeSchemaMap(raw, "properties", &s.Properties); err != nil {
		return err
	}
	if err := decodeSchemaMap(raw, "definitions", &s.Definitions); err != nil {
		return err
	}
	if err := decodeSchemaMap(raw, "patternProperties", &s.PatternProperties); err != nil {
		return err
	}
	if value, ok := raw["required"]; ok {
		if err := json.Unmarshal(value, &s.Required); err != nil {
			return newSchemaError(TypeMismatch, "required")
		}
	}
	if value, ok := raw["additionalProperties"]; ok {
		s.AdditionalProperties = &AdditionalProperties{}
		if err := s.AdditionalProperties.UnmarshalJSON(value); err != nil {
			return err
		}
	}
	if err := decodeIntKeyword(raw, "maxProperties", &s.MaxProperties); err != nil {
		return err
	}
	if err := decodeIntKeyword(raw, "minProperties", &s.MinProperties); err != nil {
		return err
	}

	if err := decodeIntKeyword(raw, "maxLength", &s.MaxLength); err != nil {
		return err
	}
	if err := decodeIntKeyword(raw, "minLength", &s.MinLength); err != nil {
		return err
	}
	if err := decodeStringKeyword(raw, "pattern", &s.Pattern); err != nil {
		return err
	}
	if err := decodeStringKeyword(raw, "format", &s.Format); err != nil {
		return err
	}

	if err := decodeFloatKeyword(raw, "multipleOf", &s.MultipleOf); err != nil {
		return err
	}
	if err := decodeFloatKeyword(raw, "maximum", &s.Maximum); err != nil {
		return err
	}
	if err := decodeBoolKeyword(raw, "exclusiveMaximum", &s.ExclusiveMaximum); err != nil {
		return err
	}
	if err := decodeFloatKeyword(raw, "minimum", &s.Minimum); err != nil {
		return err
	}
	if err := decodeBoolKeyword(raw, "exclusiveMinimum", &s.ExclusiveMinimum); err != nil {
		return err
	}

	if err := decodeSchemaList(raw, "allOf", &s.AllOf); err != nil {
		return err
	}
	if err := decodeSchemaList(raw, "anyOf", &s.AnyOf); err != nil {
		return err
	}
	if err := decodeSchemaList(raw, "oneOf", &s.OneOf); err != nil {
		return err
	}
	if value, ok := raw["not"]; ok {
		s.Not = &Schema{}
		if err := s.Not.UnmarshalJSON(value); err != nil {
			return err
		}
	}

	return decodeReference(raw, intermediateReferenceKey, &s.Reference)
}

func decodeStringKeyword(raw map[string]json.RawMessage, keyword string, target **string) error {
	value, ok := raw[keyword]
	if !ok {
		return nil
	}
	var decoded string
	if err := json.Unmarshal(value, &decoded); err != nil {
		return newSchemaError(TypeMismatch, keyword)
	}
	*target = &decoded
	return nil
}

func decodeIntKeyword(raw map[string]json.RawMessage, keyword string, target **int) error {
	value, ok := raw[keyword]
	if !ok {
		return nil
	}
	var decoded int
	if err := json.Unmarshal(value, &decoded); err != nil {
		return newSchemaError(TypeMismatch, keyword)
	}
	*target = &decoded
	return nil
}

func decodeFloatKeyword(raw map[string]json.RawMessage, keyword string, target **float64) error {
	value, ok := raw[keyword]
	if !ok {
		return nil
	}
	var decoded float64
	if err := json.Unmarshal(value, &decoded); err != nil {
		return newSchemaError(TypeMismatch, keyword)
	}
	*target = &decoded
	return nil
}

func decodeBoolKeyword(raw map[string]json.RawMessage, keyword string, target **bool) error {
	value, ok := raw[keyword]
	if !ok {
		return nil
	}
	var decoded bool
	if err := json.Unmarshal(value, &decoded); err != nil {
		return newSchemaError(TypeMismatch, keyword)
	}
	*target = &decoded
	return nil
}

func decodeReference(raw map[string]json.RawMessage, keyword string, target **UriOrFragment) error {
	value, ok := raw[keyword]
	if !ok {
		return nil
	}
	decoded := &UriOrFragment{}
	if err := decoded.UnmarshalJSON(value); err != nil {
		var schemaErr *SchemaError
		if errors.As(err, &schemaErr) && schemaErr.Kind == TypeMismatch {
			display := keyword
			if display == intermediateReferenceKey {
				display = referenceKey
			}
			return newSchemaError(TypeMismatch, display)
		}
		return err
	}
	*target = decoded
	return nil
}

func decodeSchemaMap(raw map[string]json.RawMessage, keyword string, target **SchemaMap) error {
	value, ok := raw[keyword]
	if !ok {
		return nil
	}
	decoded := NewSchemaMap()
	if err := decoded.UnmarshalJSON(value); err != nil {
		var schemaErr *SchemaError
		if errors.As(err, &schemaErr) && schemaErr.Kind == TypeMismatch && len(schemaErr.Arguments) > 0 && schemaErr.Arguments[0] == "object of schemas" {
			return newSchemaError(TypeMismatch, keyword)
		}
		return err
	}
	*target = decoded
	return nil
}

func decodeSchemaList(raw map[string]json.RawMessage, keyword string, target *[]*Schema) error {
	value, ok := raw[keyword]
	if !ok {
		return nil
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(value, &raws); err != nil {
		return newSchemaError(TypeMismatch, keyword)
	}
	schemas := make([]*Schema, 0, len(raws))
	for _, item := range raws {
		schema := &Schema{}
		if err := schema.UnmarshalJSON(item); err != nil {
			return err
		}
		schemas = append(schemas, schema)
	}
	*target = schemas
	return nil
}
