package jschema

import (
	"bytes"

	"github.com/goccy/go-json"
)

// SchemaMap maps property names (or regex patterns) to schemas. Insertion
// order carries no schema semantics but is preserved so the writer can
// replay the source ordering; equality ignores it.
type SchemaMap struct {
	keys   []string
	values map[string]*Schema
}

// NewSchemaMap returns an empty map.
func NewSchemaMap() *SchemaMap {
	return &SchemaMap{values: map[string]*Schema{}}
}

// Set stores a schema under name, appending the key on first insertion.
func (m *SchemaMap) Set(name string, schema *Schema) {
	if m.values == nil {
		m.values = map[string]*Schema{}
	}
	if _, seen := m.values[name]; !seen {
		m.keys = append(m.keys, name)
	}
	m.values[name] = schema
}

// Get returns the schema stored under name.
func (m *SchemaMap) Get(name string) (*Schema, bool) {
	if m == nil || m.values == nil {
		return nil, false
	}
	schema, ok := m.values[name]
	return schema, ok
}

// Has reports whether name is present.
func (m *SchemaMap) Has(name string) bool {
	_, ok := m.Get(name)
	return ok
}

// Keys returns the key sequence in insertion order. The returned slice is
// shared; callers must not mutate it.
func (m *SchemaMap) Keys() []string {
	if m == nil {
		return nil
	}
	return m.keys
}

// Len returns the number of entries.
func (m *SchemaMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// MarshalJSON writes the entries as a JSON object in insertion order.
func (m *SchemaMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		encodedKey, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(encodedKey)
		buf.WriteByte(':')
		encodedValue, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(encodedValue)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, recovering the source key order.
func (m *SchemaMap) UnmarshalJSON(data []byte) error {
	var raws map[string]json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return newSchemaError(TypeMismatch, "object of schemas")
	}

	// The raw map loses ordering; rescan the object for it.
	shape, err := ParseInstance(data)
	if err != nil || shape.Kind != KindObject {
		return newSchemaError(TypeMismatch, "object of schemas")
	}

	m.keys = nil
	m.values = make(map[string]*Schema, len(raws))
	for _, key := range shape.Keys {
		schema := &Schema{}
		if err := schema.UnmarshalJSON(raws[key]); err != nil {
			return err
		}
		m.Set(key, schema)
	}
	return nil
}
