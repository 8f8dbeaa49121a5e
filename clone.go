package jschema

// Clone returns a deep copy of the schema. Sub-schemas are exclusively
// owned by their parents, so cloning is the only safe duplication path.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}
	clone := &Schema{
		ID:                   s.ID.Clone(),
		SchemaVersion:        cloneScalar(s.SchemaVersion),
		Title:                cloneScalar(s.Title),
		Description:          cloneScalar(s.Description),
		Type:                 cloneSlice(s.Type),
		Enum:                 cloneLiterals(s.Enum),
		Items:                s.Items.clone(),
		MaxItems:             cloneScalar(s.MaxItems),
		MinItems:             cloneScalar(s.MinItems),
		UniqueItems:          cloneScalar(s.UniqueItems),
		Properties:           s.Properties.Clone(),
		Definitions:          s.Definitions.Clone(),
		PatternProperties:    s.PatternProperties.Clone(),
		Required:             cloneSlice(s.Required),
		AdditionalProperties: s.AdditionalProperties.clone(),
		MaxProperties:        cloneScalar(s.MaxProperties),
		MinProperties:        cloneScalar(s.MinProperties),
		MaxLength:            cloneScalar(s.MaxLength),
		MinLength:            cloneScalar(s.MinLength),
		Pattern:              cloneScalar(s.Pattern),
		Format:               cloneScalar(s.Format),
		MultipleOf:           cloneScalar(s.MultipleOf),
		Maximum:              cloneScalar(s.Maximum),
		ExclusiveMaximum:     cloneScalar(s.ExclusiveMaximum),
		Minimum:              cloneScalar(s.Minimum),
		ExclusiveMinimum:     cloneScalar(s.ExclusiveMinimum),
		AllOf:                cloneSchemas(s.AllOf),
		AnyOf:                cloneSchemas(s.AnyOf),
		OneOf:                cloneSchemas(s.OneOf),
		Not:                  s.Not.Clone(),
		Reference:            s.Reference.Clone(),
	}
	return clone
}

// Clone returns a deep copy preserving key order.
func (m *SchemaMap) Clone() *SchemaMap {
	if m == nil {
		return nil
	}
	clone := NewSchemaMap()
	for _, key := range m.keys {
		clone.Set(key, m.values[key].Clone())
	}
	return clone
}

func (it *Items) clone() *Items {
	if it == nil {
		return nil
	}
	return &Items{
		Schema:  it.Schema.Clone(),
		Schemas: cloneSchemas(it.Schemas),
	}
}

func (ap *AdditionalProperties) clone() *AdditionalProperties {
	if ap == nil {
		return nil
	}
	return &AdditionalProperties{
		Boolean: cloneScalar(ap.Boolean),
		Schema:  ap.Schema.Clone(),
	}
}

func cloneScalar[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneSlice[S ~[]E, E any](s S) S {
	if s == nil {
		return nil
	}
	out := make(S, len(s))
	copy(out, s)
	return out
}

func cloneSchemas(schemas []*Schema) []*Schema {
	if schemas == nil {
		return nil
	}
	out := make([]*Schema, len(schemas))
	for i, schema := range schemas {
		out[i] = schema.Clone()
	}
	return out
}

func cloneLiterals(literals []any) []any {
	if literals == nil {
		return nil
	}
	out := make([]any, len(literals))
	for i, literal := range literals {
		out[i] = cloneLiteral(literal)
	}
	return out
}

func cloneLiteral(literal any) any {
	switch v := literal.(type) {
	case []any:
		return cloneLiterals(v)
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, element := range v {
			out[key] = cloneLiteral(element)
		}
		return out
	default:
		return v
	}
}
