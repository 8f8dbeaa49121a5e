package jschema

// Equals reports structural equality, recursing through every optional
// field. Absent compares equal only to absent. Element order is significant
// for type, enum, required and the combinator sequences; the schema maps
// compare as unordered key/value sets.
func (s *Schema) Equals(other *Schema) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.ID.Equals(other.ID) &&
		scalarsEqual(s.SchemaVersion, other.SchemaVersion) &&
		scalarsEqual(s.Title, other.Title) &&
		scalarsEqual(s.Description, other.Description) &&
		stringSlicesEqual(s.Type, other.Type) &&
		literalSlicesEqual(s.Enum, other.Enum) &&
		s.Items.equals(other.Items) &&
		scalarsEqual(s.MaxItems, other.MaxItems) &&
		scalarsEqual(s.MinItems, other.MinItems) &&
		scalarsEqual(s.UniqueItems, other.UniqueItems) &&
		s.Properties.Equals(other.Properties) &&
		s.Definitions.Equals(other.Definitions) &&
		s.PatternProperties.Equals(other.PatternProperties) &&
		stringSlicesEqual(s.Required, other.Required) &&
		s.AdditionalProperties.equals(other.AdditionalProperties) &&
		scalarsEqual(s.MaxProperties, other.MaxProperties) &&
		scalarsEqual(s.MinProperties, other.MinProperties) &&
		scalarsEqual(s.MaxLength, other.MaxLength) &&
		scalarsEqual(s.MinLength, other.MinLength) &&
		scalarsEqual(s.Pattern, other.Pattern) &&
		scalarsEqual(s.Format, other.Format) &&
		scalarsEqual(s.MultipleOf, other.MultipleOf) &&
		scalarsEqual(s.Maximum, other.Maximum) &&
		scalarsEqual(s.ExclusiveMaximum, other.ExclusiveMaximum) &&
		scalarsEqual(s.Minimum, other.Minimum) &&
		scalarsEqual(s.ExclusiveMinimum, other.ExclusiveMinimum) &&
		schemaSlicesEqual(s.AllOf, other.AllOf) &&
		schemaSlicesEqual(s.AnyOf, other.AnyOf) &&
		schemaSlicesEqual(s.OneOf, other.OneOf) &&
		s.Not.Equals(other.Not) &&
		s.Reference.Equals(other.Reference)
}

// Equals reports unordered key/value equality with recursive schema
// comparison on the values.
func (m *SchemaMap) Equals(other *SchemaMap) bool {
	if m == nil || other == nil {
		return m == other
	}
	if len(m.keys) != len(other.keys) {
		return false
	}
	for key, schema := range m.values {
		otherSchema, ok := other.values[key]
		if !ok || !schema.Equals(otherSchema) {
			return false
		}
	}
	return true
}

func (it *Items) equals(other *Items) bool {
	if it == nil || other == nil {
		return it == other
	}
	return it.Schema.Equals(other.Schema) && schemaSlicesEqual(it.Schemas, other.Schemas)
}

func (ap *AdditionalProperties) equals(other *AdditionalProperties) bool {
	if ap == nil || other == nil {
		return ap == other
	}
	return scalarsEqual(ap.Boolean, other.Boolean) && ap.Schema.Equals(other.Schema)
}

func scalarsEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func stringSlicesEqual[S ~[]string](a, b S) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func literalSlicesEqual(a, b []any) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !deepEqualLiterals(a[i], b[i]) {
			return false
		}
	}
	return true
}

func schemaSlicesEqual(a, b []*Schema) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}
	return true
}
