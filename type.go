package jschema

// checkType gates the node on the "type" keyword. The instance type must
// appear in the schema's type sequence, with two widenings: an Integer
// instance satisfies a sequence naming "number", and a Date instance
// satisfies one naming "string". On mismatch a single WrongType diagnostic
// is emitted and the type-specialized checks are skipped for the node.
//
// Reference: https://json-schema.org/draft-04/json-schema-validation#rfc.section.5.5.2
func (v *Validator) checkType(token *Value, schema *Schema, path []string) bool {
	if len(schema.Type) == 0 {
		return true
	}
	if typeMatches(token.Kind, schema.Type) {
		return true
	}
	v.emit(WrongType, token, path, map[string]any{
		"expected": schema.Type,
		"actual":   token.Kind,
	})
	return false
}

func typeMatches(kind Kind, types SchemaType) bool {
	switch kind {
	case KindNull:
		return types.Contains(TypeNull)
	case KindBoolean:
		return types.Contains(TypeBoolean)
	case KindInteger:
		return types.Contains(TypeInteger) || types.Contains(TypeNumber)
	case KindNumber:
		return types.Contains(TypeNumber)
	case KindString:
		return types.Contains(TypeString)
	case KindDate:
		return types.Contains(TypeString)
	case KindArray:
		return types.Contains(TypeArray)
	case KindObject:
		return types.Contains(TypeObject)
	}
	return false
}
