package jschema

// checkEnum validates the instance against the "enum" keyword. The
// instance passes if some enum element is deep-equal to it: numbers
// compare by value (1 matches 1.0), strings by code point, arrays
// element-wise, objects as unordered key/value sets.
//
// Reference: https://json-schema.org/draft-04/json-schema-validation#rfc.section.5.5.1
func (v *Validator) checkEnum(token *Value, schema *Schema, path []string) {
	if len(schema.Enum) == 0 {
		return
	}
	for _, permitted := range schema.Enum {
		if deepEqualLiteral(token, permitted) {
			return
		}
	}
	v.emit(InvalidEnumValue, token, path, map[string]any{
		"value":     token,
		"permitted": schema.Enum,
	})
}
