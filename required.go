package jschema

// checkRequired validates "required", emitting one diagnostic per missing
// property name.
//
// Reference: https://json-schema.org/draft-04/json-schema-validation#rfc.section.5.4.3
func (v *Validator) checkRequired(token *Value, schema *Schema, path []string) {
	for _, name := range schema.Required {
		if _, present := token.Field(name); !present {
			v.emit(RequiredPropertyMissing, token, path, map[string]any{
				"property": name,
			})
		}
	}
}
