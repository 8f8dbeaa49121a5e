package jschema

// checkMaxProperties validates "maxProperties".
func (v *Validator) checkMaxProperties(token *Value, schema *Schema, path []string) {
	if schema.MaxProperties == nil {
		return
	}
	if len(token.Keys) > *schema.MaxProperties {
		v.emit(TooManyProperties, token, path, map[string]any{
			"actual": len(token.Keys),
			"limit":  *schema.MaxProperties,
		})
	}
}
