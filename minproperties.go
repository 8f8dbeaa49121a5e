package jschema

// checkMinProperties validates "minProperties".
func (v *Validator) checkMinProperties(token *Value, schema *Schema, path []string) {
	if schema.MinProperties == nil {
		return
	}
	if len(token.Keys) < *schema.MinProperties {
		v.emit(TooFewProperties, token, path, map[string]any{
			"actual": len(token.Keys),
			"limit":  *schema.MinProperties,
		})
	}
}
