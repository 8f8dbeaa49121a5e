package jschema

// checkMaxItems validates "maxItems".
func (v *Validator) checkMaxItems(token *Value, schema *Schema, path []string) {
	if schema.MaxItems == nil {
		return
	}
	if len(token.Elems) > *schema.MaxItems {
		v.emit(TooManyArrayItems, token, path, map[string]any{
			"actual": len(token.Elems),
			"limit":  *schema.MaxItems,
		})
	}
}
