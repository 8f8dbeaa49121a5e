package jschema

// checkMinItems validates "minItems".
func (v *Validator) checkMinItems(token *Value, schema *Schema, path []string) {
	if schema.MinItems == nil {
		return
	}
	if len(token.Elems) < *schema.MinItems {
		v.emit(TooFewArrayItems, token, path, map[string]any{
			"actual": len(token.Elems),
			"limit":  *schema.MinItems,
		})
	}
}
