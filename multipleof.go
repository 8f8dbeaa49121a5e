package jschema

// checkMultipleOf validates "multipleOf" with an exact rational division,
// so 0.3 is a multiple of 0.1 even though the float quotient is not
// integral.
func (v *Validator) checkMultipleOf(token *Value, schema *Schema, path []string) {
	if schema.MultipleOf == nil {
		return
	}
	value := token.numericRat()
	multiple := newRatFromFloat(*schema.MultipleOf)
	if !value.isMultipleOf(multiple) {
		v.emit(NotAMultiple, token, path, map[string]any{
			"value":    token,
			"multiple": *schema.MultipleOf,
		})
	}
}
