package jschema

// checkMinimum validates "minimum" together with "exclusiveMinimum",
// mirroring checkMaximum.
func (v *Validator) checkMinimum(token *Value, schema *Schema, path []string) {
	if schema.Minimum == nil {
		return
	}
	value := token.numericRat()
	limit := newRatFromFloat(*schema.Minimum)
	exclusive := schema.ExclusiveMinimum != nil && *schema.ExclusiveMinimum

	if exclusive {
		if value.Cmp(limit.Rat) <= 0 {
			v.emit(ValueTooSmallExclusive, token, path, map[string]any{
				"value": token,
				"limit": *schema.Minimum,
			})
		}
		return
	}
	if value.Cmp(limit.Rat) < 0 {
		v.emit(ValueTooSmall, token, path, map[string]any{
			"value": token,
			"limit": *schema.Minimum,
		})
	}
}
