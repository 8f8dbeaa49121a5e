package jschema

// checkMaximum validates "maximum" together with "exclusiveMaximum". The
// comparison is exact: both sides go through big.Rat, so 0.1-style float
// artifacts cannot flip a boundary.
//
// Reference: https://json-schema.org/draft-04/json-schema-validation#rfc.section.5.1.2
func (v *Validator) checkMaximum(token *Value, schema *Schema, path []string) {
	if schema.Maximum == nil {
		return
	}
	value := token.numericRat()
	limit := newRatFromFloat(*schema.Maximum)
	exclusive := schema.ExclusiveMaximum != nil && *schema.ExclusiveMaximum

	if exclusive {
		if value.Cmp(limit.Rat) >= 0 {
			v.emit(ValueTooLargeExclusive, token, path, map[string]any{
				"value": token,
				"limit": *schema.Maximum,
			})
		}
		return
	}
	if value.Cmp(limit.Rat) > 0 {
		v.emit(ValueTooLarge, token, path, map[string]any{
			"value": token,
			"limit": *schema.Maximum,
		})
	}
}
