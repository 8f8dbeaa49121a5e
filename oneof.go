package jschema

// checkOneOf validates "oneOf": every member is tried and the accepting
// ones are counted. Anything other than exactly one acceptance emits
// NotOneOf with the counts.
func (v *Validator) checkOneOf(token *Value, schema *Schema, path []string) error {
	if schema.OneOf == nil {
		return nil
	}
	matches := 0
	for _, member := range schema.OneOf {
		rejected, err := v.trial(token, member, path)
		if err != nil {
			return err
		}
		if !rejected {
			matches++
		}
	}
	if matches != 1 {
		v.emit(NotOneOf, token, path, map[string]any{
			"matches": matches,
			"count":   len(schema.OneOf),
		})
	}
	return nil
}
