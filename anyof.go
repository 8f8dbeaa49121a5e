package jschema

// checkAnyOf validates "anyOf": members are tried in order and the first
// accepting one ends the search. NotAnyOf is emitted when every member
// rejects.
func (v *Validator) checkAnyOf(token *Value, schema *Schema, path []string) error {
	if schema.AnyOf == nil {
		return nil
	}
	for _, member := range schema.AnyOf {
		rejected, err := v.trial(token, member, path)
		if err != nil {
			return err
		}
		if !rejected {
			return nil
		}
	}
	v.emit(NotAnyOf, token, path, map[string]any{
		"count": len(schema.AnyOf),
	})
	return nil
}
