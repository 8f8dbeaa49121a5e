package jschema

// checkAllOf validates "allOf". Each member schema is tried with a fresh
// sub-validator; the trial's own diagnostics are discarded, and a single
// NotAllOf summary is emitted if any member rejected the instance.
//
// Reference: https://json-schema.org/draft-04/json-schema-core#rfc.section.8.1
func (v *Validator) checkAllOf(token *Value, schema *Schema, path []string) error {
	if schema.AllOf == nil {
		return nil
	}
	failed := false
	for _, member := range schema.AllOf {
		rejected, err := v.trial(token, member, path)
		if err != nil {
			return err
		}
		if rejected {
			failed = true
		}
	}
	if failed {
		v.emit(NotAllOf, token, path, map[string]any{
			"count": len(schema.AllOf),
		})
	}
	return nil
}

// trial runs a member schema in an isolated sub-validator and reports
// whether it rejected the token. The sub-validator's messages never reach
// the outer list.
func (v *Validator) trial(token *Value, member *Schema, path []string) (rejected bool, err error) {
	resolved, err := v.resolve(member)
	if err != nil {
		return false, err
	}
	nested := v.fork()
	if err := nested.validateToken(token, resolved, path); err != nil {
		return false, err
	}
	return len(nested.messages) > 0, nil
}
