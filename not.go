package jschema

// checkNot validates "not": the instance fails when the negated schema
// accepts it.
func (v *Validator) checkNot(token *Value, schema *Schema, path []string) error {
	if schema.Not == nil {
		return nil
	}
	rejected, err := v.trial(token, schema.Not, path)
	if err != nil {
		return err
	}
	if !rejected {
		v.emit(ValidatesAgainstNotSchema, token, path, nil)
	}
	return nil
}
