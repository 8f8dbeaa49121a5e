package jschema

import "strconv"

// checkItems walks array elements through the "items" keyword. A single
// schema validates every element uniformly. A schema sequence validates
// positionally and must supply at least as many schemas as the array has
// elements; otherwise one TooFewItemSchemas diagnostic is emitted and no
// element is walked.
//
// Reference: https://json-schema.org/draft-04/json-schema-core#rfc.section.8.2
func (v *Validator) checkItems(token *Value, schema *Schema, path []string) error {
	if schema.Items == nil {
		return nil
	}

	if schema.Items.Schema != nil {
		resolved, err := v.resolve(schema.Items.Schema)
		if err != nil {
			return err
		}
		for i, element := range token.Elems {
			if err := v.validateToken(element, resolved, childPath(path, strconv.Itoa(i))); err != nil {
				return err
			}
		}
		return nil
	}

	if len(schema.Items.Schemas) < len(token.Elems) {
		v.emit(TooFewItemSchemas, token, path, map[string]any{
			"actual":  len(token.Elems),
			"schemas": len(schema.Items.Schemas),
		})
		return nil
	}
	for i, element := range token.Elems {
		resolved, err := v.resolve(schema.Items.Schemas[i])
		if err != nil {
			return err
		}
		if err := v.validateToken(element, resolved, childPath(path, strconv.Itoa(i))); err != nil {
			return err
		}
	}
	return nil
}
