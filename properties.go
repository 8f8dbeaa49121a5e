package jschema

import "fmt"

// checkProperties walks an object instance through "properties",
// "patternProperties" and "additionalProperties", in that order.
//
// Property names not claimed by "properties" form the additional set. Each
// "patternProperties" pattern validates — and removes from that set —
// every additional name it matches. Whatever remains is governed by
// "additionalProperties": the boolean false prohibits each remaining name,
// a schema validates each one, and true (or an absent keyword) permits
// anything.
//
// Reference: https://json-schema.org/draft-04/json-schema-core#rfc.section.8.3
func (v *Validator) checkProperties(token *Value, schema *Schema, path []string) error {
	var additional []string

	for _, name := range token.Keys {
		property, ok := schema.Properties.Get(name)
		if !ok {
			additional = append(additional, name)
			continue
		}
		resolved, err := v.resolve(property)
		if err != nil {
			return err
		}
		if err := v.validateToken(token.Fields[name], resolved, childPath(path, name)); err != nil {
			return err
		}
	}

	if schema.PatternProperties != nil {
		remaining := additional[:0]
		consumed := make(map[string]bool, len(additional))
		for _, pattern := range schema.PatternProperties.Keys() {
			compiled, err := v.compilePattern(pattern)
			if err != nil {
				return fmt.Errorf("invalid patternProperties pattern %q: %w", pattern, err)
			}
			patternSchema, _ := schema.PatternProperties.Get(pattern)
			resolved, err := v.resolve(patternSchema)
			if err != nil {
				return err
			}
			for _, name := range additional {
				if consumed[name] || !compiled.MatchString(name) {
					continue
				}
				consumed[name] = true
				if err := v.validateToken(token.Fields[name], resolved, childPath(path, name)); err != nil {
					return err
				}
			}
		}
		for _, name := range additional {
			if !consumed[name] {
				remaining = append(remaining, name)
			}
		}
		additional = remaining
	}

	ap := schema.AdditionalProperties
	if ap == nil {
		return nil
	}
	if ap.Prohibits() {
		for _, name := range additional {
			v.emit(AdditionalPropertiesProhibited, token.Fields[name], childPath(path, name), map[string]any{
				"property": name,
				"allowed":  false,
			})
		}
		return nil
	}
	if ap.Schema != nil {
		resolved, err := v.resolve(ap.Schema)
		if err != nil {
			return err
		}
		for _, name := range additional {
			if err := v.validateToken(token.Fields[name], resolved, childPath(path, name)); err != nil {
				return err
			}
		}
	}
	return nil
}
