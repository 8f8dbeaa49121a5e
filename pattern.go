package jschema

import "fmt"

// checkPattern validates "pattern". The match is an unanchored search, as
// Draft 4 requires. Patterns compile with RE2 semantics, whose worst case
// is linear in the input; an uncompilable pattern is a malformed schema
// and aborts the walk.
func (v *Validator) checkPattern(token *Value, schema *Schema, path []string) error {
	if schema.Pattern == nil {
		return nil
	}
	compiled, err := v.compilePattern(*schema.Pattern)
	if err != nil {
		return fmt.Errorf("invalid pattern %q: %w", *schema.Pattern, err)
	}
	if !compiled.MatchString(token.Str) {
		v.emit(StringDoesNotMatchPattern, token, path, map[string]any{
			"value":   token.Str,
			"pattern": *schema.Pattern,
		})
	}
	return nil
}
