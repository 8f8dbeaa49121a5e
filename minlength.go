package jschema

import "unicode/utf8"

// checkMinLength validates "minLength". Length counts characters, not
// bytes.
func (v *Validator) checkMinLength(token *Value, schema *Schema, path []string) {
	if schema.MinLength == nil {
		return
	}
	length := utf8.RuneCountInString(token.Str)
	if length < *schema.MinLength {
		v.emit(StringTooShort, token, path, map[string]any{
			"value":  token.Str,
			"actual": length,
			"limit":  *schema.MinLength,
		})
	}
}
