package jschema

import "unicode/utf8"

// checkMaxLength validates "maxLength". Length counts characters, not
// bytes.
func (v *Validator) checkMaxLength(token *Value, schema *Schema, path []string) {
	if schema.MaxLength == nil {
		return
	}
	length := utf8.RuneCountInString(token.Str)
	if length > *schema.MaxLength {
		v.emit(StringTooLong, token, path, map[string]any{
			"value":  token.Str,
			"actual": length,
			"limit":  *schema.MaxLength,
		})
	}
}
