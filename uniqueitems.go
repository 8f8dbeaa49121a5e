package jschema

// checkUniqueItems validates "uniqueItems" when it is true: the array
// fails if any two elements are deep-equal.
func (v *Validator) checkUniqueItems(token *Value, schema *Schema, path []string) {
	if schema.UniqueItems == nil || !*schema.UniqueItems {
		return
	}
	for i := 1; i < len(token.Elems); i++ {
		for j := 0; j < i; j++ {
			if deepEqualValues(token.Elems[i], token.Elems[j]) {
				v.emit(NotUnique, token, path, map[string]any{
					"unique": true,
				})
				return
			}
		}
	}
}
