package jschema

// Collapse returns a deep clone of the schema with references resolved in
// place: each node carrying a reference has the scalar constraint fields of
// its definition target merged into it and the reference cleared. Only
// same-document "#/definitions/<name>" references are supported; the first
// unsupported or unresolvable reference fails the whole operation.
//
// Definitions are resolved against the root schema passed in, never against
// the subtree being walked.
func Collapse(schema *Schema) (*Schema, error) {
	root := schema.Clone()
	if err := collapseNode(root, root, map[string]bool{}); err != nil {
		return nil, err
	}
	return root, nil
}

func collapseNode(node, root *Schema, active map[string]bool) error {
	if node == nil {
		return nil
	}

	if node.Reference != nil {
		if !node.Reference.IsFragment() {
			return newSchemaError(UnsupportedReferenceForm, node.Reference.String())
		}
		name, err := node.Reference.GetDefinitionName()
		if err != nil {
			return err
		}
		definition, ok := root.Definitions.Get(name)
		if !ok {
			return newSchemaError(DefinitionNotFound, name)
		}
		if active[name] {
			// A definition that reaches itself through its own items
			// cannot be inlined.
			return newSchemaError(UnsupportedReferenceForm, node.Reference.String())
		}
		active[name] = true
		mergeDefinition(node, definition)
		node.Reference = nil
		if err := collapseChildren(node, root, active); err != nil {
			return err
		}
		delete(active, name)
		return nil
	}

	return collapseChildren(node, root, active)
}

func collapseChildren(node, root *Schema, active map[string]bool) error {
	if node.Items != nil {
		if err := collapseNode(node.Items.Schema, root, active); err != nil {
			return err
		}
		for _, item := range node.Items.Schemas {
			if err := collapseNode(item, root, active); err != nil {
				return err
			}
		}
	}
	for _, key := range node.Properties.Keys() {
		property, _ := node.Properties.Get(key)
		if err := collapseNode(property, root, active); err != nil {
			return err
		}
	}
	for _, key := range node.Definitions.Keys() {
		definition, _ := node.Definitions.Get(key)
		if err := collapseNode(definition, root, active); err != nil {
			return err
		}
	}
	if node.AdditionalProperties != nil {
		if err := collapseNode(node.AdditionalProperties.Schema, root, active); err != nil {
			return err
		}
	}
	return nil
}

// mergeDefinition copies the leaf constraint fields of a definition into
// the referring node. Structural fields of the definition (properties,
// definitions, required, combinators) are intentionally not inlined; the
// referring node keeps its own values for those.
func mergeDefinition(node, definition *Schema) {
	if definition.Type != nil {
		node.Type = cloneSlice(definition.Type)
	}
	if definition.Enum != nil {
		node.Enum = cloneLiterals(definition.Enum)
	}
	if definition.Items != nil {
		node.Items = definition.Items.clone()
	}
	if definition.Pattern != nil {
		node.Pattern = cloneScalar(definition.Pattern)
	}
	if definition.MaxLength != nil {
		node.MaxLength = cloneScalar(definition.MaxLength)
	}
	if definition.MinLength != nil {
		node.MinLength = cloneScalar(definition.MinLength)
	}
	if definition.MultipleOf != nil {
		node.MultipleOf = cloneScalar(definition.MultipleOf)
	}
	if definition.Maximum != nil {
		node.Maximum = cloneScalar(definition.Maximum)
	}
	if definition.ExclusiveMaximum != nil {
		node.ExclusiveMaximum = cloneScalar(definition.ExclusiveMaximum)
	}
	if definition.MinItems != nil {
		node.MinItems = cloneScalar(definition.MinItems)
	}
	if definition.MaxItems != nil {
		node.MaxItems = cloneScalar(definition.MaxItems)
	}
	if definition.UniqueItems != nil {
		node.UniqueItems = cloneScalar(definition.UniqueItems)
	}
	if definition.Format != nil {
		node.Format = cloneScalar(definition.Format)
	}
}
