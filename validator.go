package jschema

import (
	"regexp"

	"github.com/kaptinlin/jsonpointer"
)

// Validator checks JSON instances against a schema and accumulates
// diagnostics in emission order. A validator is single-threaded and owns
// its message list exclusively; the schema it holds is never mutated, so
// one schema may back any number of validators.
type Validator struct {
	schema      *Schema
	definitions *SchemaMap
	stack       []*Schema
	messages    []Diagnostic
	patterns    map[string]*regexp.Regexp
}

// NewValidator constructs a validator for the schema. The schema's
// definitions map becomes the resolution table for every reference met
// during validation.
func NewValidator(schema *Schema) *Validator {
	v := &Validator{
		schema:      schema,
		definitions: schema.Definitions,
		patterns:    map[string]*regexp.Regexp{},
	}
	v.stack = append(v.stack, schema)
	return v
}

// Validate parses the instance text and walks it against the schema. The
// returned diagnostics are in emission order; an empty result means the
// instance is valid. The error channel carries structural failures only:
// malformed instance text, an unresolvable reference, or a schema broken
// enough to make the walk impossible.
func (v *Validator) Validate(instanceText []byte) ([]Diagnostic, error) {
	instance, err := ParseInstance(instanceText)
	if err != nil {
		return nil, err
	}
	return v.ValidateInstance(instance)
}

// ValidateInstance walks an already parsed instance tree.
func (v *Validator) ValidateInstance(instance *Value) ([]Diagnostic, error) {
	v.messages = nil
	root, err := v.resolve(v.schema)
	if err != nil {
		return nil, err
	}
	if err := v.validateToken(instance, root, nil); err != nil {
		return nil, err
	}
	return v.messages, nil
}

// Messages returns the diagnostics of the last Validate call.
func (v *Validator) Messages() []Diagnostic {
	return v.messages
}

// resolve replaces a reference node with its definition target. Only bare
// "#/definitions/<name>" fragments resolve; anything else is a structural
// failure.
func (v *Validator) resolve(schema *Schema) (*Schema, error) {
	if schema == nil || schema.Reference == nil {
		return schema, nil
	}
	if !schema.Reference.IsFragment() {
		return nil, newSchemaError(UnsupportedReferenceForm, schema.Reference.String())
	}
	name, err := schema.Reference.GetDefinitionName()
	if err != nil {
		return nil, err
	}
	definition, ok := v.definitions.Get(name)
	if !ok {
		return nil, newSchemaError(DefinitionNotFound, name)
	}
	return definition, nil
}

// fork creates the fresh sub-validator used for combinator trials. It
// shares the resolution table and the compiled-pattern cache but owns an
// empty message list, so trial diagnostics never reach the outer list.
func (v *Validator) fork() *Validator {
	return &Validator{
		definitions: v.definitions,
		patterns:    v.patterns,
	}
}

// validateToken checks one instance token against one schema node. Per
// node the walk is: type gate, then type-specialized keyword checks, then
// the keyword-orthogonal checks (enum and the combinators). A failed type
// gate emits WrongType and suppresses the specialized checks; the
// orthogonal checks always run.
func (v *Validator) validateToken(token *Value, schema *Schema, path []string) error {
	if schema == nil {
		return nil
	}
	v.stack = append(v.stack, schema)
	defer func() { v.stack = v.stack[:len(v.stack)-1] }()

	if v.checkType(token, schema, path) {
		switch token.Kind {
		case KindString, KindDate:
			if err := v.checkString(token, schema, path); err != nil {
				return err
			}
		case KindInteger, KindNumber:
			v.checkNumeric(token, schema, path)
		case KindObject:
			if err := v.checkObject(token, schema, path); err != nil {
				return err
			}
		case KindArray:
			if err := v.checkArray(token, schema, path); err != nil {
				return err
			}
		}
	}

	v.checkEnum(token, schema, path)
	if err := v.checkAllOf(token, schema, path); err != nil {
		return err
	}
	if err := v.checkAnyOf(token, schema, path); err != nil {
		return err
	}
	if err := v.checkOneOf(token, schema, path); err != nil {
		return err
	}
	return v.checkNot(token, schema, path)
}

// checkString groups the string-specialized keywords.
func (v *Validator) checkString(token *Value, schema *Schema, path []string) error {
	v.checkMaxLength(token, schema, path)
	v.checkMinLength(token, schema, path)
	return v.checkPattern(token, schema, path)
}

// checkNumeric groups the numeric-specialized keywords.
func (v *Validator) checkNumeric(token *Value, schema *Schema, path []string) {
	v.checkMaximum(token, schema, path)
	v.checkMinimum(token, schema, path)
	v.checkMultipleOf(token, schema, path)
}

// checkObject groups the object-specialized keywords; see properties.go
// for the property walk.
func (v *Validator) checkObject(token *Value, schema *Schema, path []string) error {
	v.checkMaxProperties(token, schema, path)
	v.checkMinProperties(token, schema, path)
	v.checkRequired(token, schema, path)
	return v.checkProperties(token, schema, path)
}

// checkArray groups the array-specialized keywords; see items.go for the
// element walk.
func (v *Validator) checkArray(token *Value, schema *Schema, path []string) error {
	v.checkMinItems(token, schema, path)
	v.checkMaxItems(token, schema, path)
	if err := v.checkItems(token, schema, path); err != nil {
		return err
	}
	v.checkUniqueItems(token, schema, path)
	return nil
}

func (v *Validator) emit(kind DiagnosticKind, token *Value, path []string, args map[string]any) {
	v.messages = append(v.messages, newDiagnostic(kind, token, formatPath(path), args))
}

// childPath returns path extended by one token. It always copies so that
// sibling walks cannot alias each other's backing array.
func childPath(path []string, token string) []string {
	out := make([]string, len(path)+1)
	copy(out, path)
	out[len(path)] = token
	return out
}

func formatPath(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	return jsonpointer.Format(tokens...)
}

// compilePattern returns a cached compiled regex for a pattern keyword.
func (v *Validator) compilePattern(pattern string) (*regexp.Regexp, error) {
	if compiled, ok := v.patterns[pattern]; ok {
		return compiled, nil
	}
	compiled, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	v.patterns[pattern] = compiled
	return compiled, nil
}
