package jschema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kaptinlin/go-i18n"
)

// DiagnosticKind numbers the closed set of validation failures. The numeric
// value appears in rendered messages as JS<nnnn>.
type DiagnosticKind int

const (
	WrongType DiagnosticKind = iota + 1001
	StringTooLong
	StringTooShort
	StringDoesNotMatchPattern
	ValueTooLarge
	ValueTooLargeExclusive
	ValueTooSmall
	ValueTooSmallExclusive
	NotAMultiple
	TooFewArrayItems
	TooManyArrayItems
	TooFewItemSchemas
	NotUnique
	TooManyProperties
	TooFewProperties
	RequiredPropertyMissing
	AdditionalPropertiesProhibited
	InvalidEnumValue
	NotAllOf
	NotAnyOf
	NotOneOf
	ValidatesAgainstNotSchema
)

// Code returns the stable identifier of the kind, also used as the lookup
// key in the locale bundles.
func (k DiagnosticKind) Code() string {
	switch k {
	case WrongType:
		return "wrong_type"
	case StringTooLong:
		return "string_too_long"
	case StringTooShort:
		return "string_too_short"
	case StringDoesNotMatchPattern:
		return "string_does_not_match_pattern"
	case ValueTooLarge:
		return "value_too_large"
	case ValueTooLargeExclusive:
		return "value_too_large_exclusive"
	case ValueTooSmall:
		return "value_too_small"
	case ValueTooSmallExclusive:
		return "value_too_small_exclusive"
	case NotAMultiple:
		return "not_a_multiple"
	case TooFewArrayItems:
		return "too_few_array_items"
	case TooManyArrayItems:
		return "too_many_array_items"
	case TooFewItemSchemas:
		return "too_few_item_schemas"
	case NotUnique:
		return "not_unique"
	case TooManyProperties:
		return "too_many_properties"
	case TooFewProperties:
		return "too_few_properties"
	case RequiredPropertyMissing:
		return "required_property_missing"
	case AdditionalPropertiesProhibited:
		return "additional_properties_prohibited"
	case InvalidEnumValue:
		return "invalid_enum_value"
	case NotAllOf:
		return "not_all_of"
	case NotAnyOf:
		return "not_any_of"
	case NotOneOf:
		return "not_one_of"
	case ValidatesAgainstNotSchema:
		return "validates_against_not_schema"
	}
	return "unknown"
}

// template returns the built-in English message for the kind.
func (k DiagnosticKind) template() string {
	switch k {
	case WrongType:
		return "The value has type {actual}, but one of the types {expected} was required."
	case StringTooLong:
		return "The string {value} is {actual} characters long, which exceeds the maximum length of {limit}."
	case StringTooShort:
		return "The string {value} is {actual} characters long, which is shorter than the minimum length of {limit}."
	case StringDoesNotMatchPattern:
		return "The string {value} does not match the pattern {pattern}."
	case ValueTooLarge:
		return "The value {value} exceeds the maximum of {limit}."
	case ValueTooLargeExclusive:
		return "The value {value} equals or exceeds the exclusive maximum of {limit}."
	case ValueTooSmall:
		return "The value {value} falls below the minimum of {limit}."
	case ValueTooSmallExclusive:
		return "The value {value} equals or falls below the exclusive minimum of {limit}."
	case NotAMultiple:
		return "The value {value} is not a multiple of {multiple}."
	case TooFewArrayItems:
		return "The array has {actual} items, which is fewer than the minimum of {limit}."
	case TooManyArrayItems:
		return "The array has {actual} items, which exceeds the maximum of {limit}."
	case TooFewItemSchemas:
		return "The array has {actual} items, but only {schemas} item schemas are given."
	case NotUnique:
		return "The array contains duplicate items, but uniqueItems is {unique}."
	case TooManyProperties:
		return "The object has {actual} properties, which exceeds the maximum of {limit}."
	case TooFewProperties:
		return "The object has {actual} properties, which is fewer than the minimum of {limit}."
	case RequiredPropertyMissing:
		return "The required property {property} is missing."
	case AdditionalPropertiesProhibited:
		return "The property {property} is not permitted, because additionalProperties is {allowed}."
	case InvalidEnumValue:
		return "The value {value} is not one of the permitted values {permitted}."
	case NotAllOf:
		return "The value does not validate against all of the {count} schemas given in allOf."
	case NotAnyOf:
		return "The value does not validate against any of the {count} schemas given in anyOf."
	case NotOneOf:
		return "The value validates against {matches} of the {count} schemas given in oneOf, but exactly one match is required."
	case ValidatesAgainstNotSchema:
		return "The value validates against the schema given in not, but must not."
	}
	return "Validation failed."
}

// Diagnostic is one validation failure. Line and Col are the source
// position of the offending instance token, Path its JSON Pointer.
type Diagnostic struct {
	Kind DiagnosticKind
	Line int
	Col  int
	Path string
	Args map[string]any
}

func newDiagnostic(kind DiagnosticKind, token *Value, path string, args map[string]any) Diagnostic {
	return Diagnostic{
		Kind: kind,
		Line: token.Line,
		Col:  token.Col,
		Path: path,
		Args: args,
	}
}

// Message renders the diagnostic text without the position prefix.
func (d Diagnostic) Message() string {
	return replaceTemplate(d.Kind.template(), d.Args)
}

// String renders the full diagnostic: "(line, col): error JS<nnnn>: <text>".
func (d Diagnostic) String() string {
	return fmt.Sprintf("(%d, %d): error JS%04d: %s", d.Line, d.Col, int(d.Kind), d.Message())
}

// Localize renders the diagnostic text from a locale bundle, falling back
// to the built-in English template when no localizer is given.
func (d Diagnostic) Localize(localizer *i18n.Localizer) string {
	if localizer == nil {
		return d.Message()
	}
	return localizer.Get(d.Kind.Code(), i18n.Vars(d.formattedArgs()))
}

func (d Diagnostic) formattedArgs() map[string]any {
	out := make(map[string]any, len(d.Args))
	for key, value := range d.Args {
		out[key] = formatArgument(value)
	}
	return out
}

// replaceTemplate substitutes {name} placeholders with formatted argument
// values.
func replaceTemplate(template string, args map[string]any) string {
	for key, value := range args {
		placeholder := "{" + key + "}"
		template = strings.ReplaceAll(template, placeholder, formatArgument(value))
	}
	return template
}

// formatArgument renders a diagnostic argument: strings double-quoted,
// booleans lowercased, nil as the literal null, arrays compacted with a
// single space after each comma and none inside the brackets.
func formatArgument(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case Kind:
		return v.String()
	case SchemaType:
		names := make([]string, len(v))
		for i, name := range v {
			names[i] = typeDisplay(name)
		}
		return "[" + strings.Join(names, ", ") + "]"
	case []any:
		parts := make([]string, len(v))
		for i, element := range v {
			parts[i] = formatArgument(element)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *Value:
		return formatInstance(v)
	case *rat:
		return formatRat(v)
	}
	return fmt.Sprint(value)
}

// typeDisplay maps a wire type name to its display form.
func typeDisplay(name string) string {
	switch name {
	case TypeNull:
		return "Null"
	case TypeBoolean:
		return "Boolean"
	case TypeInteger:
		return "Integer"
	case TypeNumber:
		return "Number"
	case TypeString:
		return "String"
	case TypeArray:
		return "Array"
	case TypeObject:
		return "Object"
	}
	return name
}

// formatInstance renders an instance value in compact JSON-like form.
func formatInstance(v *Value) string {
	if v == nil {
		return "null"
	}
	switch v.Kind {
	case KindNull:
		return "null"
	case KindBoolean:
		return strconv.FormatBool(v.Bool)
	case KindInteger:
		if v.literal != "" {
			return v.literal
		}
		return strconv.FormatInt(v.Int, 10)
	case KindNumber:
		if v.literal != "" {
			return v.literal
		}
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case KindString, KindDate:
		return strconv.Quote(v.Str)
	case KindArray:
		parts := make([]string, len(v.Elems))
		for i, element := range v.Elems {
			parts[i] = formatInstance(element)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindObject:
		parts := make([]string, 0, len(v.Keys))
		for _, key := range v.Keys {
			parts = append(parts, strconv.Quote(key)+": "+formatInstance(v.Fields[key]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return "null"
}
