package jschema

import (
	"errors"
	"fmt"
)

// ErrorKind identifies a structural failure raised by the reader, the
// collapse engine, or reference resolution during validation. Structural
// failures terminate the operation; they are disjoint from the validation
// diagnostics accumulated by a Validator.
type ErrorKind int

const (
	// MalformedJson is raised when the input is not valid JSON text.
	MalformedJson ErrorKind = iota + 1

	// TypeMismatch is raised when a schema keyword holds the wrong JSON
	// type, for example "title": 123.
	TypeMismatch

	// InvalidReferenceForm is raised when a fragment reference does not
	// target a definition, for example "#/foo/bar".
	InvalidReferenceForm

	// UnsupportedReferenceForm is raised by collapse when a reference is
	// not a same-document fragment.
	UnsupportedReferenceForm

	// DefinitionNotFound is raised when a fragment reference names a
	// definition that does not exist in the root schema.
	DefinitionNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedJson:
		return "MalformedJson"
	case TypeMismatch:
		return "TypeMismatch"
	case InvalidReferenceForm:
		return "InvalidReferenceForm"
	case UnsupportedReferenceForm:
		return "UnsupportedReferenceForm"
	case DefinitionNotFound:
		return "DefinitionNotFound"
	}
	return "Unknown"
}

// Sentinel errors for matching with errors.Is. Every SchemaError unwraps to
// the sentinel of its kind.
var (
	ErrMalformedJson            = errors.New("malformed json")
	ErrTypeMismatch             = errors.New("schema keyword has wrong json type")
	ErrInvalidReferenceForm     = errors.New("fragment reference does not target a definition")
	ErrUnsupportedReferenceForm = errors.New("unsupported reference form")
	ErrDefinitionNotFound       = errors.New("definition not found")
)

// SchemaError is the single failure value of the structural error channel.
// Kind selects the failure class and Arguments carries the offending
// fragment, keyword, or definition name.
type SchemaError struct {
	Kind      ErrorKind
	Arguments []string
}

func newSchemaError(kind ErrorKind, arguments ...string) *SchemaError {
	return &SchemaError{Kind: kind, Arguments: arguments}
}

func (e *SchemaError) Error() string {
	msg := e.Unwrap().Error()
	if len(e.Arguments) == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, msg, formatArguments(e.Arguments))
}

// Unwrap maps the error to its kind sentinel so callers can match with
// errors.Is(err, ErrDefinitionNotFound) and friends.
func (e *SchemaError) Unwrap() error {
	switch e.Kind {
	case MalformedJson:
		return ErrMalformedJson
	case TypeMismatch:
		return ErrTypeMismatch
	case InvalidReferenceForm:
		return ErrInvalidReferenceForm
	case UnsupportedReferenceForm:
		return ErrUnsupportedReferenceForm
	case DefinitionNotFound:
		return ErrDefinitionNotFound
	}
	return errors.New("unknown schema error")
}

func formatArguments(arguments []string) string {
	out := ""
	for i, a := range arguments {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%q", a)
	}
	return out
}
