package jschema

import (
	"strings"

	"github.com/goccy/go-json"
)

// definitionsFragmentPrefix is the only fragment shape the toolkit resolves.
const definitionsFragmentPrefix = "#/definitions/"

// UriOrFragment is a reference value: an absolute URI, a relative URI, or a
// bare fragment of the form "#/definitions/<name>". Equality is string-exact
// and the fragment flag is part of identity.
type UriOrFragment struct {
	value      string
	isFragment bool
}

// NewUriOrFragment constructs a reference from its string form. A leading
// '#' marks a fragment-only reference.
func NewUriOrFragment(value string) *UriOrFragment {
	return &UriOrFragment{
		value:      value,
		isFragment: strings.HasPrefix(value, "#"),
	}
}

// String returns the underlying URI-like string.
func (u *UriOrFragment) String() string {
	return u.value
}

// IsFragment reports whether the reference is a fragment-only reference.
func (u *UriOrFragment) IsFragment() bool {
	return u.isFragment
}

// GetDefinitionName returns the trailing segment after "#/definitions/".
// It fails with InvalidReferenceForm when the fragment does not begin with
// that prefix.
func (u *UriOrFragment) GetDefinitionName() (string, error) {
	if !strings.HasPrefix(u.value, definitionsFragmentPrefix) {
		return "", newSchemaError(InvalidReferenceForm, u.value)
	}
	return u.value[len(definitionsFragmentPrefix):], nil
}

// Equals reports value equality with another reference.
func (u *UriOrFragment) Equals(other *UriOrFragment) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.value == other.value && u.isFragment == other.isFragment
}

// Clone returns an independent copy.
func (u *UriOrFragment) Clone() *UriOrFragment {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

// MarshalJSON serializes the reference as a JSON string.
func (u *UriOrFragment) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.value)
}

// UnmarshalJSON deserializes the reference from a JSON string. A fragment
// that does not target a definition is rejected with InvalidReferenceForm.
func (u *UriOrFragment) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return newSchemaError(TypeMismatch, "$ref")
	}
	u.value = value
	u.isFragment = strings.HasPrefix(value, "#")
	if u.isFragment && !strings.HasPrefix(value, definitionsFragmentPrefix) {
		return newSchemaError(InvalidReferenceForm, value)
	}
	return nil
}
