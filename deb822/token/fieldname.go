// Package token defines the atomic lexical units of a deb822 file and the
// case-insensitive interned string used for field names.
package token

import "strings"

// FieldName is a case-insensitive interned field name. Equality and hashing
// are defined over the lower-cased form; the original casing is retained for
// serialization.
//
// Construction is idempotent: two FieldName values built from strings that
// are equal when lower-cased compare equal and share the same lowered form.
type FieldName struct {
	original string
	lower    string
}

// NewFieldName interns text as a field name, preserving its original casing.
func NewFieldName(text string) FieldName {
	return FieldName{original: text, lower: strings.ToLower(text)}
}

// String returns the original-cased form, as it should be serialized.
func (f FieldName) String() string {
	return f.original
}

// Lower returns the lower-cased form used for equality and hashing.
func (f FieldName) Lower() string {
	return f.lower
}

// Equal reports whether two field names are the same field, ignoring case.
func (f FieldName) Equal(other FieldName) bool {
	return f.lower == other.lower
}

// IsZero reports whether f is the zero value (no field name set).
func (f FieldName) IsZero() bool {
	return f.original == "" && f.lower == ""
}
