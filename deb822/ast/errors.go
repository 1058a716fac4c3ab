package ast

import "errors"

// Sentinel errors forming the spec's enumerated error surface (spec §6).
// Callers should match these with errors.Is, since the concrete errors
// returned always wrap one of these with field-specific detail.
var (
	// ErrDuplicatedField names the condition of a field occurring more than
	// once in a paragraph. No function in this package returns it: setting
	// an existing field replaces it, and ParseFile reports duplicates with
	// the deb822 package's *DuplicatedField error.
	ErrDuplicatedField = errors.New("deb822: field already exists")
	// ErrInvalidFieldSyntax is returned when a raw field value or name
	// fails the syntax checks the mutation API enforces before building a
	// replacement fragment.
	ErrInvalidFieldSyntax = errors.New("deb822: invalid field syntax")
	// ErrAmbiguousFieldKey is returned by an InvalidParagraphElement when a
	// bare (non-indexed) key matches more than one occurrence of a field.
	ErrAmbiguousFieldKey = errors.New("deb822: field name is ambiguous, use an indexed key")
	// ErrUnexpectedIndex is returned when an indexed key is used against a
	// ValidParagraphElement, whose fields are always unique.
	ErrUnexpectedIndex = errors.New("deb822: field has a unique key and cannot be indexed")
	// ErrFieldNotFound is returned when a key names a field (or an index of
	// a field) that is not present in the paragraph.
	ErrFieldNotFound = errors.New("deb822: field not found")
	// ErrValueNotInList is returned when a list Interpretation is asked to
	// remove or replace a value that isn't present.
	ErrValueNotInList = errors.New("deb822: value not present in field's list")
	// ErrCommentNewlineForbidden is returned when a caller-supplied comment
	// line contains an embedded newline.
	ErrCommentNewlineForbidden = errors.New("deb822: comment text must not contain embedded newlines")
	// ErrMissingTrailingNewline is returned when a caller-supplied raw
	// field value is missing its mandatory trailing newline; such a value is
	// always rejected, never completed.
	ErrMissingTrailingNewline = errors.New("deb822: raw field value must end with a newline")
)
