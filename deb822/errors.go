package deb822

import "github.com/mbrt/deb822repro/deb822/ast"

// Sentinel errors re-exported from the ast package so callers of this
// package never need to import deb822/ast directly just to match on
// errors.Is (spec §6). See ast.ErrDuplicatedField et al. for the exact
// conditions each one is returned under.
var (
	ErrDuplicatedField         = ast.ErrDuplicatedField
	ErrInvalidFieldSyntax      = ast.ErrInvalidFieldSyntax
	ErrAmbiguousFieldKey       = ast.ErrAmbiguousFieldKey
	ErrUnexpectedIndex         = ast.ErrUnexpectedIndex
	ErrFieldNotFound           = ast.ErrFieldNotFound
	ErrValueNotInList          = ast.ErrValueNotInList
	ErrCommentNewlineForbidden = ast.ErrCommentNewlineForbidden
	ErrMissingTrailingNewline  = ast.ErrMissingTrailingNewline
)

// SyntaxError describes a single ErrorElement found while parsing a file,
// carrying the exact source text the builder could not assign a valid
// structure to.
type SyntaxError = ast.SyntaxError

// DuplicatedField is returned by ParseFile when AcceptDuplicatedFields(false)
// is in effect and the file contains a paragraph with a repeated field
// name.
type DuplicatedField struct {
	// Fields lists the duplicated field names found, in document order.
	Fields []string
}

func (e *DuplicatedField) Error() string {
	s := "deb822: duplicated field"
	if len(e.Fields) != 1 {
		s += "s"
	}
	s += ": "
	for i, f := range e.Fields {
		if i > 0 {
			s += ", "
		}
		s += f
	}
	return s
}
