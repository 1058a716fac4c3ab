package ast

// ErrorElement bundles one or more consecutive parts the builder could not
// assign a valid structure to: stray Error tokens, or a FieldName token
// whose following tokens don't form a well-formed "Name: value" pair (spec
// §4.5, §6). Its Text() still reproduces the offending bytes exactly, so a
// file containing one still round-trips losslessly.
type ErrorElement struct {
	base
}

// NewErrorElement bundles the given parts into a single ErrorElement.
func NewErrorElement(parts ...Part) *ErrorElement {
	if len(parts) == 0 {
		panic("deb822/ast: an ErrorElement must have at least one part")
	}
	e := &ErrorElement{}
	e.parts = attach(e, parts...)
	return e
}
