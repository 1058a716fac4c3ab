package ast

// CommentElement is one or more consecutive Comment tokens (spec §3). A
// CommentElement's associativity — whether it belongs to a KeyValuePair's
// field comment, a ValueLineElement, or is a free comment of the
// FileElement — is decided by the builder at the moment it is consumed
// (spec §4.5); the element itself carries no opinion about its owner.
type CommentElement struct {
	base
}

// NewCommentElement merges one or more Comment tokens into a CommentElement.
func NewCommentElement(tokens ...*Token) *CommentElement {
	if len(tokens) == 0 {
		panic("deb822/ast: a CommentElement must have at least one token")
	}
	e := &CommentElement{}
	parts := make([]Part, len(tokens))
	for i, t := range tokens {
		parts[i] = t
	}
	e.parts = attach(e, parts...)
	return e
}

// Tokens returns the element's comment tokens in order.
func (e *CommentElement) Tokens() []*Token {
	out := make([]*Token, len(e.parts))
	for i, p := range e.parts {
		out[i] = p.(*Token)
	}
	return out
}

// Len returns the number of comment lines in this element.
func (e *CommentElement) Len() int { return len(e.parts) }
