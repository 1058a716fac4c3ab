package ast

import (
	"fmt"
	"strings"

	"github.com/mbrt/deb822repro/deb822/token"
)

// Token is an atomic, immutable lexical unit of a deb822 file (C4). Tokens
// are created by the tokenizer and by the mutation API's re-parse path and
// are never mutated afterwards; concatenating the Text() of every token in
// document order always reproduces the file's current text (invariant 1,
// spec §3).
type Token struct {
	parentLink
	kind  token.Kind
	text  string
	field token.FieldName
}

// NewToken builds a token of the given kind and text, validating it against
// the token invariants in spec §3. It panics on violation: these are parser
// bugs rather than recoverable runtime conditions, since tokens only ever
// come from the tokenizer or from re-parsing a freshly serialized fragment.
func NewToken(kind token.Kind, text string) *Token {
	validateTokenText(kind, text)
	return &Token{kind: kind, text: text}
}

// NewFieldNameToken builds a FieldName-kind token wrapping an interned field
// name; Text() and FieldName() both reflect name's original casing.
func NewFieldNameToken(name token.FieldName) *Token {
	validateTokenText(token.FieldName, name.String())
	return &Token{kind: token.FieldName, text: name.String(), field: name}
}

func validateTokenText(kind token.Kind, text string) {
	if text == "" {
		panic("deb822/ast: tokens must have non-empty text")
	}
	if !strings.Contains(text, "\n") {
		return
	}
	singleLine := kind.IsComment() || kind == token.Error
	if !singleLine && !kind.IsWhitespace() {
		panic(fmt.Sprintf("deb822/ast: only whitespace, error and comment tokens may contain newlines (got %s)", kind))
	}
	if !strings.HasSuffix(text, "\n") {
		panic(fmt.Sprintf("deb822/ast: a token containing a newline must end on it (got %s %q)", kind, text))
	}
	if singleLine && strings.Contains(text[:len(text)-1], "\n") {
		panic(fmt.Sprintf("deb822/ast: comment/error tokens must not embed a newline (got %s %q)", kind, text))
	}
}

// Kind reports the token's lexical class.
func (t *Token) Kind() token.Kind { return t.kind }

// Text returns the token's exact source text.
func (t *Token) Text() string { return t.text }

// FieldName returns the interned field name for a FieldName-kind token, or
// the zero FieldName otherwise.
func (t *Token) FieldName() token.FieldName { return t.field }

// IsWhitespace reports whether the token's kind is any whitespace variant.
func (t *Token) IsWhitespace() bool { return t.kind.IsWhitespace() }

// IsComment reports whether this is a Comment token.
func (t *Token) IsComment() bool { return t.kind.IsComment() }

// EndsWithNewline reports whether the token's text ends on "\n".
func (t *Token) EndsWithNewline() bool { return strings.HasSuffix(t.text, "\n") }

// NewlineToken returns a new NewlineAfterValue token with its canonical
// text "\n"; each call returns a distinct token.
func NewlineToken() *Token { return NewToken(token.NewlineAfterValue, "\n") }

// ContinuationToken returns a new ValueContinuation token (" ").
func ContinuationToken() *Token { return NewToken(token.ValueContinuation, " ") }

// FieldSeparatorToken returns a new FieldSeparator (":") token.
func FieldSeparatorToken() *Token { return NewToken(token.FieldSeparator, ":") }

// CommaToken returns a new Comma (",") token.
func CommaToken() *Token { return NewToken(token.Comma, ",") }

// PipeToken returns a new Pipe ("|") token.
func PipeToken() *Token { return NewToken(token.Pipe, "|") }

// SpaceToken returns a single-space Whitespace token.
func SpaceToken() *Token { return NewToken(token.Whitespace, " ") }
