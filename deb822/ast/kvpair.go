package ast

import (
	"fmt"

	"github.com/mbrt/deb822repro/deb822/token"
)

// KeyValuePairElement is one "Field: value" entry, plus the comment
// directly above it, if any (spec §4.5).
type KeyValuePairElement struct {
	comment   *CommentElement
	nameToken *Token
	sepToken  *Token
	value     *ValueElement

	parts []Part
	parentLink
}

// NewKeyValuePairElement builds a key-value pair from its parts. nameToken
// must be a FieldName-kind token and sepToken a FieldSeparator-kind token.
func NewKeyValuePairElement(comment *CommentElement, nameToken, sepToken *Token, value *ValueElement) *KeyValuePairElement {
	if nameToken.Kind() != token.FieldName {
		panic(fmt.Sprintf("deb822/ast: KeyValuePairElement name token must be a FieldName token (got %s)", nameToken.Kind()))
	}
	if sepToken.Kind() != token.FieldSeparator {
		panic(fmt.Sprintf("deb822/ast: KeyValuePairElement separator token must be a FieldSeparator token (got %s)", sepToken.Kind()))
	}
	e := &KeyValuePairElement{comment: comment, nameToken: nameToken, sepToken: sepToken, value: value}
	e.relink()
	return e
}

func (e *KeyValuePairElement) relink() {
	var all []Part
	if e.comment != nil {
		all = append(all, e.comment)
	}
	all = append(all, e.nameToken, e.sepToken, e.value)
	e.parts = attach(e, all...)
}

func (e *KeyValuePairElement) Parts() []Part { return e.parts }

func (e *KeyValuePairElement) Text() string {
	var out []byte
	for _, p := range e.parts {
		out = append(out, p.Text()...)
	}
	return string(out)
}

// FieldName returns the interned, case-preserving field name.
func (e *KeyValuePairElement) FieldName() token.FieldName { return e.nameToken.FieldName() }

// FieldNameToken returns the underlying FieldName token.
func (e *KeyValuePairElement) FieldNameToken() *Token { return e.nameToken }

// SeparatorToken returns the ":" token between name and value.
func (e *KeyValuePairElement) SeparatorToken() *Token { return e.sepToken }

// Value returns the field's value element.
func (e *KeyValuePairElement) Value() *ValueElement { return e.value }

// SetValue replaces the field's value, detaching the old one.
func (e *KeyValuePairElement) SetValue(v *ValueElement) {
	if e.value != nil {
		e.value.clearParentIfParent(e)
	}
	e.value = v
	e.relink()
}

// Comment returns the field's preceding comment, or nil.
func (e *KeyValuePairElement) Comment() *CommentElement { return e.comment }

// SetComment replaces the field's comment. Pass nil to remove it.
func (e *KeyValuePairElement) SetComment(c *CommentElement) {
	if e.comment != nil {
		e.comment.clearParentIfParent(e)
	}
	e.comment = c
	e.relink()
}
