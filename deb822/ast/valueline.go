package ast

import "strings"

// ValueLineElement is a single physical line's contribution to a field's
// value (spec §4.5/§4.6). The first line of a field has no continuation
// token; every subsequent line does. Leading/trailing whitespace around the
// value body is split out where the tokenizer produced it as a distinct
// token, so mutation code can touch the value without disturbing it.
type ValueLineElement struct {
	comment      *CommentElement
	continuation *Token
	leadingWS    *Token
	content      []Part
	trailingWS   *Token
	newline      *Token

	parts []Part
	parentLink
}

// NewValueLineElement assembles one value line from its optional and
// required parts. comment is only meaningful on a continuation line (a
// comment directly preceding a ValueContinuation token); continuation is
// nil on a field's first value line.
func NewValueLineElement(comment *CommentElement, continuation, leadingWS *Token, content []Part, trailingWS, newline *Token) *ValueLineElement {
	e := &ValueLineElement{
		comment:      comment,
		continuation: continuation,
		leadingWS:    leadingWS,
		content:      content,
		trailingWS:   trailingWS,
		newline:      newline,
	}

	var all []Part
	if comment != nil {
		all = append(all, comment)
	}
	if continuation != nil {
		all = append(all, continuation)
	}
	if leadingWS != nil {
		all = append(all, leadingWS)
	}
	all = append(all, content...)
	if trailingWS != nil {
		all = append(all, trailingWS)
	}
	if newline != nil {
		all = append(all, newline)
	}
	e.parts = attach(e, all...)
	return e
}

func (e *ValueLineElement) Parts() []Part { return e.parts }

func (e *ValueLineElement) Text() string {
	var b strings.Builder
	for _, p := range e.parts {
		b.WriteString(p.Text())
	}
	return b.String()
}

// Comment returns the comment directly preceding this line, or nil.
func (e *ValueLineElement) Comment() *CommentElement { return e.comment }

// ContinuationToken returns the leading ValueContinuation token, or nil on
// a field's first value line.
func (e *ValueLineElement) ContinuationToken() *Token { return e.continuation }

// LeadingWhitespace returns the insignificant whitespace token between the
// field separator/continuation and the value body, or nil if there is none.
func (e *ValueLineElement) LeadingWhitespace() *Token { return e.leadingWS }

// Content returns the value body parts (typically a single Value token, or
// the tokens a list Interpretation produced).
func (e *ValueLineElement) Content() []Part { return e.content }

// ContentText returns the concatenated text of the value body parts only.
func (e *ValueLineElement) ContentText() string {
	var b strings.Builder
	for _, p := range e.content {
		b.WriteString(p.Text())
	}
	return b.String()
}

// ListInterpretationText returns the text a list Interpretation should
// re-tokenize for this line: the value body together with its surrounding
// leading/trailing whitespace, since a list's own separator tokens replace
// whatever whitespace kind the line originally carried. This mirrors
// convert_content_to_text in the Python reference, which folds the same
// three pieces together for exactly the same reason.
func (e *ValueLineElement) ListInterpretationText() string {
	if e.leadingWS == nil && e.trailingWS == nil {
		return e.ContentText()
	}
	var b strings.Builder
	if e.leadingWS != nil {
		b.WriteString(e.leadingWS.Text())
	}
	b.WriteString(e.ContentText())
	if e.trailingWS != nil {
		b.WriteString(e.trailingWS.Text())
	}
	return b.String()
}

// TrailingWhitespace returns the insignificant whitespace token trailing the
// value body, or nil if there is none.
func (e *ValueLineElement) TrailingWhitespace() *Token { return e.trailingWS }

// Newline returns this line's NewlineAfterValue token, or nil if this is the
// file's last line and it has no trailing newline.
func (e *ValueLineElement) Newline() *Token { return e.newline }

// AddNewlineIfMissing appends a NewlineAfterValue token if this line does
// not already end on one, and reports whether it did so.
func (e *ValueLineElement) AddNewlineIfMissing() bool {
	if e.newline != nil {
		return false
	}
	nl := NewlineToken()
	e.parts = attach(e, append(append([]Part{}, e.parts...), nl)...)
	e.newline = nl
	return true
}

// SetContent replaces the value body parts, leaving comment, continuation
// and surrounding whitespace untouched.
func (e *ValueLineElement) SetContent(content []Part) {
	for _, p := range e.content {
		p.clearParentIfParent(e)
	}
	e.content = content

	var all []Part
	if e.comment != nil {
		all = append(all, e.comment)
	}
	if e.continuation != nil {
		all = append(all, e.continuation)
	}
	if e.leadingWS != nil {
		all = append(all, e.leadingWS)
	}
	all = append(all, content...)
	if e.trailingWS != nil {
		all = append(all, e.trailingWS)
	}
	if e.newline != nil {
		all = append(all, e.newline)
	}
	e.parts = attach(e, all...)
}
