package ast

import (
	"github.com/mbrt/deb822repro/deb822/token"
	"github.com/mbrt/deb822repro/deb822/tokenize"
)

// Build runs the five-stage element-tree construction over a flat token
// stream (spec §4.5, C6): merge comment runs, fold value lines out of the
// token stream, merge value lines into values, fold key-value pairs out of
// the stream, and finally merge runs of key-value pairs into paragraphs and
// runs of stray error tokens into error elements.
//
// Each stage is a straightforward pass over a materialized []Part rather
// than a chain of lazy generators; see cursor.go for why.
func Build(items []tokenize.Item) *FileElement {
	parts := materializeTokens(items)
	parts = combineRuns(parts, matchTokenKind(token.Comment), buildCommentElement)
	parts = buildValueLines(parts)
	parts = combineRuns(parts, matchValueLine, buildValueElement)
	parts = buildKeyValuePairs(parts)
	parts = combineRuns(parts, matchKVPair, buildParagraph)
	parts = combineRuns(parts, matchTokenKind(token.Error), buildErrorElement)
	return NewFileElement(parts)
}

func materializeTokens(items []tokenize.Item) []Part {
	out := make([]Part, len(items))
	for i, it := range items {
		if it.Kind == token.FieldName {
			out[i] = NewFieldNameToken(it.Field)
		} else {
			out[i] = NewToken(it.Kind, it.Text)
		}
	}
	return out
}

// combineRuns folds maximal consecutive runs of parts matched by match into
// a single replacement part built by build, leaving everything else as-is.
func combineRuns[T any](parts []Part, match func(Part) (T, bool), build func([]T) Part) []Part {
	var out []Part
	var run []T
	flush := func() {
		if len(run) > 0 {
			out = append(out, build(run))
			run = nil
		}
	}
	for _, p := range parts {
		if t, ok := match(p); ok {
			run = append(run, t)
			continue
		}
		flush()
		out = append(out, p)
	}
	flush()
	return out
}

func matchTokenKind(kind token.Kind) func(Part) (*Token, bool) {
	return func(p Part) (*Token, bool) {
		t, ok := p.(*Token)
		if !ok || t.Kind() != kind {
			return nil, false
		}
		return t, true
	}
}

func matchValueLine(p Part) (*ValueLineElement, bool) {
	v, ok := p.(*ValueLineElement)
	return v, ok
}

func matchKVPair(p Part) (*KeyValuePairElement, bool) {
	v, ok := p.(*KeyValuePairElement)
	return v, ok
}

func buildCommentElement(toks []*Token) Part { return NewCommentElement(toks...) }

func buildValueElement(lines []*ValueLineElement) Part { return NewValueElement(lines...) }

func buildErrorElement(toks []*Token) Part {
	parts := make([]Part, len(toks))
	for i, t := range toks {
		parts[i] = t
	}
	return NewErrorElement(parts...)
}

func buildParagraph(kvs []*KeyValuePairElement) Part {
	p, err := FromKVPairs(kvs)
	if err != nil {
		// combineRuns only ever calls build with a non-empty run, so the
		// only failure mode FromKVPairs has (an empty slice) is unreachable
		// here.
		panic(err)
	}
	return p
}

// isEndOfLine reports whether p is the NewlineAfterValue token that
// terminates a value line.
func isEndOfLine(p Part) bool {
	t, ok := p.(*Token)
	return ok && t.Kind() == token.NewlineAfterValue
}

// buildValueLines folds FieldSeparator/ValueContinuation-initiated runs of
// tokens into ValueLineElements, passing everything else through unchanged.
// Mirrors _build_value_line in the Python reference implementation.
func buildValueLines(parts []Part) []Part {
	c := newCursor(parts)
	var out []Part
	for c.hasNext() {
		item := c.next()

		var comment *CommentElement
		var continuation *Token
		startOfValue := false

		switch v := item.(type) {
		case *CommentElement:
			if next, ok := c.peek().(*Token); ok && next.Kind() == token.ValueContinuation {
				comment = v
				continuation = c.next().(*Token)
				startOfValue = true
				item = nil
			}
		case *Token:
			switch v.Kind() {
			case token.ValueContinuation:
				continuation = v
				startOfValue = true
				item = nil
			case token.FieldSeparator:
				startOfValue = true
			}
		}

		if item != nil {
			out = append(out, item)
		}
		if !startOfValue {
			continue
		}

		var body []Part
		for c.hasNext() && !isEndOfLine(c.peek()) {
			body = append(body, c.next())
		}
		var eol *Token
		if c.hasNext() && isEndOfLine(c.peek()) {
			eol = c.next().(*Token)
		}

		var leadingWS, trailingWS *Token
		if len(body) > 0 {
			if t, ok := body[len(body)-1].(*Token); ok && t.IsWhitespace() {
				trailingWS = t
				body = body[:len(body)-1]
			}
		}
		if len(body) > 0 {
			if t, ok := body[0].(*Token); ok && t.IsWhitespace() {
				leadingWS = t
				body = body[1:]
			}
		}

		out = append(out, NewValueLineElement(comment, continuation, leadingWS, body, trailingWS, eol))
	}
	return out
}

// buildKeyValuePairs folds FieldName-initiated (name, separator, value)
// triples into KeyValuePairElements, and bundles anything that doesn't fit
// that shape into an ErrorElement. Mirrors _build_field_with_value.
func buildKeyValuePairs(parts []Part) []Part {
	c := newCursor(parts)
	var out []Part
	for c.hasNext() {
		item := c.next()

		var comment *CommentElement
		startOfField := false

		switch v := item.(type) {
		case *CommentElement:
			if next, ok := c.peek().(*Token); ok && next.Kind() == token.FieldName {
				comment = v
				item = c.next()
				startOfField = true
			}
		case *Token:
			if v.Kind() == token.FieldName {
				startOfField = true
			}
		}

		if !startOfField {
			out = append(out, item)
			continue
		}

		fieldTok := item.(*Token)
		sepPart := c.peekAt(1)
		valPart := c.peekAt(2)

		sepTok, sepOK := sepPart.(*Token)
		valElem, valOK := valPart.(*ValueElement)
		if sepOK && sepTok.Kind() == token.FieldSeparator && valOK {
			c.next()
			c.next()
			out = append(out, NewKeyValuePairElement(comment, fieldTok, sepTok, valElem))
			continue
		}

		errParts := []Part{}
		if comment != nil {
			errParts = append(errParts, comment)
		}
		errParts = append(errParts, fieldTok)
		for c.hasNext() && !isEndOfLine(c.peek()) {
			errParts = append(errParts, c.next())
		}
		if c.hasNext() && isEndOfLine(c.peek()) {
			errParts = append(errParts, c.next())
		}
		out = append(out, NewErrorElement(errParts...))
	}
	return out
}
