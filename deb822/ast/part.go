// Package ast defines the token and element types that make up a parsed
// deb822 document: the atomic Token leaf (C4), the composite Element tree
// built over it by the builder (C6), and the two paragraph representations
// (C7) together with their mutation API (C8). Concatenating the Text() of
// every token in document order always reproduces the file's current text
// (invariant 1 of spec §3).
package ast

import "reflect"

// Part is anything that can be a child of an Element: either a *Token or an
// Element itself. Every Part has at most one parent at a time.
type Part interface {
	// Text returns this part's contribution to the document text.
	Text() string
	// Parent returns the Element that currently owns this part, or nil if
	// it is the root or has been detached.
	Parent() Element

	setParent(Element)
	clearParentIfParent(Element)
}

// Element is a composite Part: an ordered, owned list of child Parts.
type Element interface {
	Part
	// Parts returns the element's children in document order. Callers must
	// not mutate the returned slice.
	Parts() []Part
}

// parentLink is embedded by every concrete Token/Element to implement the
// weak parent back-reference described in spec §9: it exists purely for
// navigation and integrity checks, and never keeps the parent alive beyond
// what Go's ordinary garbage collector already would.
type parentLink struct {
	parent Element
}

func (p *parentLink) Parent() Element { return p.parent }

func (p *parentLink) setParent(e Element) { p.parent = e }

func (p *parentLink) clearParentIfParent(e Element) {
	if p.parent == e {
		p.parent = nil
	}
}

// base is embedded by every concrete Element. It owns the child list and
// supplies the Parts/Text/Parent machinery; concrete types add their own
// typed accessors on top.
type base struct {
	parentLink
	parts []Part
}

func (b *base) Parts() []Part {
	return b.parts
}

func (b *base) Text() string {
	var out []byte
	for _, p := range b.parts {
		out = append(out, p.Text()...)
	}
	return string(out)
}

// attach sets self as the parent of every non-nil part, detaching each from
// any previous parent first, and returns the filtered, ordered part list.
func attach(self Element, parts ...Part) []Part {
	out := make([]Part, 0, len(parts))
	for _, p := range parts {
		if p == nil || isNilPart(p) {
			continue
		}
		if old := p.Parent(); old != nil {
			p.clearParentIfParent(old)
		}
		p.setParent(self)
		out = append(out, p)
	}
	return out
}

// FindAll walks p and its descendants in document order, collecting every
// node assignable to T. T is typically a concrete *Token or *Element type;
// a FileElement's tokens are FindAll[*Token](file), its error elements
// FindAll[*ErrorElement](file).
func FindAll[T Part](p Part) []T {
	var out []T
	if v, ok := p.(T); ok {
		out = append(out, v)
	}
	if el, ok := p.(Element); ok {
		for _, c := range el.Parts() {
			out = append(out, FindAll[T](c)...)
		}
	}
	return out
}

// isNilPart guards against a typed-nil *Token/*Element being passed through
// an interface value, which would otherwise compare non-nil to `nil`. Uses
// reflection rather than an enumerated type switch so it stays correct as
// new Element variants (paragraph representations, etc.) are added.
func isNilPart(p Part) bool {
	v := reflect.ValueOf(p)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}
