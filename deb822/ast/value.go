package ast

// ValueElement is the ordered sequence of ValueLineElements that make up one
// field's value, including any embedded per-line comments (spec §4.5).
type ValueElement struct {
	base
}

// NewValueElement combines one or more value lines into a ValueElement. A
// field always has at least one value line, even when the value itself is
// empty (e.g. "Field:\n").
func NewValueElement(lines ...*ValueLineElement) *ValueElement {
	if len(lines) == 0 {
		panic("deb822/ast: a ValueElement must have at least one line")
	}
	e := &ValueElement{}
	parts := make([]Part, len(lines))
	for i, l := range lines {
		parts[i] = l
	}
	e.parts = attach(e, parts...)
	return e
}

// Lines returns the value's physical lines in order.
func (e *ValueElement) Lines() []*ValueLineElement {
	out := make([]*ValueLineElement, len(e.parts))
	for i, p := range e.parts {
		out[i] = p.(*ValueLineElement)
	}
	return out
}

// AddFinalNewlineIfMissing ensures the value's last line ends on a newline,
// which mutation code must do before appending another field after it.
func (e *ValueElement) AddFinalNewlineIfMissing() bool {
	lines := e.Lines()
	last := lines[len(lines)-1]
	return last.AddNewlineIfMissing()
}
