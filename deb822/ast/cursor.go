package ast

// cursor is a small index-based lookahead buffer over a materialized []Part,
// standing in for the Python implementation's _BufferingIterator. Builder
// passes need only ever peek a couple of items ahead, and deb822 documents
// are small enough that holding the whole pass's input in memory at once is
// simpler and just as correct as threading a true lazy generator through
// five stages.
type cursor struct {
	parts []Part
	pos   int
}

func newCursor(parts []Part) *cursor { return &cursor{parts: parts} }

func (c *cursor) hasNext() bool { return c.pos < len(c.parts) }

func (c *cursor) next() Part {
	p := c.parts[c.pos]
	c.pos++
	return p
}

// peek returns the next unconsumed part without consuming it, or nil if
// there isn't one.
func (c *cursor) peek() Part { return c.peekAt(1) }

// peekAt returns the part n positions ahead (1 = next), or nil past the end.
func (c *cursor) peekAt(n int) Part {
	idx := c.pos + n - 1
	if idx < 0 || idx >= len(c.parts) {
		return nil
	}
	return c.parts[idx]
}
