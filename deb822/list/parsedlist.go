package list

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mbrt/deb822repro/deb822/ast"
	"github.com/mbrt/deb822repro/deb822/llist"
	"github.com/mbrt/deb822repro/deb822/token"
)

// ParsedTokenList is a field's value re-tokenized under an Interpretation: an
// editable sequence of values, separators, comments and whitespace that
// knows how to serialize itself back and graft the result into the owning
// KeyValuePairElement on Commit (spec §4.8, C9).
//
// The list is a scratch working copy: every Part it holds is either a clone
// of something from the original tree (comments, continuation and newline
// tokens) or a token freshly built by an Interpretation. Nothing here is
// ever spliced back into the original tree directly — Commit always goes
// through the same tokenize-and-build pipeline the rest of the mutation API
// uses, so the usual invariants get re-validated rather than assumed.
type ParsedTokenList struct {
	kv       *ast.KeyValuePairElement
	interp   Interpretation
	list     *llist.List[ast.Part]
	reformat bool
	changed  bool
}

// New builds a ParsedTokenList over kv's current value under interp.
func New(kv *ast.KeyValuePairElement, interp Interpretation) *ParsedTokenList {
	l := &ParsedTokenList{kv: kv, interp: interp, list: llist.New[ast.Part]()}
	for _, vl := range kv.Value().Lines() {
		if c := vl.Comment(); c != nil {
			l.list.Append(ast.Part(cloneComment(c)))
		}
		if ct := vl.ContinuationToken(); ct != nil {
			l.list.Append(ast.Part(ast.NewToken(ct.Kind(), ct.Text())))
		}
		text := vl.ListInterpretationText()
		if isWhitespaceOnly(text) {
			if text != "" {
				l.list.Append(ast.Part(ast.NewToken(token.Whitespace, text)))
			}
		} else {
			for _, it := range interp.tokenize(text) {
				l.list.Append(ast.Part(ast.NewToken(it.Kind, it.Text)))
			}
		}
		if nl := vl.Newline(); nl != nil {
			l.list.Append(ast.Part(ast.NewToken(nl.Kind(), nl.Text())))
		}
	}
	// A trailing newline is dropped so Append lands new values after the
	// last one instead of starting a fresh, empty continuation line.
	if tail := l.list.Tail(); tail != nil {
		if t, ok := tail.Value.(*ast.Token); ok && t.Kind() == token.NewlineAfterValue {
			l.list.Remove(tail)
		}
	}
	return l
}

func cloneComment(c *ast.CommentElement) *ast.CommentElement {
	toks := c.Tokens()
	cloned := make([]*ast.Token, len(toks))
	for i, t := range toks {
		cloned[i] = ast.NewToken(t.Kind(), t.Text())
	}
	return ast.NewCommentElement(cloned...)
}

// Values returns the list's current values, in order, skipping separators,
// whitespace and comments.
func (l *ParsedTokenList) Values() []string {
	var out []string
	for n := l.list.Head(); n != nil; n = n.Next() {
		if t, ok := n.Value.(*ast.Token); ok && t.Kind() == l.interp.ValueKind {
			out = append(out, t.Text())
		}
	}
	return out
}

// Len returns the number of values currently in the list.
func (l *ParsedTokenList) Len() int { return len(l.Values()) }

// ReformatWhenFinished enables reformatting the field on Commit (spec
// §4.8): one value per continuation line, indented to line up after the
// field name, with the interpretation's default separator inserted before
// each newline.
func (l *ParsedTokenList) ReformatWhenFinished() { l.reformat = true }

// NoReformattingWhenFinished disables reformatting: Commit serializes
// exactly the token sequence currently in the list, verbatim.
func (l *ParsedTokenList) NoReformattingWhenFinished() { l.reformat = false }

// Append adds value at the end of the list, inserting the interpretation's
// default separator first if the list already ends on a value.
func (l *ParsedTokenList) Append(value string) error {
	if value == "" {
		return fmt.Errorf("deb822/list: cannot append an empty value")
	}
	l.appendValueToken(ast.NewToken(l.interp.ValueKind, value))
	return nil
}

// AppendComment appends a free-standing comment to the list, on its own
// line. text is formatted the same way a field comment is: "# " prefixed,
// newline terminated.
func (l *ParsedTokenList) AppendComment(text string) error {
	formatted, err := formatListComment(text)
	if err != nil {
		return err
	}
	l.appendNewlineIfNeeded()
	l.appendContinuationIfNecessary()
	l.list.Append(ast.Part(ast.NewCommentElement(ast.NewToken(token.Comment, formatted))))
	l.changed = true
	return nil
}

// Replace swaps the first occurrence of orig for new, leaving its position,
// separators and any attached comment untouched.
func (l *ParsedTokenList) Replace(orig, new string) error {
	for n := l.list.Head(); n != nil; n = n.Next() {
		if t, ok := n.Value.(*ast.Token); ok && t.Kind() == l.interp.ValueKind && t.Text() == orig {
			n.Value = ast.Part(ast.NewToken(l.interp.ValueKind, new))
			l.changed = true
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ast.ErrValueNotInList, orig)
}

// Remove deletes the first occurrence of value together with everything
// between it and one neighbouring value: the previous value when no comment
// lies between the two, else the next value when no comment lies between
// those. When comments lie on both sides, the ones towards the previous
// value are removed with it (towards the next value if there is no previous
// one). Removing the only value clears the whole list, comments included.
func (l *ParsedTokenList) Remove(value string) error {
	target := l.findValueNode(value)
	if target == nil {
		return fmt.Errorf("%w: %q", ast.ErrValueNotInList, value)
	}
	l.changed = true

	leftValue, commentBeforeLeft := l.nearestValue(target, false)
	rightValue, commentBeforeRight := l.nearestValue(target, true)

	if leftValue == nil && rightValue == nil {
		l.list.Clear()
		return nil
	}

	var keepLeft, keepRight *llist.Node[ast.Part]
	switch {
	case leftValue != nil && !commentBeforeLeft:
		keepLeft, keepRight = leftValue, target.Next()
	case rightValue != nil && !commentBeforeRight:
		keepLeft, keepRight = target.Prev(), rightValue
	case leftValue != nil:
		keepLeft, keepRight = leftValue, target.Next()
	default:
		keepLeft, keepRight = target.Prev(), rightValue
	}

	removeBetween(l.list, keepLeft, keepRight)
	return nil
}

func (l *ParsedTokenList) findValueNode(value string) *llist.Node[ast.Part] {
	for n := l.list.Head(); n != nil; n = n.Next() {
		if t, ok := n.Value.(*ast.Token); ok && t.Kind() == l.interp.ValueKind && t.Text() == value {
			return n
		}
	}
	return nil
}

// nearestValue walks away from target (forward if next is true, backward
// otherwise) and returns the nearest value node on that side, plus whether
// a comment sits strictly between target and that node.
func (l *ParsedTokenList) nearestValue(target *llist.Node[ast.Part], next bool) (*llist.Node[ast.Part], bool) {
	sawComment := false
	step := func(n *llist.Node[ast.Part]) *llist.Node[ast.Part] {
		if next {
			return n.Next()
		}
		return n.Prev()
	}
	for n := step(target); n != nil; n = step(n) {
		switch v := n.Value.(type) {
		case *ast.CommentElement:
			sawComment = true
		case *ast.Token:
			if v.Kind() == l.interp.ValueKind {
				return n, sawComment
			}
		}
	}
	return nil, sawComment
}

// removeBetween deletes every node strictly between keepLeft and keepRight
// (both exclusive; either may be nil to mean "the list's edge").
func removeBetween(l *llist.List[ast.Part], keepLeft, keepRight *llist.Node[ast.Part]) {
	start := l.Head()
	if keepLeft != nil {
		start = keepLeft.Next()
	}
	for n := start; n != nil && n != keepRight; {
		next := n.Next()
		l.Remove(n)
		n = next
	}
}

// Sort stably reorders the list's values, preserving a comment against the
// value it was attached to. less defaults to a byte-wise string comparison
// when nil.
func (l *ParsedTokenList) Sort(less func(a, b string) bool) {
	type item struct {
		value    *ast.Token
		comments []*ast.CommentElement
	}

	var items []item
	var pending []*ast.CommentElement
	for n := l.list.Head(); n != nil; n = n.Next() {
		switch v := n.Value.(type) {
		case *ast.CommentElement:
			pending = append(pending, v)
		case *ast.Token:
			if v.Kind() == l.interp.ValueKind {
				items = append(items, item{value: v, comments: pending})
				pending = nil
			}
		}
	}
	if len(items) == 0 {
		return
	}
	if less == nil {
		less = func(a, b string) bool { return a < b }
	}
	sort.SliceStable(items, func(i, j int) bool { return less(items[i].value.Text(), items[j].value.Text()) })

	l.changed = true
	l.list.Clear()
	separatorIsSpace := l.interp.separatorIsWhitespace

	for i, it := range items {
		if i == 0 {
			if len(it.comments) > 0 {
				l.appendNewlineUnchecked()
			}
		} else {
			if !separatorIsSpace {
				l.appendSeparator(false)
			}
			if len(it.comments) > 0 || l.reformat {
				l.appendNewlineUnchecked()
			} else {
				l.list.Append(ast.Part(ast.SpaceToken()))
			}
		}
		for _, c := range it.comments {
			l.appendContinuationIfNecessary()
			l.list.Append(ast.Part(c))
		}
		l.appendValueToken(it.value)
	}
}

func (l *ParsedTokenList) appendValueToken(vt *ast.Token) {
	if l.list.Len() > 0 {
		needsSeparator := false
		for n := l.list.Tail(); n != nil; n = n.Prev() {
			if t, ok := n.Value.(*ast.Token); ok {
				if t.Kind() == l.interp.ValueKind {
					needsSeparator = true
					break
				}
				if t.Kind() == l.interp.SeparatorKind {
					break
				}
			}
			if _, ok := n.Value.(*ast.CommentElement); ok {
				continue
			}
			break
		}
		if needsSeparator {
			l.appendSeparator(true)
		}
	} else {
		l.list.Append(ast.Part(ast.SpaceToken()))
	}
	l.appendContinuationIfNecessary()
	l.list.Append(ast.Part(vt))
	l.changed = true
}

func (l *ParsedTokenList) appendSeparator(spaceAfter bool) {
	sep := l.interp.newSeparatorToken()
	l.appendContinuationIfNecessary()
	l.list.Append(ast.Part(sep))
	if spaceAfter && !sep.IsWhitespace() {
		l.list.Append(ast.Part(ast.SpaceToken()))
	}
	l.changed = true
}

// appendContinuationIfNecessary starts a new continuation line if the list
// currently ends on a token whose text ends with a newline.
func (l *ParsedTokenList) appendContinuationIfNecessary() {
	tail := l.list.Tail()
	if tail == nil {
		return
	}
	if t, ok := tail.Value.(*ast.Token); ok && strings.HasSuffix(t.Text(), "\n") {
		l.list.Append(ast.Part(ast.ContinuationToken()))
	}
}

func (l *ParsedTokenList) appendNewlineIfNeeded() {
	if tail := l.list.Tail(); tail != nil {
		if t, ok := tail.Value.(*ast.Token); ok && strings.HasSuffix(t.Text(), "\n") {
			return
		}
	}
	l.appendNewlineUnchecked()
}

func (l *ParsedTokenList) appendNewlineUnchecked() {
	l.list.Append(ast.Part(ast.NewlineToken()))
}

// AppendNewline manually starts a new continuation line. It fails if the
// list already ends on a newline.
func (l *ParsedTokenList) AppendNewline() error {
	if tail := l.list.Tail(); tail != nil {
		if t, ok := tail.Value.(*ast.Token); ok && strings.HasSuffix(t.Text(), "\n") {
			return fmt.Errorf("deb822/list: list already ends on a newline")
		}
	}
	l.appendNewlineUnchecked()
	l.changed = true
	return nil
}

func formatListComment(text string) (string, error) {
	if strings.Contains(strings.TrimSuffix(text, "\n"), "\n") {
		return "", fmt.Errorf("%w: %q", ast.ErrCommentNewlineForbidden, text)
	}
	if text == "" {
		return "#\n", nil
	}
	s := text
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	if !strings.HasPrefix(s, "#") {
		s = "# " + s
	}
	return s, nil
}
