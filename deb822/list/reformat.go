package list

import (
	"fmt"
	"strings"

	"github.com/mbrt/deb822repro/deb822/ast"
	"github.com/mbrt/deb822repro/deb822/tokenize"
)

// Commit serializes the list's current state back into the owning field,
// either verbatim or reformatted depending on ReformatWhenFinished, and
// grafts the result in place of the field's old value (spec §4.8). It is a
// no-op if nothing has changed since construction or the last Commit.
//
// Like the rest of the mutation API, this never hand-edits the tree: it
// builds "FieldName:" + the new value text and feeds that fragment back
// through the tokenizer and builder, exactly as SetFieldFromRawString does,
// so every invariant gets re-checked rather than assumed.
func (l *ParsedTokenList) Commit() error {
	if !l.changed {
		return nil
	}
	if err := l.validateNonEmpty(); err != nil {
		return err
	}

	var valueText string
	var err error
	if l.reformat {
		valueText, err = l.generateReformattedContent()
	} else {
		valueText = l.generateRawContent()
	}
	if err != nil {
		return err
	}

	fieldName := l.kv.FieldName().String()
	fragment := fieldName + ":" + valueText
	items := tokenize.Tokenize(tokenize.Lines(fragment))
	file := ast.Build(items)
	if errEl := file.FindFirstErrorElement(); errEl != nil {
		return fmt.Errorf("%w: new value for %s would not round-trip: %q", ast.ErrInvalidFieldSyntax, fieldName, errEl.Text())
	}
	paras := file.Paragraphs()
	if len(paras) != 1 {
		return fmt.Errorf("%w: expected exactly one field", ast.ErrInvalidFieldSyntax)
	}
	valid, ok := paras[0].(*ast.ValidParagraphElement)
	if !ok || valid.Len() != 1 {
		return fmt.Errorf("%w: expected exactly one field", ast.ErrInvalidFieldSyntax)
	}
	newKV, err := valid.Get(ast.Key(fieldName))
	if err != nil {
		return err
	}
	newKV.Value().AddFinalNewlineIfMissing()
	l.kv.SetValue(newKV.Value())
	l.changed = false
	return nil
}

func (l *ParsedTokenList) validateNonEmpty() error {
	for n := l.list.Head(); n != nil; n = n.Next() {
		switch t := n.Value.(type) {
		case *ast.CommentElement:
			continue
		case *ast.Token:
			if !t.IsWhitespace() {
				return nil
			}
		}
	}
	return fmt.Errorf("deb822/list: field must retain at least one value")
}

// generateRawContent concatenates the list's tokens verbatim, adding a
// trailing newline if the list doesn't already end on one.
func (l *ParsedTokenList) generateRawContent() string {
	var b strings.Builder
	for n := l.list.Head(); n != nil; n = n.Next() {
		b.WriteString(n.Value.Text())
	}
	out := b.String()
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out
}

// reformatItem is either a value token or a comment, in the order they
// appear in the list; every separator and whitespace token is dropped and
// regenerated from scratch.
type reformatItem struct {
	value   *ast.Token
	comment *ast.CommentElement
}

func (l *ParsedTokenList) reformatItems() []reformatItem {
	var items []reformatItem
	for n := l.list.Head(); n != nil; n = n.Next() {
		switch v := n.Value.(type) {
		case *ast.CommentElement:
			items = append(items, reformatItem{comment: v})
		case *ast.Token:
			if v.Kind() == l.interp.ValueKind {
				items = append(items, reformatItem{value: v})
			}
		}
	}
	return items
}

// generateReformattedContent regenerates the field's whitespace from
// scratch (spec §4.8): a single space after the colon, one value per
// continuation line indented to len(field name)+2 spaces when reformatting
// one-per-line, the interpretation's separator placed before each newline,
// and a final newline.
func (l *ParsedTokenList) generateReformattedContent() (string, error) {
	items := l.reformatItems()
	if len(items) == 0 || items[0].comment != nil {
		return "", fmt.Errorf("deb822/list: field must have a value to reformat")
	}

	sep := l.interp.newSeparatorToken()
	sepText := ""
	if !sep.IsWhitespace() {
		sepText = sep.Text()
	}
	indent := strings.Repeat(" ", len(l.kv.FieldName().String())+2)

	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(items[0].value.Text())

	pendingSeparator := true

	for _, it := range items[1:] {
		if it.comment != nil {
			if pendingSeparator && sepText != "" {
				b.WriteString(sepText)
				pendingSeparator = false
			}
			if !strings.HasSuffix(b.String(), "\n") {
				b.WriteString("\n")
			}
			b.WriteString(it.comment.Text())
			continue
		}

		if pendingSeparator {
			b.WriteString(sepText)
		}
		if !strings.HasSuffix(b.String(), "\n") {
			b.WriteString("\n")
		}
		b.WriteString(indent)
		b.WriteString(it.value.Text())
		pendingSeparator = true
	}

	if pendingSeparator && sepText != "" {
		b.WriteString(sepText)
	}
	if !strings.HasSuffix(b.String(), "\n") {
		b.WriteString("\n")
	}
	return b.String(), nil
}
