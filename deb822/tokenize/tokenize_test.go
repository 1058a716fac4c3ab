package tokenize_test

import (
	"testing"

	"github.com/mbrt/deb822repro/deb822/token"
	"github.com/mbrt/deb822repro/deb822/tokenize"
)

func tokenize(text string) []tokenize.Item {
	return tokenize.Tokenize(tokenize.Lines(text))
}

func TestLinesKeepsTrailingNewline(t *testing.T) {
	var got []string
	for l := range tokenize.Lines("a\nb\nc") {
		got = append(got, l)
	}
	want := []string{"a\n", "b\n", "c"}
	if len(got) != len(want) {
		t.Fatalf("Lines() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Lines()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLinesEmptyText(t *testing.T) {
	var got []string
	for l := range tokenize.Lines("") {
		got = append(got, l)
	}
	if len(got) != 0 {
		t.Errorf("Lines(\"\") = %v, want empty", got)
	}
}

func TestTokenizeSimpleField(t *testing.T) {
	items := tokenize("Package: foo\n")
	wantKinds := []token.Kind{
		token.FieldName,
		token.FieldSeparator,
		token.Whitespace,
		token.Value,
		token.NewlineAfterValue,
	}
	assertKinds(t, items, wantKinds)
	if items[0].Field.String() != "Package" {
		t.Errorf("FieldName item's Field = %q, want %q", items[0].Field.String(), "Package")
	}
	if items[3].Text != "foo" {
		t.Errorf("Value item's Text = %q, want %q", items[3].Text, "foo")
	}
}

func TestTokenizeEmptyValue(t *testing.T) {
	items := tokenize("Package:\n")
	wantKinds := []token.Kind{
		token.FieldName,
		token.FieldSeparator,
		token.NewlineAfterValue,
	}
	assertKinds(t, items, wantKinds)
}

func TestTokenizeContinuationLine(t *testing.T) {
	items := tokenize("Description: short\n long explanation\n")
	wantKinds := []token.Kind{
		token.FieldName,
		token.FieldSeparator,
		token.Whitespace,
		token.Value,
		token.NewlineAfterValue,
		token.ValueContinuation,
		token.Value,
		token.NewlineAfterValue,
	}
	assertKinds(t, items, wantKinds)
}

func TestTokenizeComment(t *testing.T) {
	items := tokenize("# a comment\nPackage: foo\n")
	wantKinds := []token.Kind{
		token.Comment,
		token.FieldName,
		token.FieldSeparator,
		token.Whitespace,
		token.Value,
		token.NewlineAfterValue,
	}
	assertKinds(t, items, wantKinds)
	if items[0].Text != "# a comment\n" {
		t.Errorf("Comment item Text = %q", items[0].Text)
	}
}

func TestTokenizeBlankLineSeparatesParagraphs(t *testing.T) {
	items := tokenize("Package: foo\n\nPackage: bar\n")
	var kinds []token.Kind
	for _, it := range items {
		kinds = append(kinds, it.Kind)
	}
	var sawWhitespace bool
	for _, k := range kinds {
		if k == token.Whitespace {
			sawWhitespace = true
		}
	}
	if !sawWhitespace {
		t.Error("expected a Whitespace item for the blank line between paragraphs")
	}
}

func TestTokenizeContinuationWithoutFieldIsError(t *testing.T) {
	items := tokenize(" bogus continuation\n")
	if len(items) != 1 || items[0].Kind != token.Error {
		t.Fatalf("items = %v, want a single Error item", items)
	}
	if items[0].Text != " bogus continuation\n" {
		t.Errorf("Error item Text = %q", items[0].Text)
	}
}

func TestTokenizeMalformedFieldLineIsError(t *testing.T) {
	items := tokenize(":no name before colon\n")
	if len(items) != 1 || items[0].Kind != token.Error {
		t.Fatalf("items = %v, want a single Error item", items)
	}
}

func TestCheckCoverage(t *testing.T) {
	body := "foo bar baz"
	items := []tokenize.Item{{Kind: token.Value, Text: body}}
	if err := tokenize.CheckCoverage(body, items); err != nil {
		t.Errorf("CheckCoverage: %v", err)
	}

	if err := tokenize.CheckCoverage(body, nil); err == nil {
		t.Error("CheckCoverage with no items should report a mismatch")
	}
}

func assertKinds(t *testing.T, items []tokenize.Item, want []token.Kind) {
	t.Helper()
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d: %v", len(items), len(want), items)
	}
	for i, k := range want {
		if items[i].Kind != k {
			t.Errorf("items[%d].Kind = %v, want %v", i, items[i].Kind, k)
		}
	}
}
