package ast_test

import (
	"testing"

	"github.com/mbrt/deb822repro/deb822/ast"
	"github.com/mbrt/deb822repro/deb822/token"
)

func TestNewTokenBasics(t *testing.T) {
	tok := ast.NewToken(token.Value, "foo")
	if tok.Kind() != token.Value {
		t.Errorf("Kind() = %v, want %v", tok.Kind(), token.Value)
	}
	if tok.Text() != "foo" {
		t.Errorf("Text() = %q, want %q", tok.Text(), "foo")
	}
	if tok.IsWhitespace() {
		t.Error("IsWhitespace() = true for a Value token")
	}
}

func TestNewTokenPanicsOnEmptyText(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewToken(_, \"\") did not panic")
		}
	}()
	ast.NewToken(token.Value, "")
}

func TestNewTokenPanicsOnEmbeddedNewlineInValue(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewToken(Value, \"a\\nb\") did not panic")
		}
	}()
	ast.NewToken(token.Value, "a\nb")
}

func TestNewTokenAllowsNewlineInWhitespace(t *testing.T) {
	tok := ast.NewToken(token.Whitespace, "  \n")
	if !tok.EndsWithNewline() {
		t.Error("EndsWithNewline() = false")
	}
}

func TestCanonicalTokens(t *testing.T) {
	if got, want := ast.NewlineToken().Text(), "\n"; got != want {
		t.Errorf("NewlineToken().Text() = %q, want %q", got, want)
	}
	if got, want := ast.ContinuationToken().Text(), " "; got != want {
		t.Errorf("ContinuationToken().Text() = %q, want %q", got, want)
	}
	if got, want := ast.CommaToken().Text(), ","; got != want {
		t.Errorf("CommaToken().Text() = %q, want %q", got, want)
	}
}

func TestNewFieldNameToken(t *testing.T) {
	name := token.NewFieldName("Package")
	tok := ast.NewFieldNameToken(name)
	if tok.Kind() != token.FieldName {
		t.Errorf("Kind() = %v, want FieldName", tok.Kind())
	}
	if tok.FieldName().String() != "Package" {
		t.Errorf("FieldName().String() = %q, want %q", tok.FieldName().String(), "Package")
	}
}

func TestCommentElementTextAndLen(t *testing.T) {
	c := ast.NewCommentElement(
		ast.NewToken(token.Comment, "# line one\n"),
		ast.NewToken(token.Comment, "# line two\n"),
	)
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	if got, want := c.Text(), "# line one\n# line two\n"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestCommentElementPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewCommentElement() with no tokens did not panic")
		}
	}()
	ast.NewCommentElement()
}

func TestErrorElementText(t *testing.T) {
	e := ast.NewErrorElement(ast.NewToken(token.Error, " bogus continuation\n"))
	if got, want := e.Text(), " bogus continuation\n"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}
