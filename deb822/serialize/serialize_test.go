package serialize_test

import (
	"strings"
	"testing"

	"github.com/mbrt/deb822repro/deb822"
	"github.com/mbrt/deb822repro/deb822/ast"
	"github.com/mbrt/deb822repro/deb822/serialize"
)

const control = "Package: foo\nVersion: 1.0\n\n"

func TestWriteAndString(t *testing.T) {
	file, err := deb822.ParseFile(control)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}

	var b strings.Builder
	if err := serialize.Write(&b, file); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if b.String() != control {
		t.Errorf("Write() = %q, want %q", b.String(), control)
	}
	if got := serialize.String(file); got != control {
		t.Errorf("String() = %q, want %q", got, control)
	}
}

func TestParagraph(t *testing.T) {
	file, err := deb822.ParseFile(control)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	paras := file.Paragraphs()
	if len(paras) != 1 {
		t.Fatalf("len(Paragraphs()) = %d, want 1", len(paras))
	}
	if got, want := serialize.Paragraph(paras[0]), "Package: foo\nVersion: 1.0\n"; got != want {
		t.Errorf("Paragraph() = %q, want %q", got, want)
	}
}

func TestReserialize(t *testing.T) {
	out, err := serialize.Reserialize(deb822.ParseFile, control)
	if err != nil {
		t.Fatalf("Reserialize: %v", err)
	}
	if out != control {
		t.Errorf("Reserialize() = %q, want %q", out, control)
	}
}

func TestReserializeParseError(t *testing.T) {
	parse := func(text string) (*ast.FileElement, error) {
		return deb822.ParseFile(text, deb822.AcceptErrorTokens(false))
	}
	_, err := serialize.Reserialize(parse, " bogus continuation\n")
	if err == nil {
		t.Error("Reserialize() with a strict parser over invalid input should fail")
	}
}
