// Package serialize writes a parsed deb822 document back out verbatim; it
// applies no reformatting of its own. It is
// the counterpart to tokenize/ast/builder: where those packages read text
// into a tree, this package writes a tree back to text. For round-trip
// fidelity, Write always reconstructs from the token stream rather than
// from any higher-level field representation — the same principle the
// teacher's writer.go follows by preferring a node's Raw field whenever
// one is present.
package serialize

import (
	"io"
	"strings"

	"github.com/mbrt/deb822repro/deb822/ast"
)

// Write serializes file's exact current text to w. It is equivalent to
// file.Dump, provided as a free function so callers that only need
// serialization don't need to import the ast package's element types.
func Write(w io.Writer, file *ast.FileElement) error {
	return file.Dump(w)
}

// String serializes file's exact current text and returns it directly.
func String(file *ast.FileElement) string {
	var b strings.Builder
	// Dump only fails if the underlying Writer does; strings.Builder never
	// returns an error from Write.
	_ = file.Dump(&b)
	return b.String()
}

// Paragraph serializes a single paragraph's exact current text.
func Paragraph(p ast.Paragraph) string {
	return p.Text()
}

// Reserialize re-reads a document's exact text back through ParseFile and
// re-dumps it, which should always be a no-op (spec's round-trip-safety
// invariant). It returns the re-dumped text itself, or the parse error; it
// does not compare that text with the input, so detecting drift is left to
// the caller.
func Reserialize(parse func(string) (*ast.FileElement, error), text string) (string, error) {
	file, err := parse(text)
	if err != nil {
		return "", err
	}
	return String(file), nil
}
