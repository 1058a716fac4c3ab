package deb822

import (
	"io"
	"strings"

	"github.com/mbrt/deb822repro/deb822/ast"
	"github.com/mbrt/deb822repro/deb822/tokenize"
)

// ParseOption configures ParseFile and Parse.
type ParseOption func(*parseConfig)

type parseConfig struct {
	acceptErrorTokens      bool
	acceptDuplicatedFields bool
}

func defaultParseConfig() parseConfig {
	return parseConfig{
		acceptErrorTokens:      true,
		acceptDuplicatedFields: true,
	}
}

// AcceptErrorTokens controls whether ParseFile tolerates syntactically
// invalid input. It defaults to true, which always returns a FileElement
// (an ErrorElement records the problem in the tree, and Text() still
// reproduces the input exactly). Passing false makes ParseFile fail fast
// with a *SyntaxError naming the first offending fragment.
func AcceptErrorTokens(accept bool) ParseOption {
	return func(c *parseConfig) { c.acceptErrorTokens = accept }
}

// AcceptDuplicatedFields controls whether ParseFile tolerates paragraphs
// with a repeated field name. It defaults to true, representing such a
// paragraph as an ast.InvalidParagraphElement. Passing false makes
// ParseFile fail with a *DuplicatedField naming the repeated fields.
func AcceptDuplicatedFields(accept bool) ParseOption {
	return func(c *parseConfig) { c.acceptDuplicatedFields = accept }
}

// ParseFile tokenizes and builds text into a FileElement. text need not be
// syntactically valid deb822: by default, ParseFile never fails on
// malformed input — it records the problem as an ErrorElement or an
// InvalidParagraphElement in the tree and still returns a file whose
// Text() reproduces the input byte for byte. Use AcceptErrorTokens(false)
// and AcceptDuplicatedFields(false) to instead fail fast on either
// condition.
func ParseFile(text string, opts ...ParseOption) (*ast.FileElement, error) {
	cfg := defaultParseConfig()
	for _, o := range opts {
		o(&cfg)
	}

	items := tokenize.Tokenize(tokenize.Lines(text))
	file := ast.Build(items)

	if !cfg.acceptErrorTokens {
		if errEl := file.FindFirstErrorElement(); errEl != nil {
			return nil, &SyntaxError{Text: errEl.Text()}
		}
	}
	if !cfg.acceptDuplicatedFields {
		if dup := findDuplicatedFields(file); len(dup) > 0 {
			return nil, &DuplicatedField{Fields: dup}
		}
	}
	return file, nil
}

func findDuplicatedFields(file *ast.FileElement) []string {
	var dup []string
	for _, p := range file.Paragraphs() {
		invalid, ok := p.(*ast.InvalidParagraphElement)
		if !ok {
			continue
		}
		counts := map[string]int{}
		for _, name := range invalid.FieldNames() {
			counts[name.Lower()]++
		}
		reported := map[string]bool{}
		for _, name := range invalid.FieldNames() {
			lower := name.Lower()
			if counts[lower] > 1 && !reported[lower] {
				dup = append(dup, name.String())
				reported[lower] = true
			}
		}
	}
	return dup
}

// Deb822 is a parsed document. It stores no view options; each
// ConfiguredView over its paragraphs takes its own.
type Deb822 struct {
	file *ast.FileElement
}

// Parse parses text and wraps the result as a Deb822.
func Parse(text string, opts ...ParseOption) (*Deb822, error) {
	file, err := ParseFile(text, opts...)
	if err != nil {
		return nil, err
	}
	return &Deb822{file: file}, nil
}

// File returns the underlying element tree.
func (d *Deb822) File() *ast.FileElement { return d.file }

// Dump writes the document's exact current text to w.
func (d *Deb822) Dump(w io.Writer) error { return d.file.Dump(w) }

// Text returns the document's exact current text.
func (d *Deb822) Text() string {
	var b strings.Builder
	_ = d.file.Dump(&b)
	return b.String()
}

// Paragraphs returns a ConfiguredView for each paragraph in the document,
// in document order, each built with the given options.
func (d *Deb822) Paragraphs(opts ...ViewOption) []*ConfiguredView {
	paras := d.file.Paragraphs()
	out := make([]*ConfiguredView, len(paras))
	for i, p := range paras {
		out[i] = NewConfiguredView(p, opts...)
	}
	return out
}
