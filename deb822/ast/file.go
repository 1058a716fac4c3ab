package ast

import (
	"io"

	"go.uber.org/multierr"
)

// FileElement is the root of a parsed deb822 document: a sequence of
// Paragraphs interleaved with free comments, error elements, and the
// blank-line whitespace separating paragraphs (spec §4.7).
type FileElement struct {
	base
}

// NewFileElement builds a FileElement from the builder's final part list.
func NewFileElement(parts []Part) *FileElement {
	e := &FileElement{}
	e.parts = attach(e, parts...)
	return e
}

// Paragraphs returns the file's paragraphs in document order, skipping
// interleaved comments, whitespace, and error elements.
func (e *FileElement) Paragraphs() []Paragraph {
	var out []Paragraph
	for _, p := range e.parts {
		if pg, ok := p.(Paragraph); ok {
			out = append(out, pg)
		}
	}
	return out
}

// Tokens returns every leaf Token in the file, in document order.
// Concatenating their Text() reproduces the file exactly.
func (e *FileElement) Tokens() []*Token { return FindAll[*Token](e) }

// Dump writes the file's exact current text to w.
func (e *FileElement) Dump(w io.Writer) error {
	for _, t := range e.Tokens() {
		if _, err := io.WriteString(w, t.Text()); err != nil {
			return err
		}
	}
	return nil
}

// FindFirstErrorElement returns the first ErrorElement in document order,
// or nil if the file is free of them.
func (e *FileElement) FindFirstErrorElement() *ErrorElement {
	errs := FindAll[*ErrorElement](e)
	if len(errs) == 0 {
		return nil
	}
	return errs[0]
}

// IsValidFile reports whether the file has at least one paragraph, every
// paragraph is a ValidParagraphElement, and no ErrorElement is present.
func (e *FileElement) IsValidFile() bool {
	paras := e.Paragraphs()
	if len(paras) == 0 {
		return false
	}
	for _, p := range paras {
		if _, ok := p.(*ValidParagraphElement); !ok {
			return false
		}
	}
	return e.FindFirstErrorElement() == nil
}

// Errors walks the file and bundles the text of every ErrorElement found
// into a single multierr-combined error, or nil if there are none. Unlike
// FindFirstErrorElement, this surfaces every problem in the file at once,
// which a linting tool typically wants.
func (e *FileElement) Errors() error {
	var errs []error
	for _, el := range FindAll[*ErrorElement](e) {
		errs = append(errs, &SyntaxError{Text: el.Text()})
	}
	return multierr.Combine(errs...)
}

// SyntaxError describes one ErrorElement found while parsing, carrying the
// exact source text the builder could not assign a valid structure to.
type SyntaxError struct {
	Text string
}

func (e *SyntaxError) Error() string {
	return "deb822: syntax error near " + trimForDisplay(e.Text)
}

func trimForDisplay(s string) string {
	const max = 60
	if len(s) <= max {
		return quoteLine(s)
	}
	return quoteLine(s[:max]) + "..."
}

func quoteLine(s string) string {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '"')
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, '\\', 'n')
			continue
		}
		out = append(out, s[i])
	}
	out = append(out, '"')
	return string(out)
}
