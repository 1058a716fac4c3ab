// Package tokenize implements the deb822 line tokenizer (spec §4.4, C5):
// the line-by-line classification rules that turn raw file text into a flat
// stream of token items. It depends only on the token package, not on ast,
// so that the ast package's mutation API (which re-tokenizes a freshly
// serialized fragment to graft it back into a tree) can call into it
// without an import cycle.
package tokenize

import (
	"fmt"
	"iter"
	"regexp"
	"strings"

	"github.com/mbrt/deb822repro/deb822/token"
)

// Item is one tokenizer output: a token kind, its exact source text, and
// (for FieldName items only) the interned field name.
type Item struct {
	Kind  token.Kind
	Text  string
	Field token.FieldName
}

// Lines splits text into the line iterator Tokenize expects. Each line
// keeps its trailing "\n", except possibly the last.
func Lines(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for len(text) > 0 {
			i := strings.IndexByte(text, '\n')
			var line string
			if i < 0 {
				line, text = text, ""
			} else {
				line, text = text[:i+1], text[i+1:]
			}
			if !yield(line) {
				return
			}
		}
	}
}

// Tokenize consumes an iterator of text lines and returns the token items
// the line classification rules of spec §4.4 produce, in document order.
func Tokenize(lines iter.Seq[string]) []Item {
	var buf []string
	for l := range lines {
		buf = append(buf, l)
	}
	return tokenizeLines(buf)
}

// CheckCoverage verifies that items' texts concatenate back to body
// exactly: the tokenizer contract that a value parser (whether the default
// opaque one here or a list Interpretation's) accounts for every byte of
// the line it was given.
func CheckCoverage(body string, items []Item) error {
	var b strings.Builder
	for _, it := range items {
		b.WriteString(it.Text)
	}
	if got := b.String(); got != body {
		return fmt.Errorf("tokenize: value parser produced %q parsing %q", got, body)
	}
	return nil
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

func isWhitespaceOnly(line string) bool {
	if line == "" {
		return false
	}
	for i := 0; i < len(line); i++ {
		if !isASCIISpace(line[i]) {
			return false
		}
	}
	return true
}

// fieldLineRE implements Debian Policy §5.1's field-name character class:
// the first character excludes '#', '-' and ':'; later characters exclude
// only ':'. Whitespace either side of the value is captured separately so
// the tokenizer can turn it into distinct Whitespace tokens.
var fieldLineRE = regexp.MustCompile(
	`^(?P<name>[\x21\x22\x24-\x2C\x2E-\x39\x3B-\x7E][\x21-\x39\x3B-\x7E]*):` +
		`(?P<before>\s*)(?:(?P<value>\S(?:.*\S)?)(?P<after>\s*))?$`,
)

func matchFieldLine(line string) (name, before, value, after string, ok bool) {
	m := fieldLineRE.FindStringSubmatch(line)
	if m == nil {
		return "", "", "", "", false
	}
	group := make(map[string]string, len(m))
	for i, n := range fieldLineRE.SubexpNames() {
		if n != "" {
			group[n] = m[i]
		}
	}
	return group["name"], group["before"], group["value"], group["after"], true
}

// valueBodyItems is the default, opaque value parser: it wraps non-empty
// body text into a single Value item. Dedicated list Interpretations (the
// whitespace- and comma-separated ones) re-tokenize a field's value body
// again, on demand, with their own parsers; this is only the parser the
// tokenizer itself uses while building the initial element tree.
func valueBodyItems(body string) []Item {
	if body == "" {
		return nil
	}
	return []Item{{Kind: token.Value, Text: body}}
}

func tokenizeLines(lines []string) []Item {
	var items []Item
	inField := false
	n := len(lines)

	for i := 0; i < n; i++ {
		line := lines[i]
		if line == "" {
			continue
		}
		if !strings.HasSuffix(line, "\n") && i != n-1 {
			items = append(items, Item{Kind: token.Error, Text: line})
			continue
		}

		switch {
		case isWhitespaceOnly(line):
			inField = false
			j := i + 1
			for j < n && isWhitespaceOnly(lines[j]) {
				j++
			}
			items = append(items, Item{Kind: token.Whitespace, Text: strings.Join(lines[i:j], "")})
			i = j - 1

		case line[0] == '#':
			items = append(items, Item{Kind: token.Comment, Text: line})

		case line[0] == ' ':
			if !inField {
				items = append(items, Item{Kind: token.Error, Text: line})
				continue
			}
			body := line[1:]
			hasNL := strings.HasSuffix(body, "\n")
			if hasNL {
				body = body[:len(body)-1]
			}
			items = append(items, Item{Kind: token.ValueContinuation, Text: " "})
			items = append(items, valueBodyItems(body)...)
			if hasNL {
				items = append(items, Item{Kind: token.NewlineAfterValue, Text: "\n"})
			}

		default:
			name, before, value, after, ok := matchFieldLine(line)
			if !ok {
				items = append(items, Item{Kind: token.Error, Text: line})
				continue
			}
			inField = true
			field := token.NewFieldName(name)
			items = append(items, Item{Kind: token.FieldName, Text: name, Field: field})
			items = append(items, Item{Kind: token.FieldSeparator, Text: ":"})

			if value == "" {
				after = before + after
				before = ""
			}
			hasNL := strings.HasSuffix(after, "\n")
			if hasNL {
				after = after[:len(after)-1]
			}
			if before != "" {
				items = append(items, Item{Kind: token.Whitespace, Text: before})
			}
			items = append(items, valueBodyItems(value)...)
			if after != "" {
				items = append(items, Item{Kind: token.Whitespace, Text: after})
			}
			if hasNL {
				items = append(items, Item{Kind: token.NewlineAfterValue, Text: "\n"})
			}
		}
	}
	return items
}
