// Package list implements the two built-in list interpretations over a
// field's value (spec §4.9, C9): whitespace-separated and comma-separated
// word lists. Either view re-tokenizes a field's value body on demand and
// supports editing the list (iterate, append, replace, remove, sort) while
// preserving everything about the surrounding value the edit doesn't touch,
// including embedded comments.
package list

import (
	"regexp"
	"strings"

	"github.com/mbrt/deb822repro/deb822/ast"
	"github.com/mbrt/deb822repro/deb822/token"
	"github.com/mbrt/deb822repro/deb822/tokenize"
)

// Interpretation describes how to re-tokenize a value body into list items
// and what the default separator between two items looks like.
type Interpretation struct {
	// tokenize splits a single line's non-whitespace-only value-body text
	// into items. The caller guarantees body is not itself whitespace-only.
	tokenize func(body string) []tokenize.Item
	// ValueKind is the token kind list items are tagged with.
	ValueKind token.Kind
	// SeparatorKind is the token kind the interpretation's separator uses.
	SeparatorKind token.Kind
	// separatorIsWhitespace is true when the default separator is bare
	// whitespace rather than a punctuation character (comma's case).
	separatorIsWhitespace bool
	// separatorText is the default separator's literal text ("," or " ").
	separatorText string
}

// WhitespaceSeparated interprets a value as words separated by runs of
// whitespace, e.g. "Architecture: amd64 arm64 armhf".
var WhitespaceSeparated = Interpretation{
	tokenize:              tokenizeWhitespaceList,
	ValueKind:             token.Value,
	SeparatorKind:         token.SpaceSeparator,
	separatorIsWhitespace: true,
	separatorText:         " ",
}

// CommaSeparated interprets a value as words separated by commas, with
// optional surrounding whitespace, e.g. "Depends: foo, bar, baz".
var CommaSeparated = Interpretation{
	tokenize:      tokenizeCommaList,
	ValueKind:     token.Value,
	SeparatorKind: token.Comma,
	separatorText: ",",
}

func (in Interpretation) newSeparatorToken() *ast.Token {
	if in.separatorIsWhitespace {
		return ast.NewToken(in.SeparatorKind, " ")
	}
	return ast.NewToken(in.SeparatorKind, in.separatorText)
}

var wsWordRE = regexp.MustCompile(`(?P<before>\s*)(?P<word>\S+)(?P<after>\s*)`)

func tokenizeWhitespaceList(body string) []tokenize.Item {
	var items []tokenize.Item
	for _, m := range wsWordRE.FindAllStringSubmatch(body, -1) {
		before, word, after := m[1], m[2], m[3]
		if before != "" {
			items = append(items, tokenize.Item{Kind: token.SpaceSeparator, Text: before})
		}
		items = append(items, tokenize.Item{Kind: token.Value, Text: word})
		if after != "" {
			items = append(items, tokenize.Item{Kind: token.SpaceSeparator, Text: after})
		}
	}
	return items
}

// commaWordRE always starts on a comma, except for the very first match,
// where the comma may be omitted (so a value with no leading comma still
// gets its first word recognised). This mirrors finditer semantics: ^ only
// matches the absolute start of body, so only the first match can take
// that branch.
var commaWordRE = regexp.MustCompile(`(?:^|(?P<beforeComma>\s*)(?P<comma>,))(?P<beforeWord>\s*)(?P<word>[^,\s](?:[^,]*[^,\s])?)?(?P<afterWord>\s*)`)

func tokenizeCommaList(body string) []tokenize.Item {
	var items []tokenize.Item
	names := commaWordRE.SubexpNames()
	for _, loc := range commaWordRE.FindAllStringSubmatchIndex(body, -1) {
		group := make(map[string]string, len(names))
		for i, n := range names {
			if n == "" || loc[2*i] < 0 {
				continue
			}
			group[n] = body[loc[2*i]:loc[2*i+1]]
		}
		if group["beforeComma"] != "" {
			items = append(items, tokenize.Item{Kind: token.Whitespace, Text: group["beforeComma"]})
		}
		if group["comma"] != "" {
			items = append(items, tokenize.Item{Kind: token.Comma, Text: group["comma"]})
		}
		if group["beforeWord"] != "" {
			items = append(items, tokenize.Item{Kind: token.Whitespace, Text: group["beforeWord"]})
		}
		if group["word"] != "" {
			items = append(items, tokenize.Item{Kind: token.Value, Text: group["word"]})
		}
		if group["afterWord"] != "" {
			items = append(items, tokenize.Item{Kind: token.Whitespace, Text: group["afterWord"]})
		}
	}
	return items
}

func isWhitespaceOnly(s string) bool {
	return strings.TrimSpace(s) == ""
}
