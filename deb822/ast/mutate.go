package ast

import (
	"fmt"
	"strings"

	"github.com/mbrt/deb822repro/deb822/token"
	"github.com/mbrt/deb822repro/deb822/tokenize"
)

// SetFieldOption configures SetFieldFromRawString and SetFieldToSimpleValue.
type SetFieldOption func(*setFieldConfig)

type setFieldConfig struct {
	preserveComment *bool
	fieldComment    []string
}

// PreserveFieldComment controls whether a field being replaced keeps its
// existing comment. It defaults to true and is mutually exclusive with
// WithFieldComment.
func PreserveFieldComment(preserve bool) SetFieldOption {
	return func(c *setFieldConfig) { c.preserveComment = &preserve }
}

// WithFieldComment sets the new field's comment to the given lines, each
// normalised to start with "# " and end with "\n". Mutually exclusive with
// PreserveFieldComment.
func WithFieldComment(lines ...string) SetFieldOption {
	return func(c *setFieldConfig) { c.fieldComment = lines }
}

// SetFieldFromRawString replaces (or adds) the field identified by key with
// one whose value is exactly raw — the bytes that should appear after
// "Name:" in the file, including any mandatory leading space and
// continuation-line indentation, ending with "\n" (spec §4.8, C8). It works
// by serializing "Name:" + raw and re-parsing that fragment through the
// same tokenizer and builder used for whole files, then grafting the
// resulting KeyValuePairElement into p: mutation never hand-patches the
// tree, it only ever splices in freshly parsed subtrees.
func SetFieldFromRawString(p Paragraph, key ParagraphKey, raw string, opts ...SetFieldOption) error {
	if !strings.HasSuffix(raw, "\n") {
		return fmt.Errorf("%w: %q", ErrMissingTrailingNewline, raw)
	}
	if err := checkRawNotEndingInComment(raw); err != nil {
		return err
	}

	var cfg setFieldConfig
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.preserveComment != nil && cfg.fieldComment != nil {
		return fmt.Errorf("%w: PreserveFieldComment and WithFieldComment are mutually exclusive", ErrInvalidFieldSyntax)
	}

	kv, err := parseSingleKVPair(key.Name, raw)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidFieldSyntax, err)
	}

	comment, err := resolveFieldComment(p, key, cfg)
	if err != nil {
		return err
	}
	if comment != nil {
		kv.SetComment(comment)
	}

	return p.setKVPair(key, kv)
}

// SetFieldToSimpleValue replaces (or adds) the field identified by key with
// a single-line value, which must not contain an embedded newline. It is a
// thin wrapper over SetFieldFromRawString that appends the mandatory
// leading space and trailing newline for the caller.
func SetFieldToSimpleValue(p Paragraph, key ParagraphKey, value string, opts ...SetFieldOption) error {
	if strings.Contains(value, "\n") {
		return fmt.Errorf("%w: simple value must not contain embedded newlines", ErrInvalidFieldSyntax)
	}
	return SetFieldFromRawString(p, key, " "+value+"\n", opts...)
}

// RemoveField removes the field identified by key from p.
func RemoveField(p Paragraph, key ParagraphKey) error {
	return p.removeKVPair(key)
}

func resolveFieldComment(p Paragraph, key ParagraphKey, cfg setFieldConfig) (*CommentElement, error) {
	if cfg.fieldComment != nil {
		return buildCommentFromLines(cfg.fieldComment)
	}
	preserve := cfg.preserveComment == nil || *cfg.preserveComment
	if !preserve {
		return nil, nil
	}
	existing, err := p.Get(key)
	if err != nil {
		return nil, nil
	}
	c := existing.Comment()
	if c == nil {
		return nil, nil
	}
	c.clearParentIfParent(existing)
	return c, nil
}

func buildCommentFromLines(lines []string) (*CommentElement, error) {
	toks := make([]*Token, len(lines))
	for i, l := range lines {
		formatted, err := formatComment(l)
		if err != nil {
			return nil, err
		}
		toks[i] = NewToken(token.Comment, formatted)
	}
	return NewCommentElement(toks...), nil
}

// formatComment normalises one comment line to start with "#" and end with
// "\n", matching the convention _format_comment establishes in the Python
// reference implementation.
func formatComment(c string) (string, error) {
	if c == "" {
		return "#\n", nil
	}
	if strings.Contains(strings.TrimSuffix(c, "\n"), "\n") {
		return "", fmt.Errorf("%w: %q", ErrCommentNewlineForbidden, c)
	}
	if !strings.HasSuffix(c, "\n") {
		c = strings.TrimRight(c, " \t") + "\n"
	}
	if !strings.HasPrefix(c, "#") {
		c = "# " + strings.TrimLeft(c, " \t")
	}
	return c, nil
}

// checkRawNotEndingInComment rejects a raw value whose last physical line is
// a comment: the builder happily produces a valid one-field paragraph plus a
// free top-level CommentElement for such input (the trailing comment simply
// falls outside any KeyValuePair), so parseSingleKVPair would otherwise
// silently discard it instead of reporting InvalidFieldSyntax.
func checkRawNotEndingInComment(raw string) error {
	lines := strings.Split(strings.TrimSuffix(raw, "\n"), "\n")
	if len(lines) > 1 && strings.HasPrefix(lines[len(lines)-1], "#") {
		return fmt.Errorf("%w: last line of raw value must not be a comment: %q", ErrInvalidFieldSyntax, raw)
	}
	return nil
}

// parseSingleKVPair builds a single detached KeyValuePairElement for name
// by parsing the fragment "name:" + raw through the regular tokenizer and
// builder pipeline.
func parseSingleKVPair(name, raw string) (*KeyValuePairElement, error) {
	fragment := name + ":" + raw
	items := tokenize.Tokenize(tokenize.Lines(fragment))
	file := Build(items)

	if errEl := file.FindFirstErrorElement(); errEl != nil {
		return nil, fmt.Errorf("malformed field: %q", errEl.Text())
	}
	paras := file.Paragraphs()
	if len(paras) != 1 {
		return nil, fmt.Errorf("expected exactly one field, got %d paragraphs", len(paras))
	}
	valid, ok := paras[0].(*ValidParagraphElement)
	if !ok || valid.Len() != 1 {
		return nil, fmt.Errorf("expected exactly one field")
	}

	names := valid.FieldNames()
	kv, err := valid.Get(Key(names[0].String()))
	if err != nil {
		return nil, err
	}
	kv.clearParentIfParent(valid)
	return kv, nil
}
