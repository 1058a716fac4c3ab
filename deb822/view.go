package deb822

import (
	"strings"

	"github.com/mbrt/deb822repro/deb822/ast"
	"github.com/mbrt/deb822repro/deb822/list"
)

// ViewOption configures a ConfiguredView or InterpretedView (spec §6).
type ViewOption func(*viewConfig)

type viewConfig struct {
	discardCommentsOnRead          bool
	autoMapInitialLineWhitespace   bool
	autoResolveAmbiguousFields     bool
	preserveFieldCommentsOnUpdates bool
	autoMapFinalNewlineInMultiline bool
}

func defaultViewConfig() viewConfig {
	return viewConfig{
		discardCommentsOnRead:          true,
		autoMapInitialLineWhitespace:   true,
		autoResolveAmbiguousFields:     true,
		preserveFieldCommentsOnUpdates: true,
		autoMapFinalNewlineInMultiline: true,
	}
}

// DiscardCommentsOnRead controls whether Get strips embedded comment lines
// from a field's value text. Defaults to true.
func DiscardCommentsOnRead(discard bool) ViewOption {
	return func(c *viewConfig) { c.discardCommentsOnRead = discard }
}

// AutoMapInitialLineWhitespace controls whether the mandatory single space
// after "Field:" is hidden from Get's result and re-added by Set. Defaults
// to true.
func AutoMapInitialLineWhitespace(auto bool) ViewOption {
	return func(c *viewConfig) { c.autoMapInitialLineWhitespace = auto }
}

// AutoResolveAmbiguousFields controls whether a bare field name against a
// paragraph with duplicated fields resolves to the first occurrence
// instead of returning ErrAmbiguousFieldKey. Defaults to true.
func AutoResolveAmbiguousFields(auto bool) ViewOption {
	return func(c *viewConfig) { c.autoResolveAmbiguousFields = auto }
}

// PreserveFieldCommentsOnFieldUpdates controls whether Set keeps a field's
// existing comment when replacing its value. Defaults to true.
func PreserveFieldCommentsOnFieldUpdates(preserve bool) ViewOption {
	return func(c *viewConfig) { c.preserveFieldCommentsOnUpdates = preserve }
}

// AutoMapFinalNewlineInMultilineValues controls whether the mandatory
// trailing newline of a field's raw value is hidden from Get's result and
// re-added by Set. Defaults to true.
func AutoMapFinalNewlineInMultilineValues(auto bool) ViewOption {
	return func(c *viewConfig) { c.autoMapFinalNewlineInMultiline = auto }
}

// ConfiguredView is a dict-like view over a paragraph's fields (spec §6):
// Get/Set/Delete work with plain field-value strings, with the options
// above controlling how much of the underlying grammar (initial
// whitespace, trailing newline, embedded comments, field-name ambiguity)
// is hidden from the caller.
type ConfiguredView struct {
	p   ast.Paragraph
	cfg viewConfig
}

// NewConfiguredView wraps p with the given options.
func NewConfiguredView(p ast.Paragraph, opts ...ViewOption) *ConfiguredView {
	cfg := defaultViewConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &ConfiguredView{p: p, cfg: cfg}
}

// Len returns the number of fields in the paragraph.
func (v *ConfiguredView) Len() int { return v.p.Len() }

// Names returns the paragraph's field names in document order.
func (v *ConfiguredView) Names() []string {
	names := v.p.FieldNames()
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = n.String()
	}
	return out
}

// Contains reports whether name identifies a present field.
func (v *ConfiguredView) Contains(name string) bool {
	return v.p.Contains(v.resolveKey(name))
}

// Get returns the mapped string value of the named field.
func (v *ConfiguredView) Get(name string) (string, error) {
	kv, err := v.p.Get(v.resolveKey(name))
	if err != nil {
		return "", err
	}
	return v.mapOnRead(kv.Value()), nil
}

// Set replaces (or adds) the named field's value. value is the plain,
// mapped string as Get would return it: Set re-applies whatever whitespace
// and newline mapping the view's options call for.
func (v *ConfiguredView) Set(name, value string) error {
	var opts []ast.SetFieldOption
	opts = append(opts, ast.PreserveFieldComment(v.cfg.preserveFieldCommentsOnUpdates))
	return ast.SetFieldFromRawString(v.p, v.resolveKey(name), v.mapOnWrite(value), opts...)
}

// Delete removes the named field.
func (v *ConfiguredView) Delete(name string) error {
	return ast.RemoveField(v.p, v.resolveKey(name))
}

func (v *ConfiguredView) resolveKey(name string) ast.ParagraphKey {
	if v.cfg.autoResolveAmbiguousFields {
		return ast.IndexedKey(name, 0)
	}
	return ast.Key(name)
}

// mapOnRead reconstructs a field's logical value text from its value
// lines, optionally dropping embedded comments and the initial/final
// whitespace the grammar requires but the view hides from callers.
func (v *ConfiguredView) mapOnRead(value *ast.ValueElement) string {
	lines := value.Lines()
	var b strings.Builder
	for i, l := range lines {
		if !v.cfg.discardCommentsOnRead {
			if c := l.Comment(); c != nil {
				b.WriteString(c.Text())
			}
		}
		if ct := l.ContinuationToken(); ct != nil {
			b.WriteString(ct.Text())
		}
		if ws := l.LeadingWhitespace(); ws != nil {
			if i == 0 && v.cfg.autoMapInitialLineWhitespace {
				// Hide the mandatory single leading space on the first line.
			} else {
				b.WriteString(ws.Text())
			}
		}
		b.WriteString(l.ContentText())
		if ws := l.TrailingWhitespace(); ws != nil {
			b.WriteString(ws.Text())
		}
		if nl := l.Newline(); nl != nil {
			b.WriteString(nl.Text())
		}
	}
	out := b.String()
	if v.cfg.autoMapFinalNewlineInMultiline {
		out = strings.TrimSuffix(out, "\n")
	}
	return out
}

// mapOnWrite re-adds the whitespace/newline the view's options hide from
// callers, producing the raw text SetFieldFromRawString expects.
func (v *ConfiguredView) mapOnWrite(value string) string {
	if v.cfg.autoMapFinalNewlineInMultiline {
		value = strings.TrimSuffix(value, "\n") + "\n"
	}
	if v.cfg.autoMapInitialLineWhitespace {
		value = " " + value
	}
	return value
}

// InterpretedView exposes one field's value as an editable list.Interpretation
// instead of a plain string (spec §6, C9).
type InterpretedView struct {
	p      ast.Paragraph
	cfg    viewConfig
	interp list.Interpretation
}

// NewInterpretedView wraps p, interpreting field values through interp.
func NewInterpretedView(p ast.Paragraph, interp list.Interpretation, opts ...ViewOption) *InterpretedView {
	cfg := defaultViewConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &InterpretedView{p: p, cfg: cfg, interp: interp}
}

// Get returns a ParsedTokenList over the named field's value. Edits made
// through the returned list are only reflected back into the tree once
// ParsedTokenList.Commit is called.
func (v *InterpretedView) Get(name string) (*list.ParsedTokenList, error) {
	kv, err := v.p.Get(v.resolveKey(name))
	if err != nil {
		return nil, err
	}
	return list.New(kv, v.interp), nil
}

func (v *InterpretedView) resolveKey(name string) ast.ParagraphKey {
	if v.cfg.autoResolveAmbiguousFields {
		return ast.IndexedKey(name, 0)
	}
	return ast.Key(name)
}
