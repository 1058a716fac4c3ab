package ast

import (
	"fmt"
	"strings"

	"github.com/mbrt/deb822repro/deb822/token"
)

// ValidParagraphElement is a paragraph whose field names are all distinct
// (spec §4.7). Parts()/Text() are derived from the field order rather than
// stored as a static slice, so reordering or replacing a field never needs
// to rebuild anything beyond the order set itself.
type ValidParagraphElement struct {
	parentLink
	fields map[string]*KeyValuePairElement
	order  *token.OrderedFieldNameSet
}

func newValidParagraph(kvs []*KeyValuePairElement) *ValidParagraphElement {
	p := &ValidParagraphElement{
		fields: make(map[string]*KeyValuePairElement, len(kvs)),
		order:  token.NewOrderedFieldNameSet(),
	}
	for _, kv := range kvs {
		p.fields[kv.FieldName().Lower()] = kv
		p.order.Append(kv.FieldName())
		p.adopt(kv)
	}
	return p
}

func (p *ValidParagraphElement) adopt(kv *KeyValuePairElement) {
	if old := kv.Parent(); old != nil {
		kv.clearParentIfParent(old)
	}
	kv.setParent(p)
}

func (p *ValidParagraphElement) Parts() []Part {
	names := p.order.Names()
	out := make([]Part, len(names))
	for i, n := range names {
		out[i] = p.fields[n.Lower()]
	}
	return out
}

func (p *ValidParagraphElement) Text() string {
	var b strings.Builder
	for _, part := range p.Parts() {
		b.WriteString(part.Text())
	}
	return b.String()
}

func (p *ValidParagraphElement) Len() int { return p.order.Len() }

func (p *ValidParagraphElement) FieldNames() []token.FieldName { return p.order.Names() }

func (p *ValidParagraphElement) Contains(key ParagraphKey) bool {
	if key.hasIndex() && key.Index != 0 {
		return false
	}
	_, ok := p.fields[strings.ToLower(key.Name)]
	return ok
}

func (p *ValidParagraphElement) Get(key ParagraphKey) (*KeyValuePairElement, error) {
	if key.hasIndex() && key.Index != 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnexpectedIndex, key.Name)
	}
	kv, ok := p.fields[strings.ToLower(key.Name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFieldNotFound, key.Name)
	}
	return kv, nil
}

func (p *ValidParagraphElement) setKVPair(key ParagraphKey, value *KeyValuePairElement) error {
	if key.hasIndex() && key.Index != 0 {
		return fmt.Errorf("%w: %q", ErrUnexpectedIndex, key.Name)
	}
	if !strings.EqualFold(value.FieldName().String(), key.Name) {
		return fmt.Errorf("%w: cannot set field %q with a value named %q", ErrInvalidFieldSyntax, key.Name, value.FieldName())
	}
	lower := value.FieldName().Lower()
	if old, ok := p.fields[lower]; ok {
		old.clearParentIfParent(p)
	}
	p.fields[lower] = value
	p.order.Append(value.FieldName())
	p.adopt(value)
	return nil
}

func (p *ValidParagraphElement) removeKVPair(key ParagraphKey) error {
	if key.hasIndex() && key.Index != 0 {
		return fmt.Errorf("%w: %q", ErrUnexpectedIndex, key.Name)
	}
	lower := strings.ToLower(key.Name)
	kv, ok := p.fields[lower]
	if !ok {
		return fmt.Errorf("%w: %q", ErrFieldNotFound, key.Name)
	}
	kv.clearParentIfParent(p)
	delete(p.fields, lower)
	p.order.Remove(kv.FieldName())
	return nil
}

// SortFields reorders the paragraph's fields in place. Before sorting, it
// ensures the paragraph's last value ends on a newline, since sorting can
// move a previously-last field into the middle of the paragraph.
func (p *ValidParagraphElement) SortFields(less func(a, b token.FieldName) bool) {
	names := p.order.Names()
	if len(names) > 0 {
		p.fields[names[len(names)-1].Lower()].Value().AddFinalNewlineIfMissing()
	}
	if less == nil {
		less = defaultFieldNameLess
	}
	p.order.Sort(less)
}
