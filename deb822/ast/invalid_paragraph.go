package ast

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mbrt/deb822repro/deb822/llist"
	"github.com/mbrt/deb822repro/deb822/token"
)

// InvalidParagraphElement is a paragraph containing at least one duplicated
// field name (spec §4.7). It keeps every occurrence, ordered, rather than
// rejecting the file: real control files do contain accidental duplicates,
// and a round-trip-safe editor has to be able to represent and fix them
// rather than refuse to load.
type InvalidParagraphElement struct {
	parentLink
	order  *llist.List[*KeyValuePairElement]
	byName map[string][]*llist.Node[*KeyValuePairElement]
}

func newInvalidParagraph(kvs []*KeyValuePairElement) *InvalidParagraphElement {
	p := &InvalidParagraphElement{
		order:  llist.New[*KeyValuePairElement](),
		byName: make(map[string][]*llist.Node[*KeyValuePairElement]),
	}
	for _, kv := range kvs {
		n := p.order.Append(kv)
		lower := kv.FieldName().Lower()
		p.byName[lower] = append(p.byName[lower], n)
		p.adopt(kv)
	}
	return p
}

func (p *InvalidParagraphElement) adopt(kv *KeyValuePairElement) {
	if old := kv.Parent(); old != nil {
		kv.clearParentIfParent(old)
	}
	kv.setParent(p)
}

func (p *InvalidParagraphElement) Parts() []Part {
	vals := p.order.Values()
	out := make([]Part, len(vals))
	for i, v := range vals {
		out[i] = v
	}
	return out
}

func (p *InvalidParagraphElement) Text() string {
	var b strings.Builder
	for _, v := range p.order.Values() {
		b.WriteString(v.Text())
	}
	return b.String()
}

func (p *InvalidParagraphElement) Len() int { return p.order.Len() }

func (p *InvalidParagraphElement) FieldNames() []token.FieldName {
	vals := p.order.Values()
	out := make([]token.FieldName, len(vals))
	for i, v := range vals {
		out[i] = v.FieldName()
	}
	return out
}

func (p *InvalidParagraphElement) Contains(key ParagraphKey) bool {
	nodes := p.byName[strings.ToLower(key.Name)]
	if len(nodes) == 0 {
		return false
	}
	if !key.hasIndex() {
		return true
	}
	idx := normalizeIndex(key.Index, len(nodes))
	return idx >= 0 && idx < len(nodes)
}

func (p *InvalidParagraphElement) Get(key ParagraphKey) (*KeyValuePairElement, error) {
	nodes := p.byName[strings.ToLower(key.Name)]
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrFieldNotFound, key.Name)
	}
	if !key.hasIndex() {
		if len(nodes) != 1 {
			return nil, fmt.Errorf("%w: %q appears %d times", ErrAmbiguousFieldKey, key.Name, len(nodes))
		}
		return nodes[0].Value, nil
	}
	idx := normalizeIndex(key.Index, len(nodes))
	if idx < 0 || idx >= len(nodes) {
		return nil, fmt.Errorf("%w: %q has no occurrence at index %d", ErrFieldNotFound, key.Name, key.Index)
	}
	return nodes[idx].Value, nil
}

func (p *InvalidParagraphElement) setKVPair(key ParagraphKey, value *KeyValuePairElement) error {
	lower := strings.ToLower(key.Name)
	nodes := p.byName[lower]

	if len(nodes) == 0 {
		if key.hasIndex() && key.Index != 0 {
			return fmt.Errorf("%w: %q, use a non-indexed key or index 0 to add it", ErrFieldNotFound, key.Name)
		}
		n := p.order.Append(value)
		p.byName[lower] = append(p.byName[lower], n)
		p.adopt(value)
		return nil
	}

	var idx int
	if !key.hasIndex() {
		// A bare key collapses every duplicate occurrence to the first one,
		// mirroring removeKVPair's bare-key "remove all" behavior rather than
		// rejecting the duplication with ErrAmbiguousFieldKey.
		if len(nodes) > 1 {
			for _, n := range nodes[1:] {
				n.Value.clearParentIfParent(p)
				p.order.Remove(n)
			}
			nodes = nodes[:1]
			p.byName[lower] = nodes
		}
		idx = 0
	} else {
		idx = normalizeIndex(key.Index, len(nodes))
		if idx < 0 || idx >= len(nodes) {
			return fmt.Errorf("%w: %q has no occurrence at index %d", ErrFieldNotFound, key.Name, key.Index)
		}
	}
	node := nodes[idx]
	node.Value.clearParentIfParent(p)
	node.Value = value
	p.adopt(value)
	return nil
}

func (p *InvalidParagraphElement) removeKVPair(key ParagraphKey) error {
	lower := strings.ToLower(key.Name)
	nodes := p.byName[lower]
	if len(nodes) == 0 {
		return fmt.Errorf("%w: %q", ErrFieldNotFound, key.Name)
	}

	if !key.hasIndex() {
		for _, n := range nodes {
			n.Value.clearParentIfParent(p)
			p.order.Remove(n)
		}
		delete(p.byName, lower)
		return nil
	}

	idx := normalizeIndex(key.Index, len(nodes))
	if idx < 0 || idx >= len(nodes) {
		return fmt.Errorf("%w: %q has no occurrence at index %d", ErrFieldNotFound, key.Name, key.Index)
	}
	node := nodes[idx]
	node.Value.clearParentIfParent(p)
	p.order.Remove(node)
	nodes = append(nodes[:idx], nodes[idx+1:]...)
	if len(nodes) == 0 {
		delete(p.byName, lower)
	} else {
		p.byName[lower] = nodes
	}
	return nil
}

// SortFields rebuilds the paragraph's internal ordering sorted by field
// name, stably preserving relative order among duplicates of the same
// name. As with ValidParagraphElement, it first ensures the paragraph's
// last value ends on a newline.
func (p *InvalidParagraphElement) SortFields(less func(a, b token.FieldName) bool) {
	vals := p.order.Values()
	if len(vals) == 0 {
		return
	}
	vals[len(vals)-1].Value().AddFinalNewlineIfMissing()
	if less == nil {
		less = defaultFieldNameLess
	}
	sort.SliceStable(vals, func(i, j int) bool { return less(vals[i].FieldName(), vals[j].FieldName()) })

	p.order = llist.New[*KeyValuePairElement]()
	p.byName = make(map[string][]*llist.Node[*KeyValuePairElement])
	for _, kv := range vals {
		n := p.order.Append(kv)
		lower := kv.FieldName().Lower()
		p.byName[lower] = append(p.byName[lower], n)
	}
}
