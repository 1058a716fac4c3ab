package ast

import (
	"fmt"

	"github.com/mbrt/deb822repro/deb822/token"
)

// ParagraphKey identifies one field within a paragraph: either a bare field
// name, which must be unambiguous, or a (name, index) pair picking out a
// specific occurrence in an InvalidParagraphElement.
type ParagraphKey struct {
	Name    string
	Index   int
	indexed bool
}

// Key builds a bare, non-indexed ParagraphKey.
func Key(name string) ParagraphKey { return ParagraphKey{Name: name} }

// IndexedKey builds a ParagraphKey for the index'th occurrence of name.
// Negative indices count from the end (-1 is the last occurrence), as in
// Python.
func IndexedKey(name string, index int) ParagraphKey {
	return ParagraphKey{Name: name, Index: index, indexed: true}
}

func (k ParagraphKey) hasIndex() bool { return k.indexed }

// Paragraph is the common interface over ValidParagraphElement and
// InvalidParagraphElement (spec §4.7): one variant for paragraphs whose
// fields are all unique, one for paragraphs with duplicated field names
// that still deserve a lossless representation instead of a hard parse
// error.
type Paragraph interface {
	Element

	// Len returns the number of key-value pairs in the paragraph.
	Len() int
	// FieldNames returns the paragraph's field names in document order.
	// An InvalidParagraphElement may list the same name more than once.
	FieldNames() []token.FieldName
	// Contains reports whether key identifies a present field.
	Contains(key ParagraphKey) bool
	// Get returns the key-value pair identified by key.
	Get(key ParagraphKey) (*KeyValuePairElement, error)
	// SortFields reorders the paragraph's fields. A nil less sorts
	// case-insensitively by field name.
	SortFields(less func(a, b token.FieldName) bool)

	setKVPair(key ParagraphKey, value *KeyValuePairElement) error
	removeKVPair(key ParagraphKey) error
}

// FromKVPairs builds a Paragraph from key-value pairs freshly produced by
// the builder, choosing the Valid or Invalid representation depending on
// whether any field name repeats (spec §4.7).
func FromKVPairs(kvs []*KeyValuePairElement) (Paragraph, error) {
	if len(kvs) == 0 {
		return nil, fmt.Errorf("deb822: a paragraph must have at least one field")
	}
	seen := token.NewOrderedFieldNameSet()
	hasDuplicate := false
	for _, kv := range kvs {
		if !seen.Append(kv.FieldName()) {
			hasDuplicate = true
		}
	}
	if hasDuplicate {
		return newInvalidParagraph(kvs), nil
	}
	return newValidParagraph(kvs), nil
}

func defaultFieldNameLess(a, b token.FieldName) bool { return a.Lower() < b.Lower() }

func normalizeIndex(idx, n int) int {
	if idx < 0 {
		idx += n
	}
	return idx
}
