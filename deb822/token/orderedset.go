package token

// OrderedFieldNameSet is an insertion-ordered set of unique field names. It
// is the authority for field order inside a valid paragraph (§4.2).
type OrderedFieldNameSet struct {
	order []FieldName
	index map[string]int
}

// NewOrderedFieldNameSet returns an empty ordered set.
func NewOrderedFieldNameSet() *OrderedFieldNameSet {
	return &OrderedFieldNameSet{index: make(map[string]int)}
}

// Len returns the number of names currently in the set.
func (s *OrderedFieldNameSet) Len() int {
	return len(s.order)
}

// Contains reports whether name is already a member.
func (s *OrderedFieldNameSet) Contains(name FieldName) bool {
	_, ok := s.index[name.Lower()]
	return ok
}

// Append adds name to the set if absent, preserving insertion order.
// Returns true if the name was newly added.
func (s *OrderedFieldNameSet) Append(name FieldName) bool {
	if s.Contains(name) {
		return false
	}
	s.index[name.Lower()] = len(s.order)
	s.order = append(s.order, name)
	return true
}

// Remove removes name from the set, if present, shifting later indices down.
func (s *OrderedFieldNameSet) Remove(name FieldName) bool {
	i, ok := s.index[name.Lower()]
	if !ok {
		return false
	}
	s.order = append(s.order[:i], s.order[i+1:]...)
	delete(s.index, name.Lower())
	for j := i; j < len(s.order); j++ {
		s.index[s.order[j].Lower()] = j
	}
	return true
}

// Names returns the names in insertion (or last-sorted) order. The returned
// slice is owned by the caller.
func (s *OrderedFieldNameSet) Names() []FieldName {
	out := make([]FieldName, len(s.order))
	copy(out, s.order)
	return out
}

// Sort re-orders the set using less, a strict-weak-ordering comparator over
// two field names. The sort is stable: names the comparator treats as equal
// keep their original relative order.
func (s *OrderedFieldNameSet) Sort(less func(a, b FieldName) bool) {
	sortStable(s.order, less)
	for i, n := range s.order {
		s.index[n.Lower()] = i
	}
}

// sortStable is a small stable insertion sort kept local so
// this package has no dependency beyond what it already needs.
func sortStable(names []FieldName, less func(a, b FieldName) bool) {
	// Insertion sort is stable and is perfectly adequate for the short
	// field-count paragraphs deb822 files have in practice.
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && less(names[j], names[j-1]); j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}
