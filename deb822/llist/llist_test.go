package llist_test

import (
	"testing"

	"github.com/mbrt/deb822repro/deb822/llist"
)

func TestAppendAndValues(t *testing.T) {
	l := llist.New[int]()
	l.Append(1)
	l.Append(2)
	l.Append(3)

	if got, want := l.Values(), []int{1, 2, 3}; !equal(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}
	if l.Len() != 3 {
		t.Errorf("Len() = %d, want 3", l.Len())
	}
	if l.Head().Value != 1 {
		t.Errorf("Head().Value = %d, want 1", l.Head().Value)
	}
	if l.Tail().Value != 3 {
		t.Errorf("Tail().Value = %d, want 3", l.Tail().Value)
	}
}

func TestInsertBeforeAfter(t *testing.T) {
	l := llist.New[string]()
	a := l.Append("a")
	c := l.Append("c")
	l.InsertBefore(c, "b")
	l.InsertAfter(a, "a2")

	if got, want := l.Values(), []string{"a", "a2", "b", "c"}; !equal(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}
}

func TestRemoveMiddle(t *testing.T) {
	l := llist.New[int]()
	l.Append(1)
	n2 := l.Append(2)
	l.Append(3)

	l.Remove(n2)

	if got, want := l.Values(), []int{1, 3}; !equal(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}
	if l.Len() != 2 {
		t.Errorf("Len() = %d, want 2", l.Len())
	}
}

func TestRemoveHeadAndTail(t *testing.T) {
	l := llist.New[int]()
	h := l.Append(1)
	l.Append(2)
	tail := l.Append(3)

	l.Remove(h)
	if l.Head().Value != 2 {
		t.Errorf("Head().Value after removing head = %d, want 2", l.Head().Value)
	}

	l.Remove(tail)
	if l.Tail().Value != 2 {
		t.Errorf("Tail().Value after removing tail = %d, want 2", l.Tail().Value)
	}
}

func TestClear(t *testing.T) {
	l := llist.New[int]()
	l.Append(1)
	l.Append(2)
	l.Clear()

	if l.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", l.Len())
	}
	if l.Head() != nil || l.Tail() != nil {
		t.Error("Head()/Tail() after Clear should be nil")
	}
}

func TestIterNextAndPrev(t *testing.T) {
	l := llist.New[int]()
	l.Append(1)
	n2 := l.Append(2)
	l.Append(3)

	var forward []int
	for n := range n2.IterNext(false) {
		forward = append(forward, n.Value)
	}
	if got, want := forward, []int{2, 3}; !equal(got, want) {
		t.Errorf("IterNext(false) = %v, want %v", got, want)
	}

	var backward []int
	for n := range n2.IterPrev(true) {
		backward = append(backward, n.Value)
	}
	if got, want := backward, []int{1}; !equal(got, want) {
		t.Errorf("IterPrev(true) = %v, want %v", got, want)
	}
}

func equal[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
