// Package llist implements a small intrusive doubly linked list used by the
// duplicate-tolerant paragraph representation and by list interpretations,
// where nodes must be removed, inserted, or re-linked in the middle of the
// list without rebuilding the whole sequence.
package llist

// Node is one element of a List. The Prev link is "weak" in the sense that
// it exists purely for traversal; List is the sole owner of a Node's
// lifetime, and a Node found via some other means (e.g. retained by a
// builder while the List itself is rebuilt) does not keep the list alive.
type Node[T any] struct {
	Value T
	prev  *Node[T]
	next  *Node[T]
	list  *List[T]
}

// Prev returns the previous node, or nil if n is the head.
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// Next returns the next node, or nil if n is the tail.
func (n *Node[T]) Next() *Node[T] { return n.next }

// IterNext yields n and every following node, or, with skipCurrent, starts
// at n.Next().
func (n *Node[T]) IterNext(skipCurrent bool) func(yield func(*Node[T]) bool) {
	return func(yield func(*Node[T]) bool) {
		cur := n
		if skipCurrent {
			cur = cur.next
		}
		for cur != nil {
			if !yield(cur) {
				return
			}
			cur = cur.next
		}
	}
}

// IterPrev yields n and every preceding node (in reverse, toward the head),
// or, with skipCurrent, starts at n.Prev().
func (n *Node[T]) IterPrev(skipCurrent bool) func(yield func(*Node[T]) bool) {
	return func(yield func(*Node[T]) bool) {
		cur := n
		if skipCurrent {
			cur = cur.prev
		}
		for cur != nil {
			if !yield(cur) {
				return
			}
			cur = cur.prev
		}
	}
}

// List is an intrusive doubly linked list of Node[T].
type List[T any] struct {
	head *Node[T]
	tail *Node[T]
	size int
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of nodes currently in the list.
func (l *List[T]) Len() int { return l.size }

// Head returns the first node, or nil if the list is empty.
func (l *List[T]) Head() *Node[T] { return l.head }

// Tail returns the last node, or nil if the list is empty.
func (l *List[T]) Tail() *Node[T] { return l.tail }

// Append adds value as the new tail node and returns it.
func (l *List[T]) Append(value T) *Node[T] {
	n := &Node[T]{Value: value, list: l}
	if l.tail == nil {
		l.head = n
		l.tail = n
	} else {
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
	}
	l.size++
	return n
}

// InsertBefore inserts value immediately before at and returns the new node.
func (l *List[T]) InsertBefore(at *Node[T], value T) *Node[T] {
	n := &Node[T]{Value: value, list: l, prev: at.prev, next: at}
	if at.prev != nil {
		at.prev.next = n
	} else {
		l.head = n
	}
	at.prev = n
	l.size++
	return n
}

// InsertAfter inserts value immediately after at and returns the new node.
func (l *List[T]) InsertAfter(at *Node[T], value T) *Node[T] {
	n := &Node[T]{Value: value, list: l, prev: at, next: at.next}
	if at.next != nil {
		at.next.prev = n
	} else {
		l.tail = n
	}
	at.next = n
	l.size++
	return n
}

// Remove detaches n from the list, restoring head/tail as needed.
func (l *List[T]) Remove(n *Node[T]) {
	if n.list != l {
		return
	}
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev = nil
	n.next = nil
	n.list = nil
	l.size--
}

// Clear empties the list in O(1).
func (l *List[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.size = 0
}

// SetHead forcibly sets the head node, used when splicing out a prefix of
// the list (see Link).
func (l *List[T]) SetHead(n *Node[T]) { l.head = n }

// SetTail forcibly sets the tail node, used when splicing out a suffix of
// the list (see Link).
func (l *List[T]) SetTail(n *Node[T]) { l.tail = n }

// Link connects a and b as adjacent nodes (a.next = b, b.prev = a),
// tolerating either end being nil (meaning "no such neighbour"). It is the
// caller's responsibility to update List.head/tail afterward when a or b is
// nil, mirroring a splice at one end of the list.
func Link[T any](a, b *Node[T]) {
	if a != nil {
		a.next = b
	}
	if b != nil {
		b.prev = a
	}
}

// Values returns every value from head to tail, in order.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.Value)
	}
	return out
}
