// Package grouplist is an ordered list partitioned into three sections: values
// pushed to the front without a group, values with a group key (ordered by the
// key), and values pushed to the back without a group.
//
// Within a section, or within a single group, values keep the order they were
// inserted in. Every value of a group sits contiguously in the list.
package grouplist

import (
	"iter"
	"slices"
)

type Section uint8

const (
	FrontUngrouped Section = iota
	Grouped
	BackUngrouped
)

func (s Section) String() string {
	switch s {
	case FrontUngrouped:
		return "front"
	case Grouped:
		return "grouped"
	case BackUngrouped:
		return "back"
	default:
		return "unknown"
	}
}

// Key places a value in the list. Group is only consulted for the Grouped section.
type Key[G any] struct {
	Section Section
	Group   G
}

func Front[G any]() Key[G] {
	return Key[G]{Section: FrontUngrouped}
}

func Back[G any]() Key[G] {
	return Key[G]{Section: BackUngrouped}
}

func InGroup[G any](g G) Key[G] {
	return Key[G]{Section: Grouped, Group: g}
}

type Node[G, V any] struct {
	Value V

	key        Key[G]
	prev, next *Node[G, V]
	list       *List[G, V]
}

// Next returns the following node or nil at the end of the list.
func (n *Node[G, V]) Next() *Node[G, V] {
	if n.list == nil || n.next == &n.list.root {
		return nil
	}
	return n.next
}

func (n *Node[G, V]) Key() Key[G] {
	return n.key
}

// Attached reports whether the node still belongs to a list.
func (n *Node[G, V]) Attached() bool {
	return n.list != nil
}

// List returns the list holding n, or nil once n has been removed.
func (n *Node[G, V]) List() *List[G, V] {
	return n.list
}

// head records the first node of each distinct key.
type head[G, V any] struct {
	key  Key[G]
	node *Node[G, V]
}

type List[G, V any] struct {
	root  Node[G, V]
	len   int
	cmp   func(a, b G) int
	heads []head[G, V]
}

// New creates an empty list whose groups are ordered by cmp.
func New[G, V any](cmp func(a, b G) int) *List[G, V] {
	if cmp == nil {
		panic("grouplist: nil group comparison")
	}
	l := &List[G, V]{cmp: cmp}
	l.root.next = &l.root
	l.root.prev = &l.root
	return l
}

func (l *List[G, V]) Len() int {
	return l.len
}

// Groups is the number of distinct keys currently present.
func (l *List[G, V]) Groups() int {
	return len(l.heads)
}

func (l *List[G, V]) Front() *Node[G, V] {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

func (l *List[G, V]) All() iter.Seq[*Node[G, V]] {
	return func(yield func(*Node[G, V]) bool) {
		for n := l.Front(); n != nil; {
			next := n.Next()
			if !yield(n) {
				return
			}
			n = next
		}
	}
}

// InGroup yields the nodes sharing key k, in list order.
func (l *List[G, V]) InGroup(k Key[G]) iter.Seq[*Node[G, V]] {
	return func(yield func(*Node[G, V]) bool) {
		i := l.lowerBound(k)
		if i == len(l.heads) || l.compare(l.heads[i].key, k) != 0 {
			return
		}
		for n := l.heads[i].node; n != nil && l.compare(n.key, k) == 0; {
			next := n.Next()
			if !yield(n) {
				return
			}
			n = next
		}
	}
}

// PushFront inserts v ahead of every existing value sharing its key.
func (l *List[G, V]) PushFront(k Key[G], v V) *Node[G, V] {
	i := 0
	if k.Section != FrontUngrouped {
		i = l.lowerBound(k)
	}
	return l.insert(i, k, v)
}

// PushBack inserts v after every existing value sharing its key.
func (l *List[G, V]) PushBack(k Key[G], v V) *Node[G, V] {
	var i int
	if k.Section == BackUngrouped {
		i = len(l.heads)
	} else {
		i = l.upperBound(k)
	}
	return l.insert(i, k, v)
}

// Remove unlinks n and returns the node that followed it.
func (l *List[G, V]) Remove(n *Node[G, V]) *Node[G, V] {
	if n.list != l {
		panic("grouplist: node does not belong to this list")
	}
	next := n.Next()

	i := l.lowerBound(n.key)
	if i < len(l.heads) && l.heads[i].node == n {
		if next != nil && l.compare(next.key, n.key) == 0 {
			l.heads[i].node = next
		} else {
			l.heads = slices.Delete(l.heads, i, i+1)
		}
	}

	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev, n.next, n.list = nil, nil, nil
	l.len--
	return next
}

// RemoveGroup unlinks every node sharing key k and returns how many were removed.
func (l *List[G, V]) RemoveGroup(k Key[G]) int {
	removed := 0
	for n := range l.InGroup(k) {
		l.Remove(n)
		removed++
	}
	return removed
}

// Clone copies the list structure. Values are copied by assignment.
func (l *List[G, V]) Clone() *List[G, V] {
	c := New[G, V](l.cmp)
	for n := range l.All() {
		c.PushBack(n.key, n.Value)
	}
	return c
}

func (l *List[G, V]) compare(a, b Key[G]) int {
	if a.Section != b.Section {
		if a.Section < b.Section {
			return -1
		}
		return 1
	}
	if a.Section != Grouped {
		return 0
	}
	return l.cmp(a.Group, b.Group)
}

func (l *List[G, V]) lowerBound(k Key[G]) int {
	i, _ := slices.BinarySearchFunc(l.heads, k, func(h head[G, V], k Key[G]) int {
		return l.compare(h.key, k)
	})
	return i
}

func (l *List[G, V]) upperBound(k Key[G]) int {
	i := l.lowerBound(k)
	if i < len(l.heads) && l.compare(l.heads[i].key, k) == 0 {
		i++
	}
	return i
}

// insert places v before the first node of heads[i], or at the end when i is
// past the last head, then fixes up the head index.
func (l *List[G, V]) insert(i int, k Key[G], v V) *Node[G, V] {
	at := &l.root
	if i < len(l.heads) {
		at = l.heads[i].node
	}
	n := &Node[G, V]{Value: v, key: k, list: l, prev: at.prev, next: at}
	at.prev.next = n
	at.prev = n
	l.len++

	if i < len(l.heads) && l.compare(l.heads[i].key, k) == 0 {
		l.heads = slices.Delete(l.heads, i, i+1)
	}
	j := l.lowerBound(k)
	if j == len(l.heads) || l.compare(l.heads[j].key, k) != 0 {
		l.heads = slices.Insert(l.heads, j, head[G, V]{key: k, node: n})
	}
	return n
}
