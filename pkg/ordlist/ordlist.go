// Package ordlist implements an ordered list on top of an unbalanced binary
// search tree.
//
// Callers see a list: FirstPosition, NextPosition, LastPosition and
// EndOfList walk the items in key order, Retrieve reads the item under the
// cursor. Underneath, items live in a binary search tree and every
// positioning operation costs O(h), h being the height of the tree.
//
// Mutations are driven by the cursor. Find positions it either on the item
// with the given key or on the empty slot where that key belongs, and
// Insert and Delete then work at that position:
//
//	if !l.Find(item.Key()) {
//		err = l.Insert(item)
//	}
//
// The tree is never rebalanced by Insert or Delete. Union is the one
// operation that produces a balanced tree: it merges two lists into a new
// list of minimal height.
//
// An OrdList is not safe for concurrent use.
package ordlist

import (
	"golang.org/x/exp/constraints"
)

// Item is the interface of the objects stored in an OrdList. Key must be
// stable for as long as the item is in the list.
type Item[K any] interface {
	Key() K
}

// Compare orders two keys.
//
//	if k1 < k2,  ret < 0
//	if k1 == k2, ret == 0
//	if k1 > k2,  ret > 0
type Compare[K any] func(k1, k2 K) int

// Visitor is called once per item by ForEachInOrder and ForEachReverse.
type Visitor[T any] func(item T)

// OrdList is an ordered list of items with unique keys.
type OrdList[K any, T Item[K]] struct {
	nodes   *arena[T]
	root    nodeID
	cursor  cursor
	compare Compare[K]
	opts    options
}

type options struct {
	capacity int
}

// Option configures an OrdList.
type Option func(*options)

// WithCapacity limits the number of items the list can hold. Insert returns
// ErrOutOfMemory once the limit is reached.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// CompareOrdered returns the natural order of an ordered key type.
func CompareOrdered[K constraints.Ordered]() Compare[K] {
	return func(k1, k2 K) int {
		switch {
		case k1 < k2:
			return -1
		case k2 < k1:
			return 1
		}
		return 0
	}
}

// New creates an empty list ordered by the natural order of K.
func New[K constraints.Ordered, T Item[K]](opts ...Option) *OrdList[K, T] {
	return NewWithCompare[K, T](CompareOrdered[K](), opts...)
}

// NewWithCompare creates an empty list ordered by cmp.
func NewWithCompare[K any, T Item[K]](cmp Compare[K], opts ...Option) *OrdList[K, T] {
	if cmp == nil {
		panic("ordlist: nil compare")
	}
	l := &OrdList[K, T]{compare: cmp}
	for _, o := range opts {
		o(&l.opts)
	}
	l.nodes = newArena[T](l.opts.capacity)
	return l
}

// IsEmpty reports whether the list holds no items.
func (l *OrdList[K, T]) IsEmpty() bool {
	return l.root == nilNode
}

// IsFull reports whether another Insert would fail with ErrOutOfMemory.
func (l *OrdList[K, T]) IsFull() bool {
	return l.nodes.full()
}

// Length counts the items by walking the whole tree.
func (l *OrdList[K, T]) Length() int {
	return l.length(l.root)
}

func (l *OrdList[K, T]) length(id nodeID) int {
	if id == nilNode {
		return 0
	}
	n := l.nodes.get(id)
	return 1 + l.length(n.left) + l.length(n.right)
}

// Height returns the number of levels of the tree, 0 for an empty list.
func (l *OrdList[K, T]) Height() int {
	return l.height(l.root)
}

func (l *OrdList[K, T]) height(id nodeID) int {
	if id == nilNode {
		return 0
	}
	n := l.nodes.get(id)
	lh, rh := l.height(n.left), l.height(n.right)
	if lh < rh {
		lh = rh
	}
	return lh + 1
}

func (l *OrdList[K, T]) keyOf(id nodeID) K {
	return l.nodes.get(id).item.Key()
}
