package ordlist

import "io"

// ExportVisitor writes one item to w. w belongs to the caller of
// ExportPreOrder and stays open for the whole export.
type ExportVisitor[T any] func(item T, w io.Writer) error

// Side tells where a node hangs below its parent.
type Side int

const (
	Root Side = iota
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "L"
	case Right:
		return "R"
	}
	return "root"
}

// ShapeVisitor is called by WalkPreOrder with the depth of the node (0 for
// the root) and the side it hangs on.
type ShapeVisitor[T any] func(item T, depth int, side Side)

// ForEachInOrder calls visit for every item in ascending key order.
func (l *OrdList[K, T]) ForEachInOrder(visit Visitor[T]) {
	l.inOrder(l.root, visit)
}

func (l *OrdList[K, T]) inOrder(id nodeID, visit Visitor[T]) {
	if id == nilNode {
		return
	}
	n := l.nodes.get(id)
	l.inOrder(n.left, visit)
	visit(n.item)
	l.inOrder(n.right, visit)
}

// ForEachReverse calls visit for every item in descending key order.
func (l *OrdList[K, T]) ForEachReverse(visit Visitor[T]) {
	l.reverse(l.root, visit)
}

func (l *OrdList[K, T]) reverse(id nodeID, visit Visitor[T]) {
	if id == nilNode {
		return
	}
	n := l.nodes.get(id)
	l.reverse(n.right, visit)
	visit(n.item)
	l.reverse(n.left, visit)
}

// ExportPreOrder hands every item to visit in pre-order (node, left
// subtree, right subtree). Inserting the exported items one by one, in the
// same order, into an empty list rebuilds a tree of identical shape.
//
// The export stops at the first error returned by visit.
func (l *OrdList[K, T]) ExportPreOrder(w io.Writer, visit ExportVisitor[T]) error {
	return l.preOrder(l.root, func(item T, _ int, _ Side) error {
		return visit(item, w)
	}, 0, Root)
}

// WalkPreOrder visits the tree in pre-order, reporting the position of
// every node. It is meant for printing the shape of the tree.
func (l *OrdList[K, T]) WalkPreOrder(visit ShapeVisitor[T]) {
	_ = l.preOrder(l.root, func(item T, depth int, side Side) error {
		visit(item, depth, side)
		return nil
	}, 0, Root)
}

func (l *OrdList[K, T]) preOrder(id nodeID, fn func(T, int, Side) error, depth int, side Side) error {
	if id == nilNode {
		return nil
	}
	n := l.nodes.get(id)
	left, right := n.left, n.right
	if err := fn(n.item, depth, side); err != nil {
		return err
	}
	if err := l.preOrder(left, fn, depth+1, Left); err != nil {
		return err
	}
	return l.preOrder(right, fn, depth+1, Right)
}
