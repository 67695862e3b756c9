package ordlist

// step records one edge taken from the root towards the cursor.
type step struct {
	id   nodeID
	left bool
}

// cursor is the list position. path runs from the root to the parent of
// current, so the parent is always the last step. current is nilNode when
// the cursor names an empty child slot of that parent.
type cursor struct {
	current nodeID
	path    []step
	end     bool
}

func (c *cursor) parent() nodeID {
	if len(c.path) == 0 {
		return nilNode
	}
	return c.path[len(c.path)-1].id
}

func (c *cursor) reset(at nodeID) {
	c.current = at
	c.path = c.path[:0]
	c.end = false
}

func (c *cursor) push(id nodeID, left bool) {
	c.path = append(c.path, step{id: id, left: left})
}

// EndOfList reports whether the cursor has moved past the last item. An
// empty list is always at its end.
func (l *OrdList[K, T]) EndOfList() bool {
	c := &l.cursor
	return c.end || (c.current == nilNode && c.parent() == nilNode)
}

// FirstPosition moves the cursor to the smallest item.
func (l *OrdList[K, T]) FirstPosition() {
	l.cursor.reset(l.root)
	if l.root != nilNode {
		l.seekMin()
	}
}

// LastPosition moves the cursor to the largest item and marks the end of
// the list: EndOfList is true and Retrieve returns the largest item.
func (l *OrdList[K, T]) LastPosition() {
	c := &l.cursor
	c.reset(l.root)
	if l.root == nilNode {
		return
	}
	for r := l.nodes.get(c.current).right; r != nilNode; r = l.nodes.get(c.current).right {
		c.push(c.current, false)
		c.current = r
	}
	c.end = true
}

// NextPosition advances the cursor to the in-order successor of the
// current item. On the largest item it only marks the end of the list.
//
// After an unsuccessful Find the cursor moves to the smallest item whose key
// is greater than the searched one.
func (l *OrdList[K, T]) NextPosition() {
	c := &l.cursor
	if l.root == nilNode || c.end {
		return
	}
	if c.current != nilNode {
		if r := l.nodes.get(c.current).right; r != nilNode {
			c.push(c.current, false)
			c.current = r
			l.seekMin()
			return
		}
	}
	// climb to the nearest ancestor whose left subtree holds the cursor
	i := len(c.path) - 1
	for i >= 0 && !c.path[i].left {
		i--
	}
	if i < 0 {
		c.end = true
		return
	}
	c.current = c.path[i].id
	c.path = c.path[:i]
}

// Find moves the cursor to the item with the given key and returns true.
// When the key is absent it returns false and leaves the cursor on the empty
// slot where the key would be inserted.
func (l *OrdList[K, T]) Find(key K) bool {
	c := &l.cursor
	c.reset(l.root)
	for c.current != nilNode {
		n := l.nodes.get(c.current)
		w := l.compare(key, n.item.Key())
		switch {
		case w == 0:
			return true
		case w < 0:
			c.push(c.current, true)
			c.current = n.left
		default:
			c.push(c.current, false)
			c.current = n.right
		}
	}
	return false
}

// Retrieve returns the item under the cursor.
func (l *OrdList[K, T]) Retrieve() (T, error) {
	var zero T
	if l.root == nilNode {
		return zero, ErrRetrieveOnEmpty
	}
	if l.cursor.current == nilNode {
		return zero, ErrNoCurrent
	}
	return l.nodes.get(l.cursor.current).item, nil
}

// seekMin walks from the current node down to the leftmost node of its
// subtree.
func (l *OrdList[K, T]) seekMin() {
	c := &l.cursor
	for left := l.nodes.get(c.current).left; left != nilNode; left = l.nodes.get(c.current).left {
		c.push(c.current, true)
		c.current = left
	}
}

// atSlotFor reports whether the cursor names the empty slot that key
// belongs to.
func (l *OrdList[K, T]) atSlotFor(key K) bool {
	c := &l.cursor
	if c.current != nilNode || c.end {
		return false
	}
	if len(c.path) == 0 {
		return l.root == nilNode
	}
	if c.path[0].id != l.root {
		return false
	}
	for i, s := range c.path {
		n := l.nodes.get(s.id)
		w := l.compare(key, n.item.Key())
		if w == 0 || (w < 0) != s.left {
			return false
		}
		next := n.right
		if s.left {
			next = n.left
		}
		if i+1 < len(c.path) {
			if next != c.path[i+1].id {
				return false
			}
		} else if next != nilNode {
			return false
		}
	}
	return true
}
