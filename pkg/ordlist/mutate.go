package ordlist

// Insert adds item at the slot located by the preceding Find(item.Key()).
// The cursor is moved to the new item.
//
// If the cursor does not name the slot for item's key, Insert finds it
// itself. ErrDuplicateKey is returned when the key is already present and
// ErrOutOfMemory when the list is full.
func (l *OrdList[K, T]) Insert(item T) error {
	if !l.atSlotFor(item.Key()) && l.Find(item.Key()) {
		return ErrDuplicateKey
	}
	id, err := l.nodes.alloc(item)
	if err != nil {
		return err
	}
	l.relink(id)
	l.cursor.current = id
	return nil
}

// Delete removes the item under the cursor and moves the cursor to the
// root.
func (l *OrdList[K, T]) Delete() error {
	if l.root == nilNode {
		return ErrRetrieveOnEmpty
	}
	if l.cursor.current == nilNode {
		return ErrNoCurrent
	}
	l.remove()
	l.cursor.reset(l.root)
	return nil
}

// remove unlinks the current node. A node with two children takes over the
// item of its in-order successor, which is then removed instead; the
// successor has no left child, so remove recurses at most once.
func (l *OrdList[K, T]) remove() {
	c := &l.cursor
	id := c.current
	n := l.nodes.get(id)
	switch {
	case n.left != nilNode && n.right != nilNode:
		c.push(id, false)
		c.current = n.right
		l.seekMin()
		n.item = l.nodes.get(c.current).item
		l.remove()
		return
	case n.left != nilNode:
		l.relink(n.left)
	default:
		// a leaf relinks nilNode
		l.relink(n.right)
	}
	l.nodes.release(id)
	c.current = nilNode
}

// relink stores child in the slot the cursor points at: the root or one
// side of the cursor's parent.
func (l *OrdList[K, T]) relink(child nodeID) {
	c := &l.cursor
	if len(c.path) == 0 {
		l.root = child
		return
	}
	s := c.path[len(c.path)-1]
	p := l.nodes.get(s.id)
	if s.left {
		p.left = child
	} else {
		p.right = child
	}
}

// Clear removes every item, smallest first, and returns all node storage.
func (l *OrdList[K, T]) Clear() {
	for l.root != nilNode {
		l.FirstPosition()
		l.remove()
	}
	l.nodes.reset()
	l.cursor.reset(nilNode)
}
