package ordlist

// Iterator walks a list in key order without touching the list's cursor.
// It is invalidated by any Insert, Delete or Clear on the list.
type Iterator[K any, T Item[K]] struct {
	list  *OrdList[K, T]
	stack []nodeID
	p     nodeID
}

// Iterator returns an iterator positioned on the smallest item.
func (l *OrdList[K, T]) Iterator() *Iterator[K, T] {
	it := &Iterator[K, T]{list: l}
	it.SeekToFirst()
	return it
}

func (it *Iterator[K, T]) Valid() bool {
	return it.p != nilNode
}

func (it *Iterator[K, T]) Item() T {
	return it.list.nodes.get(it.p).item
}

func (it *Iterator[K, T]) Key() K {
	return it.list.keyOf(it.p)
}

func (it *Iterator[K, T]) Next() {
	if it.p == nilNode {
		return
	}
	it.pushLeft(it.list.nodes.get(it.p).right)
	it.pop()
}

func (it *Iterator[K, T]) SeekToFirst() {
	it.stack = it.stack[:0]
	it.pushLeft(it.list.root)
	it.pop()
}

// Seek moves to the first item whose key is greater than or equal to key.
func (it *Iterator[K, T]) Seek(key K) {
	l := it.list
	it.stack = it.stack[:0]
	id := l.root
	for id != nilNode {
		n := l.nodes.get(id)
		w := l.compare(key, n.item.Key())
		if w > 0 {
			id = n.right
			continue
		}
		it.stack = append(it.stack, id)
		if w == 0 {
			break
		}
		id = n.left
	}
	it.pop()
}

func (it *Iterator[K, T]) pushLeft(id nodeID) {
	for id != nilNode {
		it.stack = append(it.stack, id)
		id = it.list.nodes.get(id).left
	}
}

func (it *Iterator[K, T]) pop() {
	top := len(it.stack) - 1
	if top < 0 {
		it.p = nilNode
		return
	}
	it.p = it.stack[top]
	it.stack = it.stack[:top]
}
