package ordlist

// CopyFrom replaces the content of l with the items of other. The items are
// inserted in pre-order, so l ends up with the same shape as other. The
// cursor is left on the last inserted item.
func (l *OrdList[K, T]) CopyFrom(other *OrdList[K, T]) error {
	if l == other {
		return nil
	}
	l.Clear()
	return other.preOrder(other.root, func(item T, _ int, _ Side) error {
		l.Find(item.Key())
		return l.Insert(item)
	}, 0, Root)
}

// Clone returns a copy of l with the same shape, comparator and options.
func (l *OrdList[K, T]) Clone() (*OrdList[K, T], error) {
	c := l.empty()
	if err := c.CopyFrom(l); err != nil {
		return nil, err
	}
	return c, nil
}

// Equals reports whether both lists hold the same keys. The shape of the
// trees does not matter.
func (l *OrdList[K, T]) Equals(other *OrdList[K, T]) bool {
	if l.Length() != other.Length() {
		return false
	}
	a, b := l.Iterator(), other.Iterator()
	for a.Valid() {
		if l.compare(a.Key(), b.Key()) != 0 {
			return false
		}
		a.Next()
		b.Next()
	}
	return true
}

// NotEquals is the negation of Equals.
func (l *OrdList[K, T]) NotEquals(other *OrdList[K, T]) bool {
	return !l.Equals(other)
}

// Union returns a new list holding the keys of both lists. When a key is in
// both, the item of l is kept. The result is built from the merged, sorted
// items by inserting the middle item first and recursing on each half, so
// its height is minimal even when l or other is degenerate.
func (l *OrdList[K, T]) Union(other *OrdList[K, T]) (*OrdList[K, T], error) {
	items := make([]T, 0, l.Length()+other.Length())
	a, b := l.Iterator(), other.Iterator()
	for a.Valid() && b.Valid() {
		w := l.compare(a.Key(), b.Key())
		switch {
		case w < 0:
			items = append(items, a.Item())
			a.Next()
		case w > 0:
			items = append(items, b.Item())
			b.Next()
		default:
			items = append(items, a.Item())
			a.Next()
			b.Next()
		}
	}
	for ; a.Valid(); a.Next() {
		items = append(items, a.Item())
	}
	for ; b.Valid(); b.Next() {
		items = append(items, b.Item())
	}

	result := l.empty()
	if err := result.build(items, 0, len(items)-1); err != nil {
		return nil, err
	}
	return result, nil
}

// build inserts the sorted items[lo..hi] so that every subtree is rooted at
// the middle of its range.
func (l *OrdList[K, T]) build(items []T, lo, hi int) error {
	if lo > hi {
		return nil
	}
	mid := (lo + hi) / 2
	l.Find(items[mid].Key())
	if err := l.Insert(items[mid]); err != nil {
		return err
	}
	if err := l.build(items, lo, mid-1); err != nil {
		return err
	}
	return l.build(items, mid+1, hi)
}

func (l *OrdList[K, T]) empty() *OrdList[K, T] {
	return &OrdList[K, T]{
		nodes:   newArena[T](l.opts.capacity),
		compare: l.compare,
		opts:    l.opts,
	}
}
