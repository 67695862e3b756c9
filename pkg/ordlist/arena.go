package ordlist

import "Ordlist/pkg/util"

type nodeID uint32

// nilNode is slot 0 of every arena, it is never handed out.
const nilNode nodeID = 0

// maxCapacity keeps slot indices within an int on 32-bit platforms.
const maxCapacity = 1<<31 - 1

type node[T any] struct {
	item        T
	left, right nodeID
}

// arena owns every node of one list. Links between nodes are indices into
// nodes, released slots are kept on free and reused before the slice grows.
type arena[T any] struct {
	nodes    []node[T]
	free     []nodeID
	capacity int
}

func newArena[T any](capacity int) *arena[T] {
	if capacity <= 0 || capacity > maxCapacity {
		capacity = maxCapacity
	}
	return &arena[T]{capacity: capacity}
}

func (a *arena[T]) alloc(item T) (nodeID, error) {
	if a.full() {
		return nilNode, ErrOutOfMemory
	}
	if n := len(a.free); n > 0 {
		id := a.free[n-1]
		a.free = a.free[:n-1]
		a.nodes[id] = node[T]{item: item}
		return id, nil
	}
	if len(a.nodes) == 0 {
		// reserve the nil slot
		a.nodes = append(a.nodes, node[T]{})
	}
	a.nodes = append(a.nodes, node[T]{item: item})
	return nodeID(len(a.nodes) - 1), nil
}

func (a *arena[T]) release(id nodeID) {
	util.Assertf(id != nilNode && int(id) < len(a.nodes), "ordlist: release of node %d", id)
	// drop the item so the GC can reclaim what it references
	a.nodes[id] = node[T]{}
	a.free = append(a.free, id)
}

func (a *arena[T]) get(id nodeID) *node[T] {
	return &a.nodes[id]
}

// used returns the number of live nodes.
func (a *arena[T]) used() int {
	if len(a.nodes) == 0 {
		return 0
	}
	return len(a.nodes) - 1 - len(a.free)
}

func (a *arena[T]) full() bool {
	return a.used() >= a.capacity
}

func (a *arena[T]) reset() {
	a.nodes = a.nodes[:0]
	a.free = a.free[:0]
}
