package ordlist

import "errors"

var (
	// ErrRetrieveOnEmpty is returned when the list has no items to read or remove.
	ErrRetrieveOnEmpty = errors.New("retrieve on empty list")
	// ErrDuplicateKey is returned by Insert when the key is already in the list.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrOutOfMemory is returned by Insert when the node arena is full.
	ErrOutOfMemory = errors.New("out of memory")
	// ErrNoCurrent is returned when the cursor sits on an empty slot, e.g.
	// after a Find that did not locate its key.
	ErrNoCurrent = errors.New("cursor has no current item")
)
