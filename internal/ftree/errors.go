package ftree

import "errors"

var (
	// ErrOutOfRange signals an index outside the operation's documented range.
	ErrOutOfRange = errors.New("ftree: index out of range")
	// ErrEmpty signals an end-access operation on a tree with no elements.
	ErrEmpty = errors.New("ftree: tree is empty")
)
