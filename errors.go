package cedar

import "errors"

var (
	// ErrNoPath means a key's byte sequence does not correspond to any
	// transition chain in the trie.
	ErrNoPath = errors.New("cedar: no such path")

	// ErrNoValue means the traversed state exists but carries no value
	// (it is a pure prefix of other stored keys).
	ErrNoValue = errors.New("cedar: no value at this node")

	// ErrAlreadyExisted means Insert was called for a key that already
	// has a value; use Update to overwrite it.
	ErrAlreadyExisted = errors.New("cedar: key already exists")

	// ErrInvalidValue means the value is negative or equal to
	// ValueLimit, both of which are reserved.
	ErrInvalidValue = errors.New("cedar: value out of representable range")

	// ErrCapacityExceeded means the array could not grow further
	// without exceeding the 2^31-cell ceiling.
	ErrCapacityExceeded = errors.New("cedar: capacity exceeded")
)
