package hanfuzz

import "errors"

var (
	// ErrNilSelector is returned when an Index is constructed without a text
	// selector.
	ErrNilSelector = errors.New("selector must not be nil")

	// ErrNotFound is returned by QueryBuilder.First when no entry matches.
	ErrNotFound = errors.New("not found")
)
