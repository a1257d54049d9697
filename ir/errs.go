package ir

import "errors"

var (
	// ErrNotFound reports a dictionary key that is not present.
	ErrNotFound = errors.New("not found")

	// ErrBounds reports a list index at or past the end of the list.
	ErrBounds = errors.New("index out of bounds")

	// ErrType reports a segment applied to the wrong kind of node,
	// including any segment applied to a primitive.
	ErrType = errors.New("wrong type")

	// ErrEmptyKey reports an empty dictionary key where the active
	// policy forbids one.
	ErrEmptyKey = errors.New("empty dictionary key")
)
