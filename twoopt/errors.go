package twoopt

import "errors"

// Sentinel errors for the twoopt package. Every optimizer call validates
// its own input; nothing in the hot search loops returns an error.
var (
	// ErrDuplicateID is returned by every optimizer when two points in the
	// same tour share an id; Geometric and Hybrid locate swap candidates
	// by id.
	ErrDuplicateID = errors.New("twoopt: tour contains duplicate point ids")
	// ErrInvalidConfig is returned by LoadOptionsYAML when the decoded
	// document sets a field outside the range its WithX constructor accepts.
	ErrInvalidConfig = errors.New("twoopt: invalid configuration document")
)
