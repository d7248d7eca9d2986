package path

import "errors"

var (
	// ErrEmptyPath signals an empty pathname.
	ErrEmptyPath = errors.New("path: pathname is empty")
	// ErrBadPath signals a malformed pathname (empty component, leading or
	// trailing separator).
	ErrBadPath = errors.New("path: malformed pathname")
	// ErrIndexOutOfBounds signals an invalid component index or prefix depth.
	ErrIndexOutOfBounds = errors.New("path: index out of bounds")
)
