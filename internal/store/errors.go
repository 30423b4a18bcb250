package store

import "errors"

// Validation errors surfaced to the user as inline warnings. The operation
// aborts without touching the backing file.
var (
	ErrDuplicateName   = errors.New("duplicate name")
	ErrNotFound        = errors.New("not found")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidRecord   = errors.New("invalid record")
)
