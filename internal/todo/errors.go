package todo

import "errors"

// Domain-specific errors for the todo package.
var (
	ErrInvalidFilename     = errors.New("invalid todo list filename")
	ErrInvalidPayload      = errors.New("invalid payload")
	ErrListNotFound        = errors.New("todo list not found")
	ErrMalformedList       = errors.New("todo list is malformed")
	ErrItemIndexOutOfRange = errors.New("item index out of range")
)
