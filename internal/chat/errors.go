package chat

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid chat request")
	ErrInvalidStatus  = errors.New("invalid status filter")
	ErrInvalidTaskID  = errors.New("invalid task id")
)
