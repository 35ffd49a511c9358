package intake

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDescription is returned when the incoming description is blank
	ErrEmptyDescription = errors.New("task description is empty")
)

// StageError marks which pipeline stage aborted the run.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
