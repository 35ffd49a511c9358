package intake

import (
	"context"
	"time"

	"chat-task-manager/pkg/duedate"
)

// Completer is the plain-text LLM surface the extraction stages talk to.
// Implemented by llmprovider.Manager.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// DueDateResolver normalizes a free-text phrase to a date or date-time.
// Implemented by duedate.Resolver.
type DueDateResolver interface {
	Resolve(phrase string, base time.Time) duedate.Resolution
}

// Pipeline runs the linear task extraction flow:
// priority -> due_date -> category -> assemble -> confirm.
type Pipeline interface {
	Run(ctx context.Context, description string) (*ExtractionState, error)
}

// ExtractionState accumulates per-request extraction results. It is built
// fresh for every request and discarded after the assembled task and
// confirmation are handed off.
type ExtractionState struct {
	// Description is the user's original phrase. Immutable once set.
	Description string

	// Priority is the normalized priority stage output.
	Priority string

	// DueDateText is the raw due-date stage model output, kept for
	// messaging only. DueDateResolved is the deterministic resolver result
	// over Description and is the only value used for persistence.
	DueDateText     string
	DueDateResolved duedate.Resolution

	// Category is the normalized category stage output.
	Category string

	// Task and Confirmation are filled by the terminal stages.
	Task         *AssembledTask
	Confirmation string
}

// AssembledTask is the record handed to the persistence sink.
type AssembledTask struct {
	Description string
	Priority    string
	DueDate     duedate.Resolution
	Category    string
}
