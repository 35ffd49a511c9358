package intake

import (
	"time"

	pkgLog "chat-task-manager/pkg/log"
	"chat-task-manager/pkg/retry"
)

type implPipeline struct {
	l         pkgLog.Logger
	completer Completer
	resolver  DueDateResolver
	retry     retry.Policy
	now       func() time.Time
}

// New creates a new extraction Pipeline instance.
func New(l pkgLog.Logger, completer Completer, resolver DueDateResolver, policy retry.Policy) *implPipeline {
	return &implPipeline{
		l:         l,
		completer: completer,
		resolver:  resolver,
		retry:     policy,
		now:       time.Now,
	}
}
