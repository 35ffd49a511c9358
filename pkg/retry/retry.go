package retry

import (
	"context"
	"time"

	"chat-task-manager/pkg/log"
)

// Defaults for Policy fields left at zero.
const (
	DefaultAttempts = 2
	DefaultDelay    = 1 * time.Second
)

// Policy bounds how an operation is retried: at most Attempts executions with
// a constant Delay between them. No backoff growth.
type Policy struct {
	Attempts int
	Delay    time.Duration
}

// DefaultPolicy returns the standard budget: 2 attempts, 1s apart.
func DefaultPolicy() Policy {
	return Policy{Attempts: DefaultAttempts, Delay: DefaultDelay}
}

func (p Policy) normalized() Policy {
	if p.Attempts <= 0 {
		p.Attempts = DefaultAttempts
	}
	if p.Delay <= 0 {
		p.Delay = DefaultDelay
	}
	return p
}

// Do executes op under the policy. Each failed attempt is logged before the
// delay; the last error is returned once the budget is exhausted, never
// swallowed. The delay honors ctx cancellation. Concurrent calls are
// independent; Do holds no state across invocations.
func Do[T any](ctx context.Context, p Policy, l log.Logger, name string, op func(ctx context.Context) (T, error)) (T, error) {
	p = p.normalized()

	var zero T
	var lastErr error

	for attempt := 1; attempt <= p.Attempts; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt < p.Attempts {
			l.Warnf(ctx, "retry: attempt %d/%d for %s failed: %v, retrying in %s", attempt, p.Attempts, name, err, p.Delay)
			select {
			case <-time.After(p.Delay):
			case <-ctx.Done():
				return zero, ctx.Err()
			}
		}
	}

	return zero, lastErr
}
