package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"chat-task-manager/pkg/log"
	"chat-task-manager/pkg/retry"
)

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	got, err := retry.Do(context.Background(), retry.Policy{Attempts: 3, Delay: time.Millisecond}, log.Noop(), "op",
		func(ctx context.Context) (string, error) {
			calls++
			return "ok", nil
		})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ok" {
		t.Errorf("expected %q, got %q", "ok", got)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestDo_FailsThenSucceeds(t *testing.T) {
	// Fails k=2 times, succeeds on attempt k+1. Expect exactly 3 calls and
	// 2 delays of the configured length.
	const delay = 20 * time.Millisecond
	calls := 0

	start := time.Now()
	got, err := retry.Do(context.Background(), retry.Policy{Attempts: 4, Delay: delay}, log.Noop(), "op",
		func(ctx context.Context) (int, error) {
			calls++
			if calls <= 2 {
				return 0, errors.New("transient")
			}
			return 42, nil
		})
	elapsed := time.Since(start)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
	if elapsed < 2*delay {
		t.Errorf("expected at least %s of delays, elapsed %s", 2*delay, elapsed)
	}
}

func TestDo_AlwaysFails(t *testing.T) {
	sentinel := errors.New("backend down")
	calls := 0

	_, err := retry.Do(context.Background(), retry.Policy{Attempts: 3, Delay: time.Millisecond}, log.Noop(), "op",
		func(ctx context.Context) (string, error) {
			calls++
			return "", sentinel
		})

	if calls != 3 {
		t.Errorf("expected exactly 3 attempts, got %d", calls)
	}
	if !errors.Is(err, sentinel) {
		t.Errorf("expected last underlying error, got %v", err)
	}
}

func TestDo_DefaultPolicy(t *testing.T) {
	calls := 0
	_, err := retry.Do(context.Background(), retry.Policy{Delay: time.Millisecond}, log.Noop(), "op",
		func(ctx context.Context) (struct{}, error) {
			calls++
			return struct{}{}, errors.New("nope")
		})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != retry.DefaultAttempts {
		t.Errorf("expected default of %d attempts, got %d", retry.DefaultAttempts, calls)
	}
}

func TestDo_ContextCancelledDuringDelay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := retry.Do(ctx, retry.Policy{Attempts: 5, Delay: time.Second}, log.Noop(), "op",
		func(ctx context.Context) (string, error) {
			calls++
			return "", errors.New("transient")
		})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call before cancellation, got %d", calls)
	}
}
