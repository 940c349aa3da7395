// Package retry provides bounded exponential backoff for operations
// the process cannot run without: opening the sample store and dialing
// the sensor stream. Exhausting the attempt budget is fatal to the
// caller, so budgets are kept small and delays capped.
package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/oscillant-data/vibration.report/internal/monitoring"
)

// Task is one attempt of a retryable operation. A nil return stops the
// retries.
type Task func(ctx context.Context) error

// Backoff retries a task with exponentially growing delays.
type Backoff struct {
	// MaxAttempts bounds the number of attempts; zero means a single
	// attempt (retries disabled).
	MaxAttempts int

	// MinInterval is the delay after the first failure. Defaults to
	// one second.
	MinInterval time.Duration

	// MaxInterval caps the delay growth. Defaults to 30 seconds.
	MaxInterval time.Duration

	// Logf receives per-attempt progress. Defaults to monitoring.Logf.
	Logf func(format string, v ...interface{})
}

// Run executes the task until it succeeds, the attempt budget is
// exhausted, or the context is cancelled. On exhaustion the last task
// error is returned, wrapped with the operation name.
func (b Backoff) Run(ctx context.Context, name string, task Task) error {
	logf := b.Logf
	if logf == nil {
		logf = monitoring.Logf
	}
	minInterval := b.MinInterval
	if minInterval <= 0 {
		minInterval = time.Second
	}
	maxInterval := b.MaxInterval
	if maxInterval <= 0 {
		maxInterval = 30 * time.Second
	}
	attempts := b.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}

	delay := minInterval
	for attempt := 1; ; attempt++ {
		err := task(ctx)
		if err == nil {
			return nil
		}
		if attempt >= attempts {
			return fmt.Errorf("%s: giving up after %d attempts: %w", name, attempt, err)
		}
		if ctx.Err() != nil {
			return fmt.Errorf("%s: %w", name, ctx.Err())
		}

		logf("%s failed (attempt %d/%d), retrying in %v: %v", name, attempt, attempts, delay, err)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return fmt.Errorf("%s: %w", name, ctx.Err())
		}

		delay *= 2
		if delay > maxInterval {
			delay = maxInterval
		}
	}
}
