package executor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/semaphore"
)

// ErrTimedOut is returned when a task does not complete within its deadline.
var ErrTimedOut = errors.New("execution timed out")

// Task is a unit of work run on a pool worker. The context passed to the
// task is detached from the caller's cancellation: a task that outlives
// its caller's deadline keeps running to completion in the background.
type Task func(ctx context.Context) error

// Pool bounds the number of concurrently running tasks so that slow,
// blocking work (model inference) cannot stall request intake.
type Pool struct {
	sem *semaphore.Weighted
}

// NewPool creates a pool allowing at most workers concurrent tasks.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 4
	}
	return &Pool{sem: semaphore.NewWeighted(int64(workers))}
}

// Run executes fn on a pool worker and waits for it to finish or for
// timeout to elapse, whichever comes first. The deadline covers the
// whole call, including the wait for a free worker: a call against a
// saturated pool fails with ErrTimedOut just like a slow task does.
// On timeout the task is detached, not cancelled: it may still run to
// completion in the background, and Run returns ErrTimedOut to the
// caller immediately. Waiting suspends only the calling goroutine.
func (p *Pool) Run(ctx context.Context, timeout time.Duration, fn Task) error {
	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := p.sem.Acquire(waitCtx, 1); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrTimedOut
		}
		return fmt.Errorf("acquire worker: %w", err)
	}

	// The task keeps the request's values but not its cancellation, so a
	// timed-out classification can still finish and fill the cache.
	taskCtx := context.WithoutCancel(ctx)

	done := make(chan error, 1)
	go func() {
		defer p.sem.Release(1)
		done <- fn(taskCtx)
	}()

	select {
	case err := <-done:
		return err
	case <-waitCtx.Done():
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return ErrTimedOut
	}
}
