// Package race drives a pollable task to completion under a wall-clock
// budget, resolving with whichever finishes first: the task or the timer.
package race

import (
	"context"
	"time"

	"github.com/osmike/deadline/internal/domain"
)

// Task is the unit of work raced against the wait limit. Poll evaluates the
// underlying condition once and reports Completed or Pending.
type Task interface {
	Poll() domain.Outcome
}

// Run races task against waitLimit.
//
// The task is always polled once synchronously before the timer is armed, so
// a condition that is already true resolves as Completed for any wait limit,
// including zero, without any timer-related delay.
//
// Afterwards a driver goroutine re-polls the task once per turn
// (domain.DEFAULT_TURN_INTERVAL) until it completes or the race is decided.
// Completion resolves immediately; the remainder of the budget is never
// waited out. If the timer and the task finish in the same scheduling step,
// Completed wins, so a condition that becomes true exactly at the boundary
// does not fail spuriously.
//
// Returns:
//   - (Completed, nil) when the condition was observed true within the budget.
//   - (Elapsed, nil) when the budget expired first; the task is not polled again.
//   - (Pending, ctx.Err()) when ctx was canceled before the race was decided.
func Run(ctx context.Context, waitLimit time.Duration, task Task) (domain.Outcome, error) {
	if err := ctx.Err(); err != nil {
		return domain.Pending, err
	}

	if task.Poll() == domain.Completed {
		return domain.Completed, nil
	}
	if waitLimit <= 0 {
		return domain.Elapsed, nil
	}

	driveCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})
	stopped := make(chan struct{})
	go drive(driveCtx, task, done, stopped)

	timer := time.NewTimer(waitLimit)
	defer timer.Stop()

	select {
	case <-done:
		return domain.Completed, nil
	case <-ctx.Done():
		return domain.Pending, ctx.Err()
	case <-timer.C:
		// Stop the driver and wait for it to exit before deciding: the
		// condition must not be evaluated once Elapsed is reported.
		cancel()
		<-stopped
		// The task may have completed in the same scheduling step as the
		// timer; the successful condition takes precedence.
		select {
		case <-done:
			return domain.Completed, nil
		default:
		}
		return domain.Elapsed, nil
	}
}

// drive re-polls the task once per turn until it completes or the context is
// canceled. The pause between evaluations yields control so other goroutines,
// including whichever one eventually flips the condition, keep running.
// stopped is closed on exit so the race can await the driver's shutdown.
func drive(ctx context.Context, task Task, done chan<- struct{}, stopped chan<- struct{}) {
	defer close(stopped)

	ticker := time.NewTicker(domain.DEFAULT_TURN_INTERVAL)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		// Cancellation and a tick can arrive in the same scheduling step;
		// a decided race never grants the task another turn.
		if ctx.Err() != nil {
			return
		}
		if task.Poll() == domain.Completed {
			close(done)
			return
		}
	}
}
