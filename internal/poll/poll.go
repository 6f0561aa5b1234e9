package poll

import (
	"sync/atomic"

	"github.com/osmike/deadline/internal/domain"
	errs "github.com/osmike/deadline/internal/error"
)

// Task adapts a plain boolean condition into a unit of work that can be
// driven by a cooperative polling loop.
//
// A Task never times out or fails by itself; bounding the wait is entirely
// the responsibility of the race layer. It tolerates being polled an
// unbounded, non-deterministic number of times with no ill effect.
type Task struct {
	cond  domain.Condition
	evals atomic.Int64
}

// New wraps cond in a pollable Task.
//
// Returns:
//   - ErrNilCondition if cond is nil.
func New(cond domain.Condition) (*Task, error) {
	if cond == nil {
		return nil, errs.ErrNilCondition
	}
	return &Task{cond: cond}, nil
}

// Poll evaluates the condition exactly once.
//
// Returns Completed when the condition is true; the task is then terminal and
// must not be polled again. Returns Pending otherwise: the condition has no
// event source that could signal readiness later, so a pending task must be
// granted another turn by the driving loop.
func (t *Task) Poll() domain.Outcome {
	t.evals.Add(1)
	if t.cond() {
		return domain.Completed
	}
	return domain.Pending
}

// Evaluations returns how many times the condition has been evaluated so far.
// Safe to call concurrently with Poll.
func (t *Task) Evaluations() int64 {
	return t.evals.Load()
}
