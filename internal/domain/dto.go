package domain

import "time"

// Wait describes a single condition wait to be executed by the waiter.
//
// A Wait is constructed at the call site and consumed entirely by one
// invocation; no field outlives a single deadline evaluation.
type Wait struct {
	// ID is a unique identifier for the wait, used as the monitoring key.
	// If empty, the waiter assigns a generated identifier.
	ID string

	// Description is an optional human-readable rendering of the condition
	// (e.g. "counter == 42"). It is carried into state reports and failure
	// messages; if empty, a generic message is used instead.
	Description string

	// WaitLimit is the maximum duration the condition is allowed to take
	// before the wait resolves as Elapsed. It is fixed at call time and must
	// be non-negative; zero means the condition must already be true.
	WaitLimit time.Duration

	// Cond is the condition evaluated on every scheduler turn until it
	// returns true or WaitLimit expires. It must not be nil.
	Cond Condition
}

// StateDTO is a lightweight snapshot of a wait's runtime state, passed to
// lifecycle hooks and monitoring backends.
type StateDTO struct {
	// ID is the identifier of the wait whose state is represented.
	ID string

	// Description is the human-readable condition text, if one was provided.
	Description string

	// WaitLimit is the wall-clock budget the wait was given.
	WaitLimit time.Duration

	// StartAt indicates the timestamp of the first condition evaluation.
	// It is zero if the wait was rejected before evaluation started.
	StartAt time.Time

	// EndAt marks the timestamp when the wait resolved.
	// It remains zero while the wait is still in progress.
	EndAt time.Time

	// Evaluations records how many times the condition was evaluated.
	Evaluations int64

	// Outcome is the terminal result of the wait: Completed or Elapsed.
	// It is Pending while the wait is in progress or when the wait was
	// aborted by context cancellation.
	Outcome Outcome

	// Err holds the error the wait resolved with. It is nil on completion,
	// ErrDeadlineElapsed when the wait limit expired, or the propagated
	// context error when the surrounding context was canceled.
	Err error
}
