package deadline

import errs "github.com/osmike/deadline/internal/error"

var (
	// ErrDeadlineElapsed reports that the wait limit expired before the
	// condition was observed true. It is the only error the mechanism itself
	// produces once a wait is running; match it with errors.Is.
	ErrDeadlineElapsed = errs.ErrDeadlineElapsed

	// ErrNilCondition reports that no condition function was provided.
	ErrNilCondition = errs.ErrNilCondition

	// ErrNegativeWaitLimit reports a wait limit below zero. A zero limit is
	// valid and means the condition must already be true.
	ErrNegativeWaitLimit = errs.ErrNegativeWaitLimit
)
