package domain

import "time"

// Outcome represents the result of driving a condition against a wait limit.
//
// Possible values include:
// - Pending:   The condition has been evaluated and is not yet true.
// - Completed: The condition was observed true within the wait limit.
// - Elapsed:   The wait limit expired before the condition was observed true.
type Outcome string

const (
	// Pending indicates the condition is not yet true. A pending task carries
	// no event source that could wake it later, so it always requests another
	// scheduler turn instead of waiting for an external signal.
	Pending Outcome = "pending"

	// Completed indicates the condition was observed true within the wait
	// limit. Completed is terminal: the condition is not evaluated again.
	Completed Outcome = "completed"

	// Elapsed indicates the wait limit expired before the condition was
	// observed true. Elapsed is terminal: the condition is not evaluated again.
	Elapsed Outcome = "elapsed"
)

const (
	// DEFAULT_TURN_INTERVAL is the pause between consecutive condition
	// evaluations while a wait is in progress. The condition is checked once
	// per turn; a shorter interval detects condition changes faster but
	// increases CPU usage. The interval is internal and not configurable.
	DEFAULT_TURN_INTERVAL = time.Millisecond
)
