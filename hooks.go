package deadline

// Hooks represents lifecycle callback functions that can be optionally
// provided to respond to the stages of a single wait.
//
// Hooks are invoked synchronously on the waiting goroutine and receive a
// state snapshot; mutating the snapshot has no effect on the wait.
type Hooks struct {
	// OnStart is executed right before the first evaluation of the condition.
	// The snapshot carries the wait's ID, description, and start timestamp.
	OnStart func(state WaitState)

	// OnCompleted is executed when the condition is observed true within the
	// wait limit, before the state is recorded in monitoring.
	OnCompleted func(state WaitState)

	// OnElapsed is executed when the wait limit expires before the condition
	// is observed true. The snapshot's Err is ErrDeadlineElapsed.
	OnElapsed func(state WaitState)
}
