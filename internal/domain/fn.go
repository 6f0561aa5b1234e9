package domain

// Condition is the predicate checked by the waiter.
//
// It takes no arguments, returns whether the awaited state has been reached,
// and must be synchronous: it may not block, perform I/O, or suspend. It may
// be invoked an unbounded number of times before it is observed true or the
// wait limit elapses, so it should be side-effect-light and cheap.
//
// Any state the condition closes over is owned by the caller. The waiter only
// reads that state through the condition and never mutates it; correctness of
// concurrent mutation by other goroutines is the caller's responsibility.
type Condition func() bool
