// Package deadline provides a deadline-bounded waiting primitive: it
// repeatedly evaluates a caller-supplied boolean condition until the
// condition returns true or a fixed wall-clock budget expires.
//
// It is intended for test code asserting eventual conditions ("this counter
// will reach 42 within 10ms") without blocking sleeps: the condition is
// re-checked once per scheduler turn, interleaved with the goroutines that
// eventually make it true, and a successful wait resolves immediately rather
// than waiting out the remainder of the budget.
//
// Features:
//   - A single-call API for racing a condition against a wait limit.
//   - Per-wait lifecycle hooks (OnStart, OnCompleted, OnElapsed).
//   - Pluggable monitoring of wait outcomes, evaluation counts, and latency.
//   - A fatal-assertion surface for tests in the assert subpackage.
//
// Example usage:
//
//	counter := atomic.Int32{}
//	counter.Store(41)
//
//	go func() {
//		time.Sleep(5 * time.Millisecond)
//		counter.Add(1)
//	}()
//
//	err := deadline.Await(10*time.Millisecond, func() bool {
//		return counter.Load() == 42
//	})
//	// err is nil: the condition became true well within the limit.
package deadline

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/osmike/deadline/internal/domain"
	errs "github.com/osmike/deadline/internal/error"
	"github.com/osmike/deadline/internal/poll"
	"github.com/osmike/deadline/internal/race"
)

// Condition is the zero-argument predicate checked for eventual truth.
//
// It must be synchronous and side-effect-light: it may be invoked an
// unbounded number of times before it is observed true or the wait limit
// elapses. State it closes over is owned by the caller and only read here.
type Condition = domain.Condition

// Wait describes a single configured condition wait.
//
// Parameters:
//   - ID: Unique identifier for the wait (auto-assigned when empty).
//   - Description: Human-readable rendering of the condition, used in
//     state reports and failure messages.
//   - WaitLimit: Maximum duration before the wait resolves as Elapsed.
//     Must be non-negative; zero means the condition must already be true.
//   - Cond: The condition evaluated until true or timeout.
type Wait = domain.Wait

// WaitState is a snapshot of a wait's runtime state: start/end timestamps,
// number of condition evaluations, terminal outcome, and resolution error.
//
// It is passed to lifecycle hooks and monitoring backends, and returned by
// AwaitWait for logging, debugging, or exposing wait results via API.
type WaitState = domain.StateDTO

// Outcome represents the terminal result of a wait.
//
// Possible outcomes:
//   - Completed: condition observed true within the wait limit.
//   - Elapsed: wait limit expired first.
//   - Pending: wait not yet decided (or aborted by context cancellation).
type Outcome = domain.Outcome

const (
	Pending   = domain.Pending
	Completed = domain.Completed
	Elapsed   = domain.Elapsed
)

// Monitoring defines an interface for recording and retrieving the state of
// executed waits.
//
// Implementations can persist wait states in various ways, such as:
// - In-memory storage for debugging and tests (see DefaultMonitor).
// - Forwarding to logging or metrics systems.
type Monitoring interface {
	// SaveState stores the state snapshot of a resolved wait, keyed by its
	// wait ID. Called once per wait, after the outcome is decided.
	SaveState(state WaitState)

	// GetStateByID retrieves the stored state for the given wait ID.
	GetStateByID(id string) (WaitState, bool)

	// GetStates returns the stored state of all recorded waits.
	GetStates() []WaitState
}

// Config encapsulates the optional collaborators of a Waiter.
//
// Parameters:
//   - Hooks: Lifecycle callbacks invoked around each wait.
//   - Monitoring: Backend recording the state of resolved waits.
//     A nil Monitoring disables recording.
type Config struct {
	Hooks      Hooks
	Monitoring Monitoring
}

// Waiter executes condition waits.
//
// A zero-config Waiter is valid; hooks and monitoring are optional. A Waiter
// holds no per-wait state and is safe for concurrent use.
type Waiter struct {
	cfg Config
}

// New creates a Waiter with the given configuration.
func New(cfg Config) *Waiter {
	return &Waiter{cfg: cfg}
}

// Await races cond against waitLimit.
//
// The condition is evaluated once before the timer is armed and then once per
// scheduler turn. Await resolves as soon as the condition is observed true;
// it never waits out the remainder of the budget after success.
//
// Returns:
//   - nil when the condition became true within the limit.
//   - ErrDeadlineElapsed when the limit expired first.
//   - ErrNilCondition / ErrNegativeWaitLimit for invalid input.
//   - The context error when ctx was canceled before the wait was decided.
func (w *Waiter) Await(ctx context.Context, waitLimit time.Duration, cond Condition) error {
	_, err := w.AwaitWait(ctx, Wait{WaitLimit: waitLimit, Cond: cond})
	return err
}

// AwaitWait executes a configured Wait and returns its final state.
//
// Lifecycle: OnStart fires right before the first condition evaluation;
// OnCompleted or OnElapsed fires after the outcome is decided; the final
// state is then recorded in the monitoring backend, if one is configured.
//
// The returned error follows the same contract as Await. The returned
// WaitState carries the outcome, evaluation count, and timestamps regardless
// of how the wait resolved.
func (w *Waiter) AwaitWait(ctx context.Context, cfg Wait) (WaitState, error) {
	state := WaitState{
		ID:          cfg.ID,
		Description: cfg.Description,
		WaitLimit:   cfg.WaitLimit,
		Outcome:     Pending,
	}
	if state.ID == "" {
		state.ID = uuid.NewString()
	}

	if cfg.WaitLimit < 0 {
		state.Err = errs.New(errs.ErrNegativeWaitLimit, cfg.WaitLimit.String())
		return state, state.Err
	}
	task, err := poll.New(cfg.Cond)
	if err != nil {
		state.Err = err
		return state, err
	}

	state.StartAt = time.Now()
	runHook(w.cfg.Hooks.OnStart, state)

	outcome, err := race.Run(ctx, cfg.WaitLimit, task)

	state.EndAt = time.Now()
	state.Evaluations = task.Evaluations()
	state.Outcome = outcome

	switch {
	case err != nil:
		state.Err = err
	case outcome == Elapsed:
		state.Err = errs.ErrDeadlineElapsed
		runHook(w.cfg.Hooks.OnElapsed, state)
	default:
		runHook(w.cfg.Hooks.OnCompleted, state)
	}

	if w.cfg.Monitoring != nil {
		w.cfg.Monitoring.SaveState(state)
	}
	return state, state.Err
}

func runHook(hook func(WaitState), state WaitState) {
	if hook != nil {
		hook(state)
	}
}

var defaultWaiter = New(Config{})

// Await races cond against waitLimit on a package-level Waiter with no hooks
// or monitoring. See Waiter.Await for the full contract.
func Await(waitLimit time.Duration, cond Condition) error {
	return defaultWaiter.Await(context.Background(), waitLimit, cond)
}
