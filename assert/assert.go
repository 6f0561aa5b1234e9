// Package assert turns deadline waits into fatal test assertions.
//
// It is the only layer that converts an elapsed deadline into a
// test-terminating failure; the core deadline package reports timeouts as
// ordinary error values so that callers with custom recovery logic can react
// differently.
package assert

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/osmike/deadline"
)

// Deadline requires cond to return true before waitLimit elapses.
//
// On success it returns true silently. On timeout it fails the test fatally
// with "the deadline has elapsed for condition: <description>", where the
// optional description is a best-effort textual rendering of the condition
// (normalized via deadline.NormalizeDescription); without a description the
// generic "the deadline has elapsed" message is used.
//
// Example:
//
//	assert.Deadline(t, 10*time.Millisecond, func() bool {
//		return counter.Load() == 42
//	}, "counter == 42")
func Deadline(t testing.TB, waitLimit time.Duration, cond deadline.Condition, description ...string) bool {
	t.Helper()
	return DeadlineContext(context.Background(), t, waitLimit, cond, description...)
}

// DeadlineContext is Deadline with an explicit context. Cancellation of ctx
// before the condition is observed true also fails the test fatally, with
// the context error in the message.
func DeadlineContext(ctx context.Context, t testing.TB, waitLimit time.Duration, cond deadline.Condition, description ...string) bool {
	t.Helper()

	err := deadline.New(deadline.Config{}).Await(ctx, waitLimit, cond)
	if err == nil {
		return true
	}

	msg := err.Error()
	if len(description) > 0 {
		if desc := deadline.NormalizeDescription(description[0]); desc != "" {
			msg = fmt.Sprintf("%s for condition: %s", msg, desc)
		}
	}
	require.Fail(t, msg)
	return false
}
