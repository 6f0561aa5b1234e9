package assert_test

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	dlassert "github.com/osmike/deadline/assert"

	"github.com/stretchr/testify/assert"
)

// fakeT captures fatal failures instead of terminating the test, so the
// failure path of the assertion surface can itself be asserted on. The real
// *testing.T is embedded so methods testify probes for (Name and friends)
// keep working; only the failure-reporting methods are intercepted.
type fakeT struct {
	testing.TB
	failed bool
	log    strings.Builder
}

func newFakeT(t *testing.T) *fakeT {
	return &fakeT{TB: t}
}

func (f *fakeT) Helper() {}

func (f *fakeT) Errorf(format string, args ...interface{}) {
	f.log.WriteString(fmt.Sprintf(format, args...))
}

func (f *fakeT) Fail() {
	f.failed = true
}

func (f *fakeT) FailNow() {
	f.failed = true
}

func TestDeadline_AlreadyTrue(t *testing.T) {
	ok := dlassert.Deadline(t, 10*time.Millisecond, func() bool { return true })
	assert.True(t, ok)
}

func TestDeadline_WaitsUntilTrue(t *testing.T) {
	x := atomic.Int32{}
	x.Store(41)
	y := int32(42)

	go func() {
		time.Sleep(5 * time.Millisecond)
		x.Add(1)
	}()

	ok := dlassert.Deadline(t, 250*time.Millisecond, func() bool {
		return x.Load() == y
	}, "x == y")
	assert.True(t, ok)
}

func TestDeadline_TimesOut_MessageContainsCondition(t *testing.T) {
	ft := newFakeT(t)
	x := 1
	y := 2

	ok := dlassert.Deadline(ft, time.Millisecond, func() bool { return x == y },
		"func() bool { return x == y }")

	assert.False(t, ok)
	assert.True(t, ft.failed)
	assert.Contains(t, ft.log.String(), "the deadline has elapsed for condition: x == y")
}

func TestDeadline_TimesOut_GenericMessage(t *testing.T) {
	ft := newFakeT(t)

	ok := dlassert.Deadline(ft, time.Millisecond, func() bool { return false })

	assert.False(t, ok)
	assert.True(t, ft.failed)
	assert.Contains(t, ft.log.String(), "the deadline has elapsed")
	assert.NotContains(t, ft.log.String(), "for condition:")
}

func TestDeadlineContext_Canceled(t *testing.T) {
	ft := newFakeT(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok := dlassert.DeadlineContext(ctx, ft, time.Second, func() bool { return false })

	assert.False(t, ok)
	assert.True(t, ft.failed)
	assert.Contains(t, ft.log.String(), "context canceled")
}
