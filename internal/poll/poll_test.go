package poll_test

import (
	"testing"

	"github.com/osmike/deadline/internal/domain"
	errs "github.com/osmike/deadline/internal/error"
	"github.com/osmike/deadline/internal/poll"

	"github.com/stretchr/testify/assert"
)

func TestNew_NilCondition(t *testing.T) {
	task, err := poll.New(nil)
	assert.Nil(t, task)
	assert.ErrorIs(t, err, errs.ErrNilCondition)
}

func TestPoll_TrueCompletes(t *testing.T) {
	task, err := poll.New(func() bool { return true })
	assert.NoError(t, err)

	assert.Equal(t, domain.Completed, task.Poll())
	assert.Equal(t, int64(1), task.Evaluations())
}

func TestPoll_FalseStaysPending(t *testing.T) {
	task, err := poll.New(func() bool { return false })
	assert.NoError(t, err)

	for i := 0; i < 5; i++ {
		assert.Equal(t, domain.Pending, task.Poll())
	}
	assert.Equal(t, int64(5), task.Evaluations())
}

func TestPoll_EvaluatesOncePerTurn(t *testing.T) {
	calls := 0
	task, err := poll.New(func() bool {
		calls++
		return calls >= 3
	})
	assert.NoError(t, err)

	assert.Equal(t, domain.Pending, task.Poll())
	assert.Equal(t, domain.Pending, task.Poll())
	assert.Equal(t, domain.Completed, task.Poll())
	assert.Equal(t, 3, calls)
	assert.Equal(t, int64(3), task.Evaluations())
}
