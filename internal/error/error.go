package error

import (
	"errors"
	"fmt"
)

var (
	ErrNilCondition      = errors.New("condition is empty")
	ErrNegativeWaitLimit = errors.New("negative wait limit")
)

var (
	ErrDeadlineElapsed = errors.New("the deadline has elapsed")
)

func New(err error, str string) error {
	return fmt.Errorf("%w: %s", err, str)
}
