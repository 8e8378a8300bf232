package ranges

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by every error this package returns.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func checkStepIsPositive[T Integer](step T) error {
	if step <= 0 {
		return invalidArgument("step must be positive, was: %d", step)
	}
	return nil
}
