package bloom

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the root of every constructor failure. The specific
// reasons below wrap it, so callers can match the family with errors.Is or
// pin the exact cause.
var (
	ErrInvalidArgument = errors.New("bloom: invalid argument")

	ErrCapacityNotPositive = fmt.Errorf("%w: expected item count must be positive", ErrInvalidArgument)
	ErrBitCountNotPositive = fmt.Errorf("%w: bit count must be positive", ErrInvalidArgument)
	ErrRateNotANumber      = fmt.Errorf("%w: false positive rate must be a number", ErrInvalidArgument)
	ErrRateOutOfRange      = fmt.Errorf("%w: false positive rate must be in (0, 1)", ErrInvalidArgument)
)
