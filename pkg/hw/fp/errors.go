package fp

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrInvalidRoundingMode = fmt.Errorf("%w: invalid rounding mode", ErrInvalidArgument)
	ErrInvalidStride       = fmt.Errorf("%w: invalid vector stride", ErrInvalidArgument)
	ErrInvalidLen          = fmt.Errorf("%w: invalid vector length", ErrInvalidArgument)
)

func makeError(err error, message string, args ...interface{}) error {
	return fmt.Errorf("%w: "+message, append([]any{err}, args...)...)
}
