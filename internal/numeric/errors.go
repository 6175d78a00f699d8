package numeric

import (
	"errors"
	"strings"
)

// Domain errors for numeric operations.
var (
	// ErrNegative indicates an input below the function's domain.
	ErrNegative = errors.New("numeric: negative input")

	// ErrOutOfRange indicates a valid input whose result cannot be
	// represented.
	ErrOutOfRange = errors.New("numeric: input outside representable range")

	// ErrOverflow indicates a checked multiply or add would have wrapped.
	ErrOverflow = errors.New("numeric: int64 overflow")

	// ErrNotFinite indicates a NaN or infinite floating-point input.
	ErrNotFinite = errors.New("numeric: input is not finite")
)

// DomainError records which operation rejected which argument.
type DomainError struct {
	Op  string
	Arg string
	Err error
}

func (e *DomainError) Error() string {
	return "numeric: " + e.Op + "(" + e.Arg + "): " + strings.TrimPrefix(e.Err.Error(), "numeric: ")
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
