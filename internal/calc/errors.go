package calc

import (
	"errors"
	"fmt"

	"github.com/san-kum/corelab/internal/numeric"
)

var (
	ErrInputTooLong   = errors.New("calc: input too long")
	ErrInvalidNumber  = errors.New("calc: invalid number")
	ErrNoInput        = errors.New("calc: empty input")
	ErrUnknownOp      = errors.New("calc: unknown operation")
	ErrUnsafeOp       = errors.New("calc: invalid operation format")
	ErrMissingOperand = errors.New("calc: missing operand")
	ErrDivideByZero   = errors.New("calc: division by zero")
	ErrModuloByZero   = errors.New("calc: modulo by zero")
	ErrOperandRange   = errors.New("calc: operand outside integer range")
	ErrNotImplemented = errors.New("calc: operation cannot be evaluated")
)

// OperandError explains how many operands an operation wanted.
type OperandError struct {
	Op   Op
	Want int
	Got  int
}

func (e *OperandError) Error() string {
	return fmt.Sprintf("calc: %s needs %d operand(s), got %d", e.Op, e.Want, e.Got)
}

func (e *OperandError) Unwrap() error {
	return ErrMissingOperand
}

// Message turns an error from ParseLine or Evaluate into the text shown
// after "Error: " in the REPL.
func Message(err error) string {
	var oe *OperandError
	switch {
	case errors.As(err, &oe) && oe.Want == 1:
		return "Missing operand. Single-operand operations require one number."
	case errors.As(err, &oe):
		return "Missing operand. Two-operand operations require two numbers."
	case errors.Is(err, ErrInputTooLong), errors.Is(err, ErrInvalidNumber):
		return "Invalid input format. Type 'help' for instructions."
	case errors.Is(err, ErrNoInput):
		return "Invalid input. Type 'help' for instructions."
	case errors.Is(err, ErrUnsafeOp):
		return "Invalid operation format. Type 'help' for list."
	case errors.Is(err, ErrUnknownOp):
		return "Unknown operation. Type 'help' for list."
	case errors.Is(err, ErrDivideByZero):
		return "Division by zero!"
	case errors.Is(err, ErrModuloByZero):
		return "Modulo by zero!"
	case errors.Is(err, ErrOperandRange):
		return "Operand does not fit in a 32-bit integer!"
	}

	var de *numeric.DomainError
	if errors.As(err, &de) {
		return domainMessage(de)
	}
	return err.Error()
}

func domainMessage(de *numeric.DomainError) string {
	switch de.Op {
	case "factorial":
		if errors.Is(de, numeric.ErrNegative) {
			return "Factorial undefined for negative numbers!"
		}
		return fmt.Sprintf("Factorial too large (max %d!)", numeric.MaxFactorialInput)
	case "fibonacci":
		if errors.Is(de, numeric.ErrNegative) {
			return "Invalid input for Fibonacci!"
		}
		return fmt.Sprintf("Fibonacci index too large (max %d)!", numeric.MaxFibonacciInput)
	case "power":
		return "Power result does not fit in a 64-bit integer!"
	case "sqrt":
		if errors.Is(de, numeric.ErrNegative) {
			return "Square root of negative number!"
		}
		return "Square root of a non-finite number!"
	}
	return de.Error()
}
