// Package calc implements the calculator behind `corelab calc` and
// `corelab eval`: a prefix command language over the numeric package.
package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/san-kum/corelab/internal/numeric"
)

const (
	MaxLineLength = 255
	MaxOpLength   = 31

	DefaultPrecision = 2
	sqrtPrecision    = 6
)

// Command is one parsed input line.
type Command struct {
	Op       Op
	Name     string
	Operands []float64
}

// ParseLine splits "op [a [b]]" into a Command. Operand counts are checked
// by Evaluate so that help and quit parse without numbers.
func ParseLine(line string) (Command, error) {
	if len(line) > MaxLineLength {
		return Command{}, ErrInputTooLong
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, ErrNoInput
	}
	name := fields[0]
	if len(name) > MaxOpLength {
		return Command{}, ErrInputTooLong
	}

	cmd := Command{Op: ParseOp(name), Name: name}
	if cmd.Op == OpInvalid {
		if unsafeName(name) {
			return cmd, ErrUnsafeOp
		}
		return cmd, fmt.Errorf("%w: %s", ErrUnknownOp, name)
	}

	for _, f := range fields[1:min(len(fields), 3)] {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return cmd, fmt.Errorf("%w: %q", ErrInvalidNumber, f)
		}
		cmd.Operands = append(cmd.Operands, x)
	}
	return cmd, nil
}

// unsafeName reports whether an unknown operation name must not be echoed
// back to the terminal.
func unsafeName(name string) bool {
	for _, r := range name {
		if r == '%' || unicode.IsControl(r) {
			return true
		}
	}
	return false
}

// Calculator evaluates commands. Precision is the number of decimals used for
// floating-point results.
type Calculator struct {
	Precision int
}

// New returns a Calculator using precision decimals, or DefaultPrecision
// when precision is negative.
func New(precision int) *Calculator {
	if precision < 0 {
		precision = DefaultPrecision
	}
	return &Calculator{Precision: precision}
}

// Evaluate runs cmd and renders the result line. help and quit are handled
// by the REPL and are rejected here.
func (c *Calculator) Evaluate(cmd Command) (string, error) {
	want := cmd.Op.Arity()
	if want == 0 {
		return "", fmt.Errorf("%w: %s", ErrNotImplemented, cmd.Op)
	}
	if len(cmd.Operands) < want {
		return "", &OperandError{Op: cmd.Op, Want: want, Got: len(cmd.Operands)}
	}

	a := cmd.Operands[0]
	var b float64
	if want == 2 {
		b = cmd.Operands[1]
	}

	switch cmd.Op {
	case OpAdd:
		return c.float(a + b), nil
	case OpSub:
		return c.float(a - b), nil
	case OpMul:
		return c.float(a * b), nil
	case OpDiv:
		if b == 0 {
			return "", ErrDivideByZero
		}
		return c.float(a / b), nil
	case OpSqrt:
		r, err := numeric.Sqrt(a)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Result: %.*f", sqrtPrecision, r), nil
	}

	x, err := toInt(a)
	if err != nil {
		return "", err
	}
	y, err := toInt(b)
	if err != nil {
		return "", err
	}

	switch cmd.Op {
	case OpMod:
		if y == 0 {
			return "", ErrModuloByZero
		}
		return integer(int64(x % y)), nil
	case OpPow:
		r, err := numeric.Power(x, y)
		if err != nil {
			return "", err
		}
		return integer(r), nil
	case OpGCD:
		return integer(int64(numeric.GCD(x, y))), nil
	case OpLCM:
		return integer(int64(numeric.LCM(x, y))), nil
	case OpFactorial:
		r, err := numeric.Factorial(x)
		if err != nil {
			return "", err
		}
		return integer(r), nil
	case OpFibonacci:
		r, err := numeric.Fibonacci(x)
		if err != nil {
			return "", err
		}
		return integer(r), nil
	case OpIsPrime:
		if numeric.IsPrime(x) {
			return fmt.Sprintf("Result: %d is prime", x), nil
		}
		return fmt.Sprintf("Result: %d is not prime", x), nil
	}
	return "", fmt.Errorf("%w: %s", ErrNotImplemented, cmd.Op)
}

func (c *Calculator) float(x float64) string {
	return fmt.Sprintf("Result: %.*f", c.Precision, x)
}

func integer(n int64) string {
	return "Result: " + strconv.FormatInt(n, 10)
}

// toInt truncates toward zero like a C cast, refusing values outside int32.
func toInt(x float64) (int, error) {
	if math.IsNaN(x) || x < math.MinInt32 || x > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %g", ErrOperandRange, x)
	}
	return int(x), nil
}
