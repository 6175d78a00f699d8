package calc

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/san-kum/corelab/internal/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eval(t *testing.T, line string) (string, error) {
	t.Helper()
	cmd, err := ParseLine(line)
	require.NoError(t, err)
	return New(DefaultPrecision).Evaluate(cmd)
}

func TestParseLine(t *testing.T) {
	cmd, err := ParseLine("  add 1.5\t-2 ")
	require.NoError(t, err)
	assert.Equal(t, OpAdd, cmd.Op)
	assert.Equal(t, []float64{1.5, -2}, cmd.Operands)

	cmd, err = ParseLine("help")
	require.NoError(t, err)
	assert.Equal(t, OpHelp, cmd.Op)
	assert.Empty(t, cmd.Operands)

	_, err = ParseLine("+ 1 x")
	assert.ErrorIs(t, err, ErrInvalidNumber)

	_, err = ParseLine(strings.Repeat("1", MaxLineLength+1))
	assert.ErrorIs(t, err, ErrInputTooLong)

	_, err = ParseLine(strings.Repeat("a", MaxOpLength+1) + " 1")
	assert.ErrorIs(t, err, ErrInputTooLong)

	_, err = ParseLine("frobnicate 1 2")
	assert.ErrorIs(t, err, ErrUnknownOp)

	_, err = ParseLine("%s%n 1 2")
	assert.ErrorIs(t, err, ErrUnsafeOp)

	_, err = ParseLine("bad\x1b[2J")
	assert.ErrorIs(t, err, ErrUnsafeOp)
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"+ 5 3", "Result: 8.00"},
		{"sub 2 5", "Result: -3.00"},
		{"* 2.5 4", "Result: 10.00"},
		{"/ 1 3", "Result: 0.33"},
		{"% 17 5", "Result: 2"},
		{"mod -7 3", "Result: -1"},
		{"^ 2 10", "Result: 1024"},
		{"pow 2 -1", "Result: 0"},
		{"gcd 48 18", "Result: 6"},
		{"lcm 4 6", "Result: 12"},
		{"! 5", "Result: 120"},
		{"fact 20", "Result: 2432902008176640000"},
		{"fib 10", "Result: 55"},
		{"prime 97", "Result: 97 is prime"},
		{"prime 1", "Result: 1 is not prime"},
		{"sqrt 2", "Result: 1.414214"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := eval(t, tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluatePrecision(t *testing.T) {
	cmd, err := ParseLine("/ 1 3")
	require.NoError(t, err)

	got, err := New(4).Evaluate(cmd)
	require.NoError(t, err)
	assert.Equal(t, "Result: 0.3333", got)

	got, err = New(-1).Evaluate(cmd)
	require.NoError(t, err)
	assert.Equal(t, "Result: 0.33", got)
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		line string
		want error
		msg  string
	}{
		{"/ 1 0", ErrDivideByZero, "Division by zero!"},
		{"% 1 0", ErrModuloByZero, "Modulo by zero!"},
		{"% 1 0.5", ErrModuloByZero, "Modulo by zero!"},
		{"+ 1", ErrMissingOperand, "Missing operand. Two-operand operations require two numbers."},
		{"fact", ErrMissingOperand, "Missing operand. Single-operand operations require one number."},
		{"fact 25", numeric.ErrOutOfRange, "Factorial too large (max 20!)"},
		{"fact -1", numeric.ErrNegative, "Factorial undefined for negative numbers!"},
		{"fib 93", numeric.ErrOutOfRange, "Fibonacci index too large (max 92)!"},
		{"^ 10 19", numeric.ErrOverflow, "Power result does not fit in a 64-bit integer!"},
		{"sqrt -4", numeric.ErrNegative, "Square root of negative number!"},
		{"gcd 1e12 2", ErrOperandRange, "Operand does not fit in a 32-bit integer!"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := eval(t, tt.line)
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.msg, Message(err))
		})
	}
}

func TestREPL(t *testing.T) {
	in := strings.NewReader("+ 5 3\n\nfact 25\nnope 1\n%x%x\nhelp\nquit\n+ 1 1\n")
	var out bytes.Buffer

	err := NewREPL(nil).Run(context.Background(), in, &out)
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "Result: 8.00")
	assert.Contains(t, got, "Error: Factorial too large (max 20!)")
	assert.Contains(t, got, "Error: Unknown operation. Type 'help' for list.")
	assert.Contains(t, got, "Error: Invalid operation format. Type 'help' for list.")
	assert.NotContains(t, got, "%x%x")
	assert.Contains(t, got, "=== Calculator Help ===")
	assert.True(t, strings.HasSuffix(got, "Goodbye!\n"))
	assert.NotContains(t, got, "Result: 2.00")
}

func TestREPLEndOfInput(t *testing.T) {
	var out bytes.Buffer
	err := NewREPL(New(1)).Run(context.Background(), strings.NewReader("* 3 3"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Result: 9.0")
	assert.NotContains(t, out.String(), "Goodbye!")
}
