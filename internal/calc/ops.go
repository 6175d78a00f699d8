package calc

// Op identifies a calculator operation.
type Op int

const (
	OpInvalid Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
	OpGCD
	OpLCM
	OpFactorial
	OpFibonacci
	OpIsPrime
	OpSqrt
	OpHelp
	OpQuit
)

var opNames = map[string]Op{
	"+":     OpAdd,
	"add":   OpAdd,
	"-":     OpSub,
	"sub":   OpSub,
	"*":     OpMul,
	"mul":   OpMul,
	"/":     OpDiv,
	"div":   OpDiv,
	"%":     OpMod,
	"mod":   OpMod,
	"^":     OpPow,
	"pow":   OpPow,
	"gcd":   OpGCD,
	"lcm":   OpLCM,
	"!":     OpFactorial,
	"fact":  OpFactorial,
	"fib":   OpFibonacci,
	"prime": OpIsPrime,
	"sqrt":  OpSqrt,
	"help":  OpHelp,
	"?":     OpHelp,
	"quit":  OpQuit,
	"exit":  OpQuit,
}

var opLabels = [...]string{
	OpInvalid:   "invalid",
	OpAdd:       "add",
	OpSub:       "sub",
	OpMul:       "mul",
	OpDiv:       "div",
	OpMod:       "mod",
	OpPow:       "pow",
	OpGCD:       "gcd",
	OpLCM:       "lcm",
	OpFactorial: "fact",
	OpFibonacci: "fib",
	OpIsPrime:   "prime",
	OpSqrt:      "sqrt",
	OpHelp:      "help",
	OpQuit:      "quit",
}

// ParseOp maps an operator symbol or name to its Op, OpInvalid if unknown.
func ParseOp(s string) Op {
	return opNames[s]
}

func (o Op) String() string {
	if o < 0 || int(o) >= len(opLabels) {
		return "invalid"
	}
	return opLabels[o]
}

// Arity is the number of numeric operands the operation consumes.
func (o Op) Arity() int {
	switch o {
	case OpFactorial, OpFibonacci, OpIsPrime, OpSqrt:
		return 1
	case OpHelp, OpQuit, OpInvalid:
		return 0
	default:
		return 2
	}
}

const helpText = `
=== Calculator Help ===
Basic Operations:
  +, add      - Addition (a + b)
  -, sub      - Subtraction (a - b)
  *, mul      - Multiplication (a * b)
  /, div      - Division (a / b)
  %, mod      - Modulo (a % b)
  ^, pow      - Power (a ^ b)

Advanced Operations:
  gcd         - Greatest Common Divisor
  lcm         - Least Common Multiple
  !, fact     - Factorial (single number)
  fib         - Fibonacci (single number)
  prime       - Check if prime (single number)
  sqrt        - Square root (single number)

Commands:
  help, ?     - Show this help
  quit, exit  - Exit calculator

Usage: <operation> <number1> [number2]
Example: + 5 3
Example: fact 5
`

// Help returns the operation reference shown by the help command.
func Help() string {
	return helpText
}
