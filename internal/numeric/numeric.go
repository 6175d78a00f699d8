package numeric

import (
	"math"
	"strconv"
)

const (
	// MaxFactorialInput is the largest n whose factorial fits in int64.
	MaxFactorialInput = 20

	// MaxFibonacciInput is the largest n whose Fibonacci number fits in
	// int64; F(93) does not.
	MaxFibonacciInput = 92

	// MaxPowerExponent bounds Power's exponent for bases other than
	// -1, 0 and 1.
	MaxPowerExponent = 63

	// SqrtTolerance is the step size at which Sqrt stops iterating.
	SqrtTolerance = 1e-10

	maxNewtonIterations = 2048
)

// GCD returns the greatest common divisor of |a| and |b| by Euclid's
// algorithm. GCD(0, b) is |b| and GCD(0, 0) is 0. The only result with no
// int representation is 2^63, from GCD(math.MinInt, 0) or
// GCD(math.MinInt, math.MinInt); it comes back as math.MinInt.
func GCD(a, b int) int {
	x, y := magnitude(a), magnitude(b)
	for y != 0 {
		x, y = y, x%y
	}
	return int(x)
}

// LCM returns the least common multiple of |a| and |b|, or 0 when either
// is 0. It divides before multiplying, which narrows but does not remove
// the overflow window.
func LCM(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return absInt((a / GCD(a, b)) * b)
}

// IsPrime reports whether n is prime using trial division by 2, 3 and then
// 6k±1 up to √n.
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := 5; i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// Factorial returns n!.
func Factorial(n int) (int64, error) {
	if n < 0 {
		return 0, domainErr("factorial", n, ErrNegative)
	}
	if n > MaxFactorialInput {
		return 0, domainErr("factorial", n, ErrOutOfRange)
	}

	result := int64(1)
	for i := int64(2); i <= int64(n); i++ {
		next, ok := MulInt64(result, i)
		if !ok {
			return 0, domainErr("factorial", n, ErrOverflow)
		}
		result = next
	}
	return result, nil
}

// Fibonacci returns F(n) with F(0) = 0 and F(1) = 1.
func Fibonacci(n int) (int64, error) {
	if n < 0 {
		return 0, domainErr("fibonacci", n, ErrNegative)
	}
	if n <= 1 {
		return int64(n), nil
	}
	if n > MaxFibonacciInput {
		return 0, domainErr("fibonacci", n, ErrOutOfRange)
	}

	prev, curr := int64(0), int64(1)
	for i := 2; i <= n; i++ {
		next, ok := AddInt64(prev, curr)
		if !ok {
			return 0, domainErr("fibonacci", n, ErrOverflow)
		}
		prev, curr = curr, next
	}
	return curr, nil
}

// Power returns base**exp by square-and-multiply. A negative exponent
// yields 0; rational results are not supported. Bases -1, 0 and 1 are
// answered directly for any exponent, every other base fails for
// exp > MaxPowerExponent.
func Power(base, exp int) (int64, error) {
	switch {
	case exp < 0:
		return 0, nil
	case exp == 0:
		return 1, nil
	case base == 0:
		return 0, nil
	case base == 1:
		return 1, nil
	case base == -1:
		if exp%2 == 0 {
			return 1, nil
		}
		return -1, nil
	}

	if exp > MaxPowerExponent {
		return 0, powerErr(base, exp, ErrOutOfRange)
	}

	result := int64(1)
	b := int64(base)
	for e := exp; e > 0; e >>= 1 {
		var ok bool
		if e&1 == 1 {
			if result, ok = MulInt64(result, b); !ok {
				return 0, powerErr(base, exp, ErrOverflow)
			}
		}
		// the last square is never used
		if e > 1 {
			if b, ok = MulInt64(b, b); !ok {
				return 0, powerErr(base, exp, ErrOverflow)
			}
		}
	}
	return result, nil
}

// Sqrt returns √x by Newton's method starting from x, stopping once an
// iteration moves the estimate by no more than SqrtTolerance.
func Sqrt(x float64) (float64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, &DomainError{Op: "sqrt", Arg: strconv.FormatFloat(x, 'g', -1, 64), Err: ErrNotFinite}
	}
	if x < 0 {
		return 0, &DomainError{Op: "sqrt", Arg: strconv.FormatFloat(x, 'g', -1, 64), Err: ErrNegative}
	}
	if x == 0 {
		return 0, nil
	}

	// Large inputs can oscillate between neighbouring floats whose gap
	// exceeds the tolerance, hence the iteration cap.
	est := x
	for range maxNewtonIterations {
		prev := est
		est = (est + x/est) / 2
		if Abs(est-prev) <= SqrtTolerance {
			break
		}
	}
	return est, nil
}

// Abs returns |x|.
func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of a and b.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// magnitude is |n| as a uint64, exact for math.MinInt.
func magnitude(n int) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}
	return uint64(n)
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func powerErr(base, exp int, err error) error {
	return &DomainError{Op: "power", Arg: strconv.Itoa(base) + ", " + strconv.Itoa(exp), Err: err}
}

func domainErr(op string, n int, err error) error {
	return &DomainError{Op: op, Arg: strconv.Itoa(n), Err: err}
}
