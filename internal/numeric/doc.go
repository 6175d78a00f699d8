// Package numeric provides integer and floating-point helpers whose results
// are checked before they are returned.
//
// Functions that can leave the int64 range ([Factorial], [Fibonacci],
// [Power]) detect overflow ahead of each multiply or add and return an error
// wrapping [ErrOverflow] or [ErrOutOfRange] instead of a wrapped value.
// Invalid input such as a negative factorial argument wraps [ErrNegative],
// so callers can tell the two apart with errors.Is.
//
// [GCD], [LCM], [IsPrime], [Abs], [Min] and [Max] are total for inputs in
// the 32-bit range and never fail.
//
// # Example
//
//	f, err := numeric.Factorial(21)
//	if errors.Is(err, numeric.ErrOutOfRange) {
//	    // 21! does not fit in int64
//	}
package numeric
