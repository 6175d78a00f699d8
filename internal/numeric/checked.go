package numeric

import "math"

// MulInt64 returns a*b and true, or 0 and false when the product does not
// fit in an int64. The check runs before the multiply.
func MulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}

	switch {
	case a > 0 && b > 0:
		if a > math.MaxInt64/b {
			return 0, false
		}
	case a < 0 && b < 0:
		if a < math.MaxInt64/b {
			return 0, false
		}
	case a > 0: // b < 0
		if b < math.MinInt64/a {
			return 0, false
		}
	default: // a < 0, b > 0
		if a < math.MinInt64/b {
			return 0, false
		}
	}
	return a * b, true
}

// AddInt64 returns a+b and true, or 0 and false when the sum does not fit
// in an int64.
func AddInt64(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}
	return a + b, true
}
