package numeric

import (
	"math"
	"math/big"
	"math/rand/v2"
	"testing"
)

func TestMulInt64(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		want int64
		ok   bool
	}{
		{"zero", 0, math.MaxInt64, 0, true},
		{"small", 6, 7, 42, true},
		{"max times one", math.MaxInt64, 1, math.MaxInt64, true},
		{"max times two", math.MaxInt64, 2, 0, false},
		{"both negative overflow", math.MinInt64, -1, 0, false},
		{"both negative fits", -3, -4, 12, true},
		{"pos times neg at min", 1 << 62, -2, math.MinInt64, true},
		{"pos times neg overflow", 1 << 62, -3, 0, false},
		{"neg times pos overflow", math.MinInt64, 2, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MulInt64(tt.a, tt.b)
			if ok != tt.ok || got != tt.want {
				t.Errorf("MulInt64(%d, %d) = %d, %v; want %d, %v", tt.a, tt.b, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestAddInt64(t *testing.T) {
	if _, ok := AddInt64(math.MaxInt64, 1); ok {
		t.Error("MaxInt64+1 should overflow")
	}
	if _, ok := AddInt64(math.MinInt64, -1); ok {
		t.Error("MinInt64-1 should overflow")
	}
	if got, ok := AddInt64(math.MaxInt64, math.MinInt64); !ok || got != -1 {
		t.Errorf("MaxInt64+MinInt64 = %d, %v", got, ok)
	}
}

// TestCheckedMatchesBig compares the checked primitives against math/big on
// random operands.
func TestCheckedMatchesBig(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 43))
	minI, maxI := big.NewInt(math.MinInt64), big.NewInt(math.MaxInt64)
	fits := func(z *big.Int) bool { return z.Cmp(minI) >= 0 && z.Cmp(maxI) <= 0 }

	for i := 0; i < 20000; i++ {
		a := int64(rng.Uint64()) >> rng.UintN(63)
		b := int64(rng.Uint64()) >> rng.UintN(63)

		prod := new(big.Int).Mul(big.NewInt(a), big.NewInt(b))
		got, ok := MulInt64(a, b)
		if ok != fits(prod) || (ok && got != prod.Int64()) {
			t.Fatalf("MulInt64(%d, %d) = %d, %v; big says %s", a, b, got, ok, prod)
		}

		sum := new(big.Int).Add(big.NewInt(a), big.NewInt(b))
		got, ok = AddInt64(a, b)
		if ok != fits(sum) || (ok && got != sum.Int64()) {
			t.Fatalf("AddInt64(%d, %d) = %d, %v; big says %s", a, b, got, ok, sum)
		}
	}
}
