package knapsack

import (
	"math"
	"math/big"
)

var (
	maxInt64Big = big.NewInt(math.MaxInt64)
	int64InfBig = big.NewInt(int64Inf)
)

// Solve is the public oracle entry point (component C/H of the spec): it
// finds the maximum profit achievable within capacity, exact up to
// upperBound+1. When accel is true it tries the int64 fast path first,
// falling back to the arbitrary-precision path — and invoking onOverflow
// exactly once — if any of sum(weights), sum(profits), or capacity would
// not fit in 64 bits, or if sum(weights) reaches the int64 ring's
// unreachable sentinel (2^62). When accel is false (the --no-jit flag) it
// always uses the big.Int path.
//
// onOverflow may be nil; it is called at most once per Solve call.
func Solve(weights []*big.Int, profits []int, capacity *big.Int, upperBound int, accel bool, onOverflow func()) (int, error) {
	if len(weights) == 0 {
		return 0, ErrEmptyItems
	}
	if len(weights) != len(profits) {
		return 0, ErrLengthMismatch
	}

	if accel {
		if w64, p64, c64, ok := tryFit64(weights, profits, capacity); ok {
			return knapsackGeneric[int64](w64, p64, c64, upperBound, int64Ring{}), nil
		}
		if onOverflow != nil {
			onOverflow()
		}
	}

	return knapsackGeneric[*big.Int](weights, profits, capacity, upperBound, newBigRing(weights)), nil
}

// tryFit64 reports whether weights, profits, and capacity (and their
// sums) all fit within a signed 64-bit range, with sum(weights) also
// below int64Inf, returning int64 copies if so.
func tryFit64(weights []*big.Int, profits []int, capacity *big.Int) ([]int64, []int, int64, bool) {
	if capacity.CmpAbs(maxInt64Big) > 0 {
		return nil, nil, 0, false
	}

	sumW := new(big.Int)
	sumP := 0
	w64 := make([]int64, len(weights))
	for i, w := range weights {
		if w.CmpAbs(maxInt64Big) > 0 {
			return nil, nil, 0, false
		}
		sumW.Add(sumW, w)
		w64[i] = w.Int64()
		sumP += profits[i]
	}
	if sumW.CmpAbs(maxInt64Big) > 0 {
		return nil, nil, 0, false
	}
	// int64Ring marks unreachable profit levels with int64Inf, so every
	// reachable weight sum must stay strictly below it.
	if sumW.Cmp(int64InfBig) >= 0 {
		return nil, nil, 0, false
	}
	if int64(sumP) < 0 || big.NewInt(int64(sumP)).CmpAbs(maxInt64Big) > 0 {
		return nil, nil, 0, false
	}

	return w64, profits, capacity.Int64(), true
}
