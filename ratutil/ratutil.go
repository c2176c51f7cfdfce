package ratutil

import (
	"errors"
	"math/big"
)

// ErrEmptyInput is returned by LCM when called with no arguments.
// GCD tolerates empty input (its seed, 0, is already the identity).
var ErrEmptyInput = errors.New("ratutil: empty input")

// LCM returns the least common multiple of xs, seeded at 1. All xs must be
// positive. Returns ErrEmptyInput if xs is empty.
func LCM(xs ...*big.Int) (*big.Int, error) {
	if len(xs) == 0 {
		return nil, ErrEmptyInput
	}

	res := big.NewInt(1)
	gcd := new(big.Int)
	tmp := new(big.Int)
	for _, x := range xs {
		gcd.GCD(nil, nil, res, x)
		tmp.Div(res, gcd)
		res.Mul(tmp, x)
	}

	return res, nil
}

// GCD returns the greatest common divisor of xs, seeded at 0 — the
// identity for GCD, so GCD() == 0 and GCD(x) == x.
func GCD(xs ...*big.Int) *big.Int {
	res := big.NewInt(0)
	for _, x := range xs {
		res.GCD(nil, nil, res, x)
	}

	return res
}

// ReverseRange yields the elements of the forward range [start, stop) with
// the given step — start, start+step, start+2*step, ... while < stop —
// visited from largest to smallest. Equivalent to Python's
// reversed(range(start, stop, step)). step must be positive; if
// stop <= start the range is empty.
//
// The knapsack DP (package knapsack) must update its profit-indexed table
// high-to-low within a single item's pass: reusing a lower slot before it
// is read would let one item's weight be counted twice. ReverseRange
// exists to make that iteration order explicit at call sites instead of
// relying on a hand-written countdown loop.
func ReverseRange(start, stop, step int) func(yield func(int) bool) {
	if step <= 0 {
		panic("ratutil: ReverseRange step must be positive")
	}

	n := 0
	if stop > start {
		n = (stop-start+step-1) / step
	}

	return func(yield func(int) bool) {
		for i := n - 1; i >= 0; i-- {
			if !yield(start + i*step) {
				return
			}
		}
	}
}

// NormalizeWeights converts rational party weights into nonnegative
// integers, preserving all ratios between them and against thresholds.
// It multiplies every weight by the LCM of all denominators (of the
// weights and of every threshold in thresholds) and divides by the GCD of
// the resulting numerators.
func NormalizeWeights(weights []*big.Rat, thresholds ...*big.Rat) ([]*big.Int, error) {
	if len(weights) == 0 {
		return nil, ErrEmptyInput
	}

	denoms := make([]*big.Int, 0, len(weights)+len(thresholds))
	for _, w := range weights {
		denoms = append(denoms, w.Denom())
	}
	for _, t := range thresholds {
		denoms = append(denoms, t.Denom())
	}

	denomLCM, err := LCM(denoms...)
	if err != nil {
		return nil, err
	}

	numerators := make([]*big.Int, len(weights))
	for i, w := range weights {
		scaled := new(big.Rat).SetInt(denomLCM)
		scaled.Mul(scaled, w)
		// scaled is guaranteed integral: denomLCM is a multiple of w's denominator.
		numerators[i] = new(big.Int).Set(scaled.Num())
		numerators[i].Div(numerators[i], scaled.Denom())
	}

	numGCD := GCD(numerators...)
	out := make([]*big.Int, len(weights))
	if numGCD.Sign() == 0 {
		// all weights are zero; leave them as-is, callers reject this case.
		for i := range numerators {
			out[i] = new(big.Int).Set(numerators[i])
		}
		return out, nil
	}

	for i, n := range numerators {
		out[i] = new(big.Int).Div(n, numGCD)
	}

	return out, nil
}
