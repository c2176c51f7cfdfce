package instance

import (
	"fmt"
	"math/big"
	"strings"
)

// WQ is an immutable Weight Qualification instance: the dual of WR. Any
// coalition holding more than BetaW of total weight must hold strictly
// more than BetaN of total tickets.
//
// Invariant: 0 <= BetaN < BetaW <= 1; N >= 1; at least one weight > 0.
type WQ struct {
	N       int
	Weights []*big.Int
	BetaW   *big.Rat
	BetaN   *big.Rat
}

// NewWQ validates and constructs a WQ instance. Thresholds must satisfy
// 0 <= betaN < betaW <= 1.
func NewWQ(weights []*big.Int, betaW, betaN *big.Rat) (*WQ, error) {
	if len(weights) == 0 {
		return nil, ErrEmptyWeights
	}

	allZero := true
	for _, w := range weights {
		if w.Sign() != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return nil, ErrAllZeroWeights
	}

	zero := new(big.Rat)
	one := big.NewRat(1, 1)
	if betaN.Cmp(zero) < 0 || betaN.Cmp(betaW) >= 0 || betaW.Cmp(one) > 0 {
		return nil, ErrThresholdOrder
	}

	return &WQ{N: len(weights), Weights: weights, BetaW: betaW, BetaN: betaN}, nil
}

// ToWR reduces this WQ instance to the equivalent WR instance on the same
// weights, via (AlphaW, AlphaN) = (1-BetaW, 1-BetaN).
func (q *WQ) ToWR() (*WR, error) {
	one := big.NewRat(1, 1)
	alphaW := new(big.Rat).Sub(one, q.BetaW)
	alphaN := new(big.Rat).Sub(one, q.BetaN)

	return NewWR(q.Weights, alphaW, alphaN)
}

// String renders a compact, human-readable summary.
func (q *WQ) String() string {
	parts := make([]string, q.N)
	for i, w := range q.Weights {
		parts[i] = w.String()
	}
	return fmt.Sprintf("WeightQualification < n=%d, weights=[%s], beta_w=%s, beta_n=%s >",
		q.N, strings.Join(parts, " "), q.BetaW.RatString(), q.BetaN.RatString())
}
