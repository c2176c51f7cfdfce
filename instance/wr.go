package instance

import (
	"fmt"
	"math/big"
	"strings"
)

// WR is an immutable Weight Restriction instance: a set of parties with
// integer weights, and a pair of thresholds such that any coalition
// holding less than AlphaW of total weight must hold strictly less than
// AlphaN of total tickets.
//
// Invariant: 0 <= AlphaW < AlphaN <= 1; N >= 1; at least one weight > 0.
type WR struct {
	N       int
	Weights []*big.Int
	AlphaW  *big.Rat
	AlphaN  *big.Rat

	// TotalWeight is the sum of Weights.
	TotalWeight *big.Int
	// ThresholdWeight is AlphaW * TotalWeight; an adversarial coalition
	// under the restriction holds strictly less weight than this.
	ThresholdWeight *big.Rat
}

// NewWR validates and constructs a WR instance. weights must be
// nonnegative big.Int values, not empty, and not all zero. Thresholds
// must satisfy 0 <= alphaW < alphaN <= 1.
func NewWR(weights []*big.Int, alphaW, alphaN *big.Rat) (*WR, error) {
	if len(weights) == 0 {
		return nil, ErrEmptyWeights
	}

	total := new(big.Int)
	allZero := true
	for _, w := range weights {
		if w.Sign() != 0 {
			allZero = false
		}
		total.Add(total, w)
	}
	if allZero {
		return nil, ErrAllZeroWeights
	}

	zero := new(big.Rat)
	one := big.NewRat(1, 1)
	if alphaW.Cmp(zero) < 0 || alphaW.Cmp(alphaN) >= 0 || alphaN.Cmp(one) > 0 {
		return nil, ErrThresholdOrder
	}

	thresholdWeight := new(big.Rat).Mul(alphaW, new(big.Rat).SetInt(total))

	return &WR{
		N:               len(weights),
		Weights:         weights,
		AlphaW:          alphaW,
		AlphaN:          alphaN,
		TotalWeight:     total,
		ThresholdWeight: thresholdWeight,
	}, nil
}

// String renders a compact, human-readable summary, used in info-level log
// lines at the start of a solve.
func (inst *WR) String() string {
	parts := make([]string, inst.N)
	for i, w := range inst.Weights {
		parts[i] = w.String()
	}
	return fmt.Sprintf("WeightRestriction < n=%d, weights=[%s], alpha_w=%s, alpha_n=%s >",
		inst.N, strings.Join(parts, " "), inst.AlphaW.RatString(), inst.AlphaN.RatString())
}
