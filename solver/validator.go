package solver

import (
	"math/big"

	"github.com/katalvlaran/swiper/instance"
	"github.com/katalvlaran/swiper/knapsack"
)

// IsValid decides whether allocation t satisfies the WR property for
// inst: the largest adversarial coalition with weight at most
// ceil(inst.ThresholdWeight)-1 must hold strictly less than
// inst.AlphaN*sum(t) tickets. It always uses the accelerated backend;
// the Verify assertions (verify.go) call isValid directly to honor
// Options.NoJIT.
func IsValid(inst *instance.WR, t []*big.Int) (bool, error) {
	return isValid(inst, t, true, nil)
}

// isValid is IsValid with explicit backend control and an optional
// overflow callback, used by assertValid so it honors Options.NoJIT.
func isValid(inst *instance.WR, t []*big.Int, accel bool, onOverflow func()) (bool, error) {
	capacity := new(big.Int).Sub(ceilRat(inst.ThresholdWeight), big.NewInt(1))
	sum := sumTickets(t)
	upperBound := new(big.Rat).Mul(inst.AlphaN, new(big.Rat).SetInt(sum))
	u := floorRat(upperBound)
	u.Add(u, big.NewInt(1))

	r, err := knapsack.Solve(inst.Weights, ticketsToInt(t), capacity, int(u.Int64()), accel, onOverflow)
	if err != nil {
		return false, err
	}

	return new(big.Rat).SetInt64(int64(r)).Cmp(upperBound) < 0, nil
}

// upperBoundValid is the coarse, knapsack-upper-bound variant of isValid
// used by the coarse search phases (1a, 2a): it overestimates adversary
// profit, so a "valid" verdict here is conservative (never a false
// positive for validity).
func upperBoundValid(inst *instance.WR, t []*big.Int) bool {
	capacity := new(big.Int).Sub(ceilRat(inst.ThresholdWeight), big.NewInt(1))
	sum := sumTickets(t)
	threshold := new(big.Rat).Mul(inst.AlphaN, new(big.Rat).SetInt(sum))

	ub := knapsack.UpperBound(inst.Weights, ticketsToInt(t), capacity)
	return ub.Cmp(threshold) < 0
}
