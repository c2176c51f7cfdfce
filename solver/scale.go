package solver

import (
	"math/big"

	"go.uber.org/zap"

	"github.com/katalvlaran/swiper/instance"
	"github.com/katalvlaran/swiper/knapsack"
)

// scaleUpperBound0 is the analytical upper bound s_hi^0 from spec.md §4.E:
// alphaN*(1-alphaW)*n / ((alphaN-alphaW)*W).
func scaleUpperBound0(inst *instance.WR) *big.Rat {
	one := big.NewRat(1, 1)
	num := new(big.Rat).Mul(inst.AlphaN, new(big.Rat).Sub(one, inst.AlphaW))
	num.Mul(num, new(big.Rat).SetInt64(int64(inst.N)))

	den := new(big.Rat).Sub(inst.AlphaN, inst.AlphaW)
	den.Mul(den, new(big.Rat).SetInt(inst.TotalWeight))

	return num.Quo(num, den)
}

// searchScale runs Phase 1: a coarse binary search over s using the
// knapsack upper bound, then (unless linear) an accelerated exact binary
// search, per spec.md §4.E. Returns sLow, sHigh, and allocations at each.
func searchScale(inst *instance.WR, opts Options, onOverflow func()) (sLow, sHigh *big.Rat, tLow, tHigh []*big.Int) {
	log := opts.logger()
	shift := inst.AlphaW
	eps := new(big.Rat).SetFrac(big.NewInt(1), maxWeight(inst.Weights))

	sHigh = scaleUpperBound0(inst)
	sLow = new(big.Rat)

	log.Debug("scale search: coarse phase starting", zap.String("s_high0", sHigh.RatString()))

	steps := 0
	for cmpDiff(sHigh, sLow, eps) {
		steps++
		sMid := new(big.Rat).Add(sHigh, sLow)
		sMid.Quo(sMid, big.NewRat(2, 1))

		tMid := allocate(inst.Weights, sMid, shift)
		if upperBoundValid(inst, tMid) {
			sHigh = sMid
		} else {
			sLow = sMid
		}
	}
	log.Debug("scale search: coarse phase converged", zap.Int("steps", steps))

	if opts.Linear {
		log.Debug("scale search: skipping exact refinement (linear mode)")
	} else {
		speed := new(big.Rat).Set(eps)
		sLow = new(big.Rat)

		steps = 0
		for cmpDiff(sHigh, sLow, eps) {
			steps++

			var sMid *big.Rat
			window := new(big.Rat).Sub(sHigh, sLow)
			if twice := new(big.Rat).Mul(speed, big.NewRat(2, 1)); twice.Cmp(window) < 0 {
				sMid = new(big.Rat).Sub(sHigh, speed)
				speed = twice
			} else {
				sMid = new(big.Rat).Add(sHigh, sLow)
				sMid.Quo(sMid, big.NewRat(2, 1))
			}

			tMid := allocate(inst.Weights, sMid, shift)
			sumMid := sumTickets(tMid)
			capacity := capacityOf(inst)
			u := upperBoundCap(inst, sumMid)

			r, _ := knapsack.Solve(inst.Weights, ticketsToInt(tMid), capacity, u, !opts.NoJIT, onOverflow)
			// inputs are always well-formed here (nonempty, matched lengths)

			threshold := new(big.Rat).Mul(inst.AlphaN, new(big.Rat).SetInt(sumMid))
			if new(big.Rat).SetInt64(int64(r)).Cmp(threshold) < 0 {
				sHigh = sMid
			} else {
				sLow = sMid
			}
		}
		log.Debug("scale search: exact phase converged", zap.Int("steps", steps))
	}

	tLow = allocate(inst.Weights, sLow, shift)
	tHigh = allocate(inst.Weights, sHigh, shift)

	return sLow, sHigh, tLow, tHigh
}

// cmpDiff reports whether hi-lo >= eps.
func cmpDiff(hi, lo, eps *big.Rat) bool {
	diff := new(big.Rat).Sub(hi, lo)
	return diff.Cmp(eps) >= 0
}

func capacityOf(inst *instance.WR) *big.Int {
	return new(big.Int).Sub(ceilRat(inst.ThresholdWeight), big.NewInt(1))
}

// upperBoundCap computes floor(alphaN*sum)+1 as a plain int, the profit
// cap U passed to the exact knapsack oracle.
func upperBoundCap(inst *instance.WR, sum *big.Int) int {
	v := new(big.Rat).Mul(inst.AlphaN, new(big.Rat).SetInt(sum))
	u := floorRat(v)
	u.Add(u, big.NewInt(1))
	return int(u.Int64())
}

