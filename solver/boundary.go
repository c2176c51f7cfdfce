package solver

import (
	"math/big"

	"go.uber.org/zap"

	"github.com/katalvlaran/swiper/instance"
	"github.com/katalvlaran/swiper/knapsack"
)

// searchBoundary runs Phase 2: given tLow (invalid) and tHigh (valid,
// differing from tLow only on the boundary set), decides via binary
// search over the integer cut k how many boundary parties must round up
// to stay valid. Returns the final allocation t^(kHigh).
func searchBoundary(inst *instance.WR, tLow, tHigh []*big.Int, opts Options, onOverflow func()) []*big.Int {
	log := opts.logger()
	bs := newBoundarySet(tLow, tHigh)

	kLow, kHigh := 0, len(bs.indices)

	steps := 0
	for kHigh-kLow > 1 {
		steps++
		kMid := (kHigh + kLow) / 2
		tMid := bs.at(tLow, tHigh, kMid)
		if upperBoundValid(inst, tMid) {
			kHigh = kMid
		} else {
			kLow = kMid
		}
	}
	log.Debug("boundary search: coarse phase converged", zap.Int("steps", steps), zap.Int("boundary_size", len(bs.indices)))

	if opts.Linear {
		log.Debug("boundary search: skipping exact refinement (linear mode)")
	} else {
		kLow = 0
		speed := 1

		steps = 0
		for kHigh-kLow > 1 {
			steps++

			var kMid int
			window := kHigh - kLow
			if 2*speed < window {
				kMid = kHigh - speed
				speed *= 2
			} else {
				kMid = (kHigh + kLow) / 2
			}

			tMid := bs.at(tLow, tHigh, kMid)
			sumMid := sumTickets(tMid)
			capacity := capacityOf(inst)
			u := upperBoundCap(inst, sumMid)

			r, _ := knapsack.Solve(inst.Weights, ticketsToInt(tMid), capacity, u, !opts.NoJIT, onOverflow)

			threshold := new(big.Rat).Mul(inst.AlphaN, new(big.Rat).SetInt(sumMid))
			if new(big.Rat).SetInt64(int64(r)).Cmp(threshold) < 0 {
				kHigh = kMid
			} else {
				kLow = kMid
			}
		}
		log.Debug("boundary search: exact phase converged", zap.Int("steps", steps))
	}

	return bs.at(tLow, tHigh, kHigh)
}
