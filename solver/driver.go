package solver

import (
	"context"
	"math/big"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/swiper/instance"
)

// Solve solves a Weight Restriction or Weight Qualification instance,
// returning the minimal-total ticket allocation in input party order.
//
// ctx is checked once at entry for cancellation; a solve has no internal
// suspension points to honor it further (see spec.md §5).
func Solve(ctx context.Context, inst any, opts Options) ([]*big.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch v := inst.(type) {
	case *instance.WR:
		return solveWR(ctx, v, opts)
	case *instance.WQ:
		wr, err := v.ToWR()
		if err != nil {
			return nil, err
		}
		return solveWR(ctx, wr, opts)
	default:
		return nil, ErrUnknownInstanceType
	}
}

func solveWR(_ context.Context, inst *instance.WR, opts Options) ([]*big.Int, error) {
	log := opts.logger()
	log.Info("solving", zap.String("instance", inst.String()),
		zap.String("total_weight", inst.TotalWeight.String()),
		zap.String("threshold_weight", inst.ThresholdWeight.RatString()))

	var warnOnce sync.Once
	onOverflow := func() {
		warnOnce.Do(func() {
			log.Warn("knapsack inputs overflow the accelerated backend; falling back to arbitrary-precision arithmetic")
		})
	}

	if opts.Verify {
		sHigh0 := scaleUpperBound0(inst)
		tHigh0 := allocate(inst.Weights, sHigh0, inst.AlphaW)
		if err := assertValid(inst, tHigh0, opts, "analytical upper bound s_high^0"); err != nil {
			return nil, err
		}
	}

	_, sHigh, tLow, tHigh := searchScale(inst, opts, onOverflow)
	log.Debug("scale search complete", zap.String("s_high", sHigh.RatString()))

	if err := assertValid(inst, tHigh, opts, "post scale-search allocation"); err != nil {
		return nil, err
	}

	tBest := searchBoundary(inst, tLow, tHigh, opts, onOverflow)

	if err := assertValid(inst, tBest, opts, "final allocation"); err != nil {
		return nil, err
	}
	if err := assertUpperBound(inst, tBest, opts); err != nil {
		return nil, err
	}

	log.Info("solved", zap.String("total_tickets", sumTickets(tBest).String()))

	return tBest, nil
}
