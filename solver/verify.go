package solver

import (
	"math/big"

	"go.uber.org/zap"

	"github.com/katalvlaran/swiper/instance"
)

// solutionUpperBound returns ceil(alphaW*(1-alphaW)/(alphaN-alphaW)*n),
// the invariant-2 bound that assertUpperBound checks the final ticket
// total against.
func solutionUpperBound(inst *instance.WR) *big.Int {
	one := big.NewRat(1, 1)
	num := new(big.Rat).Mul(inst.AlphaW, new(big.Rat).Sub(one, inst.AlphaW))
	den := new(big.Rat).Sub(inst.AlphaN, inst.AlphaW)
	v := new(big.Rat).Quo(num, den)
	v.Mul(v, new(big.Rat).SetInt64(int64(inst.N)))

	return ceilRat(v)
}

// assertValid logs (and, if it fails, reports) whether t satisfies the WR
// property. It never panics: under Options.Verify a failure here means a
// bug in this package, surfaced as a Warn log line and a non-nil error,
// not a crash.
func assertValid(inst *instance.WR, t []*big.Int, opts Options, label string) error {
	if !opts.Verify {
		return nil
	}

	log := opts.logger()
	ok, err := isValid(inst, t, !opts.NoJIT, nil)
	if err != nil {
		return err
	}
	if !ok {
		log.Warn("invariant violated: allocation is not WR-valid",
			zap.String("stage", label))
		return ErrInvariantViolated
	}

	return nil
}

// assertUpperBound logs and reports whether sum(t) respects the
// solution's upper bound (spec invariant 2).
func assertUpperBound(inst *instance.WR, t []*big.Int, opts Options) error {
	if !opts.Verify {
		return nil
	}

	log := opts.logger()
	sum := sumTickets(t)
	bound := solutionUpperBound(inst)
	if sum.Cmp(bound) > 0 {
		log.Warn("invariant violated: ticket total exceeds upper bound",
			zap.String("sum", sum.String()), zap.String("bound", bound.String()))
		return ErrInvariantViolated
	}

	return nil
}
