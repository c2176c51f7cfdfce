package knapsack

import "math/big"

// Ring is the minimal arithmetic a knapsack weight type must support: a
// saturating add (so accumulating "unreachable" stays unreachable instead
// of wrapping), a min, an order, a zero, and a sentinel "infinity" used to
// mark profit levels not yet reached by the DP. int64Ring and bigRing are
// the two instantiations the backend selector (backend.go) picks between.
type Ring[T any] interface {
	Zero() T
	Inf() T
	IsInf(v T) bool
	Add(a, b T) T
	Min(a, b T) T
	LessEq(a, b T) bool
}

// int64Ring implements Ring[int64] for the accelerated fixed-width path.
type int64Ring struct{}

const int64Inf = int64(1) << 62

func (int64Ring) Zero() int64         { return 0 }
func (int64Ring) Inf() int64          { return int64Inf }
func (int64Ring) IsInf(v int64) bool  { return v >= int64Inf }
func (int64Ring) Min(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
func (int64Ring) LessEq(a, b int64) bool { return a <= b }
func (r int64Ring) Add(a, b int64) int64 {
	if r.IsInf(a) || r.IsInf(b) {
		return int64Inf
	}
	return a + b
}

// bigRing implements Ring[*big.Int] for the arbitrary-precision fallback.
// inf is a per-query sentinel, strictly greater than any weight-sum the
// DP could legitimately reach, so it never collides with a real value —
// see newBigRing.
type bigRing struct {
	inf *big.Int
}

// newBigRing builds a bigRing whose "unreachable" sentinel is
// sum(weights)+1. Since every dp value is a sum of a subset of weights,
// it can never equal or exceed sum(weights)+1, so this sentinel can never
// be confused with a genuinely large (but reachable) weight total —
// unlike a fixed magic constant, which a big enough legitimate input
// could reach.
func newBigRing(weights []*big.Int) bigRing {
	sum := new(big.Int)
	for _, w := range weights {
		sum.Add(sum, w)
	}
	sum.Add(sum, big.NewInt(1))
	return bigRing{inf: sum}
}

func (bigRing) Zero() *big.Int  { return new(big.Int) }
func (r bigRing) Inf() *big.Int { return r.inf }
func (r bigRing) IsInf(v *big.Int) bool {
	return v.Cmp(r.inf) == 0
}
func (r bigRing) Min(a, b *big.Int) *big.Int {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}
func (bigRing) LessEq(a, b *big.Int) bool { return a.Cmp(b) <= 0 }
func (r bigRing) Add(a, b *big.Int) *big.Int {
	if r.IsInf(a) || r.IsInf(b) {
		return r.inf
	}
	return new(big.Int).Add(a, b)
}
