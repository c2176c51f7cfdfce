package solver

import "math/big"

// ceilRat returns the ceiling of r as a *big.Int.
func ceilRat(r *big.Rat) *big.Int {
	num, den := r.Num(), r.Denom()
	q, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if rem.Sign() != 0 && r.Sign() > 0 {
		q.Add(q, big.NewInt(1))
	}
	return q
}

// floorRat returns the floor of r as a *big.Int.
func floorRat(r *big.Rat) *big.Int {
	num, den := r.Num(), r.Denom()
	q, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if rem.Sign() != 0 && r.Sign() < 0 {
		q.Sub(q, big.NewInt(1))
	}
	return q
}

// allocate derives the ticket vector for scale s: t_i = floor(w_i*s + shift).
func allocate(weights []*big.Int, s, shift *big.Rat) []*big.Int {
	t := make([]*big.Int, len(weights))
	for i, w := range weights {
		v := new(big.Rat).Mul(s, new(big.Rat).SetInt(w))
		v.Add(v, shift)
		t[i] = floorRat(v)
	}
	return t
}

// sumTickets returns sum(t) as a *big.Int.
func sumTickets(t []*big.Int) *big.Int {
	sum := new(big.Int)
	for _, v := range t {
		sum.Add(sum, v)
	}
	return sum
}

// ticketsToInt converts a ticket vector to plain ints for use as knapsack
// profits. Ticket totals are bounded by the solution's own upper bound
// (spec invariant 2), which is linear in n and therefore always
// representable as a machine int for any instance this solver can size.
func ticketsToInt(t []*big.Int) []int {
	out := make([]int, len(t))
	for i, v := range t {
		out[i] = int(v.Int64())
	}
	return out
}

// maxWeight returns the largest entry in weights.
func maxWeight(weights []*big.Int) *big.Int {
	max := weights[0]
	for _, w := range weights[1:] {
		if w.Cmp(max) > 0 {
			max = w
		}
	}
	return max
}
