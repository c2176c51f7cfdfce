package knapsack

import (
	"math/big"
	"sort"
)

// UpperBound computes the linear-relaxation upper bound on achievable
// profit within capacity: sort items by profit density descending, take
// whole items greedily while capacity allows, then take a fractional
// slice of the first item that does not fit. The result is an exact
// rational, never a float, so callers can compare it against
// alphaN*sum(t) without losing precision. Running time O(n log n).
func UpperBound(weights []*big.Int, profits []int, capacity *big.Int) *big.Rat {
	n := len(weights)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	// Sort descending by profits[i]/weights[i], comparing via cross
	// multiplication to stay exact. Zero-weight, positive-profit items
	// are free and sort first.
	sort.SliceStable(order, func(a, b int) bool {
		i, j := order[a], order[b]
		wi, wj := weights[i], weights[j]
		pi, pj := profits[i], profits[j]

		iZero, jZero := wi.Sign() == 0, wj.Sign() == 0
		if iZero || jZero {
			if iZero && jZero {
				return pi > pj
			}
			return iZero
		}

		// pi/wi > pj/wj  <=>  pi*wj > pj*wi  (weights are nonnegative)
		lhs := new(big.Int).Mul(big.NewInt(int64(pi)), wj)
		rhs := new(big.Int).Mul(big.NewInt(int64(pj)), wi)
		return lhs.Cmp(rhs) > 0
	})

	remaining := new(big.Int).Set(capacity)
	profit := new(big.Rat)

	for _, idx := range order {
		w := weights[idx]
		p := profits[idx]
		if p == 0 {
			continue
		}

		if w.Sign() == 0 {
			// Free item: take it whole, capacity untouched.
			profit.Add(profit, big.NewRat(int64(p), 1))
			continue
		}

		if remaining.Sign() <= 0 {
			break
		}

		if remaining.Cmp(w) >= 0 {
			remaining.Sub(remaining, w)
			profit.Add(profit, big.NewRat(int64(p), 1))
		} else {
			frac := new(big.Rat).SetFrac(remaining, w)
			profit.Add(profit, new(big.Rat).Mul(big.NewRat(int64(p), 1), frac))
			break
		}
	}

	return profit
}
