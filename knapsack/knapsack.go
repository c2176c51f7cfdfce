package knapsack

import "github.com/katalvlaran/swiper/ratutil"

// knapsackGeneric finds the maximum profit subset of items (weight[i],
// profit[i]) fitting within capacity, exact up to profit upperBound+1.
// See package doc for the contract. Weights and capacity are expressed in
// ring T; profits and upperBound are plain ints (ticket counts, always
// small — see solutionUpperBound in package solver).
//
// Running time O(n*upperBound); the dp slice is reused across the item
// loop, O(upperBound) memory.
func knapsackGeneric[T any](weights []T, profits []int, capacity T, upperBound int, r Ring[T]) int {
	n := len(weights)

	// Fast exit: a single item alone exceeds the profit cap and fits.
	for i := 0; i < n; i++ {
		if profits[i] > upperBound && r.LessEq(weights[i], capacity) {
			return profits[i]
		}
	}

	// Ignore items with zero profit: nonnegative weights mean they can
	// never help reach a profit level q >= 1.
	type item struct {
		w T
		p int
	}
	items := make([]item, 0, n)
	for i := 0; i < n; i++ {
		if profits[i] > 0 {
			items = append(items, item{weights[i], profits[i]})
		}
	}

	size := upperBound + 2
	dp := make([]T, size)
	dp[0] = r.Zero()
	inf := r.Inf()
	for q := 1; q < size; q++ {
		dp[q] = inf
	}

	for _, it := range items {
		// high-to-low: an item may be used at most once per pass (0/1 property).
		for q := range ratutil.ReverseRange(0, size, 1) {
			if it.p >= q {
				dp[q] = r.Min(dp[q], it.w)
			} else if prev := dp[q-it.p]; !r.IsInf(prev) {
				dp[q] = r.Min(dp[q], r.Add(prev, it.w))
			}
		}
	}

	best := 0
	for q := 0; q < size; q++ {
		if !r.IsInf(dp[q]) && r.LessEq(dp[q], capacity) {
			best = q
		}
	}

	return best
}
