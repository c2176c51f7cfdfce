package knapsack_test

import (
	"math/big"
	"math/rand"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/swiper/knapsack"
)

// bruteForce mirrors the oracle's contract directly by enumerating all
// 2^n subsets, used to check knapsack equivalence (invariant 6).
func bruteForce(weights []int64, profits []int, capacity int64, upperBound int) int {
	n := len(weights)
	best := 0
	for mask := 0; mask < (1 << n); mask++ {
		var w int64
		p := 0
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				w += weights[i]
				p += profits[i]
			}
		}
		if w <= capacity && p > best {
			if p > upperBound {
				p = upperBound + 1 // oracle only needs to detect "exceeds"
			}
			best = p
		}
	}
	return best
}

func TestKnapsackEquivalenceSmallInstances(t *testing.T) {
	cases := []struct {
		weights    []int64
		profits    []int
		capacity   int64
		upperBound int
	}{
		{[]int64{1, 2, 3}, []int{6, 10, 12}, 5, 50},
		{[]int64{2, 2, 4, 5}, []int{3, 4, 5, 8}, 7, 50},
		{[]int64{0, 1, 2}, []int{4, 1, 1}, 2, 50},
		{[]int64{5, 5, 5}, []int{1, 1, 1}, 4, 50},
	}

	for _, c := range cases {
		bw := make([]*big.Int, len(c.weights))
		for i, w := range c.weights {
			bw[i] = big.NewInt(w)
		}

		got, err := knapsack.Solve(bw, c.profits, big.NewInt(c.capacity), c.upperBound, true, nil)
		require.NoError(t, err)

		want := bruteForce(c.weights, c.profits, c.capacity, c.upperBound)
		// both sides saturate at "exceeds upperBound" rather than the exact
		// value once the true optimum is past it; compare the capped view.
		if want > c.upperBound {
			require.Greater(t, got, c.upperBound)
		} else {
			require.Equal(t, want, got)
		}
	}
}

// TestKnapsackEquivalenceProperty is invariant 6 over randomly generated
// small instances, complementing the hand-picked cases above.
func TestKnapsackEquivalenceProperty(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	f := func() bool {
		n := 1 + rnd.Intn(6)
		weights := make([]int64, n)
		profits := make([]int, n)
		bw := make([]*big.Int, n)
		var maxCapacity int64
		for i := range weights {
			weights[i] = int64(1 + rnd.Intn(10))
			profits[i] = 1 + rnd.Intn(10)
			bw[i] = big.NewInt(weights[i])
			maxCapacity += weights[i]
		}
		capacity := int64(rnd.Intn(int(maxCapacity) + 1))
		upperBound := 5 + rnd.Intn(30)

		got, err := knapsack.Solve(bw, profits, big.NewInt(capacity), upperBound, true, nil)
		if err != nil {
			return false
		}

		want := bruteForce(weights, profits, capacity, upperBound)
		if want > upperBound {
			return got > upperBound
		}
		return got == want
	}
	require.NoError(t, quick.Check(f, &quick.Config{MaxCount: 200}))
}
