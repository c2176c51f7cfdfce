package solver

import "math/big"

// boundarySet is the set B of parties whose allocation differs between
// tLow and tHigh, in natural index order, together with a membership
// table giving O(1) "is party i at position >= k within B?" tests —
// the precomputation suggested by the design notes to replace a linear
// scan of B on every probe of the boundary search.
type boundarySet struct {
	indices    []int // B, in natural index order
	membership []int // membership[i] = position of i within B, or -1
}

// newBoundarySet computes B = {i : tLow[i] != tHigh[i]}.
func newBoundarySet(tLow, tHigh []*big.Int) boundarySet {
	bs := boundarySet{membership: make([]int, len(tLow))}
	for i := range bs.membership {
		bs.membership[i] = -1
	}
	for i := range tLow {
		if tLow[i].Cmp(tHigh[i]) != 0 {
			bs.membership[i] = len(bs.indices)
			bs.indices = append(bs.indices, i)
		}
	}
	return bs
}

// at builds the allocation t^(k): equal to tHigh on B[0:k) and to tLow on
// B[k:), and to either (they already agree) elsewhere.
func (bs boundarySet) at(tLow, tHigh []*big.Int, k int) []*big.Int {
	t := make([]*big.Int, len(tHigh))
	for i := range t {
		if pos := bs.membership[i]; pos != -1 && pos >= k {
			t[i] = tLow[i]
		} else {
			t[i] = tHigh[i]
		}
	}
	return t
}
