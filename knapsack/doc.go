// Package knapsack implements the bounded 0/1 knapsack oracle that backs
// the WR/WQ validity check: given item weights, item profits (ticket
// counts), a capacity, and a profit cap U, it finds the maximum profit
// achievable within capacity, exact up to U and merely a lower bound on
// "exceeds U" otherwise — which is all the caller (package solver) ever
// needs, since every call site only tests the comparison r < T for some
// T <= U+1.
//
// The exact solver (knapsackGeneric) is written once, generic over an
// integer Ring, and instantiated over int64 for the common case and
// *big.Int when inputs would overflow 64 bits (package-level Solve picks
// the instantiation; see backend.go). UpperBound computes the classic
// fractional-relaxation bound in O(n log n), used by the caller to skip
// expensive exact calls during the coarse search phases.
package knapsack
