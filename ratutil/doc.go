// Package ratutil provides the exact-arithmetic primitives shared by the
// rest of the solver: LCM/GCD over arbitrary-precision integers, weight
// normalization for Fraction-valued inputs, and a reverse-range iterator
// for the knapsack DP's high-to-low update order.
//
// Everything here is stateless and allocates fresh big.Int/big.Rat values;
// none of it retains references to its arguments.
package ratutil
