// Package instance defines the immutable Weight Restriction (WR) and Weight
// Qualification (WQ) problem instances solved by package solver.
//
// A WR instance asks for the smallest ticket assignment such that every
// coalition holding less than AlphaW of total weight holds strictly less
// than AlphaN of total tickets. WQ is the dual: every coalition holding
// more than BetaW of total weight holds strictly more than BetaN of total
// tickets. (*WQ).ToWR reduces WQ to WR on the same weights via
// (AlphaW, AlphaN) = (1-BetaW, 1-BetaN).
//
// Errors:
//
//	ErrEmptyWeights    - weights is empty.
//	ErrAllZeroWeights  - every weight is zero.
//	ErrThresholdOrder  - thresholds are not correctly ordered for the problem.
package instance
