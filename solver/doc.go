// Package solver implements the two-phase WR/WQ optimizer: a continuous
// binary search over a multiplicative scale s (scale.go) that finds the
// coarsest valid ticket allocation, followed by a discrete binary search
// over an integer cut k of the resulting boundary set (boundary.go) that
// decides which boundary parties round up. Both phases consult the
// embedded knapsack oracle (package knapsack) through IsValid
// (validator.go) to test whether a candidate allocation is WR-valid.
//
// Solve (driver.go) orchestrates both phases for a WR instance, or
// reduces a WQ instance to WR first. Options.Verify enables the
// assertions in verify.go, which log (never panic) on a violated
// invariant — a failure there is a bug in this package, not a user
// input error.
package solver
