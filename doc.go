// Package swiper computes minimal ticket allocations for Weight
// Restriction (WR) and Weight Qualification (WQ) instances: given party
// weights and a pair of thresholds, find the smallest per-party ticket
// counts such that every coalition crossing the weight threshold also
// crosses the ticket threshold (WR), or its dual (WQ).
//
// Subpackages:
//
//	ratutil/       — exact LCM/GCD/normalization helpers over math/big
//	instance/      — WR and WQ instance types, parsing, validation
//	knapsack/      — the bounded 0/1 knapsack oracle behind validity checks
//	solver/        — the two-phase scale/boundary search and its driver
//	internal/applog/ — the logging interface used by solver
//	cmd/swiper/    — the command-line frontend
//
// All arithmetic that affects control flow uses math/big.Rat and
// math/big.Int; nothing here reaches for floating point.
//
//	go get github.com/katalvlaran/swiper
package swiper
