package knapsack

import "errors"

// Sentinel errors for malformed knapsack queries. The oracle never fails
// on a well-formed query; these only guard caller mistakes.
var (
	// ErrEmptyItems indicates a query with no items; the contract requires n >= 1.
	ErrEmptyItems = errors.New("knapsack: weights is empty")

	// ErrLengthMismatch indicates weights and profits have different lengths.
	ErrLengthMismatch = errors.New("knapsack: weights and profits length mismatch")
)
