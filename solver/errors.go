package solver

import "errors"

// Sentinel errors surfaced by Solve.
var (
	// ErrUnknownInstanceType is returned when Solve is given a value that
	// is neither *instance.WR nor *instance.WQ.
	ErrUnknownInstanceType = errors.New("solver: unknown instance type")

	// ErrInvariantViolated is returned (in addition to being logged) when
	// Options.Verify is set and a postcondition assertion fails. This
	// indicates a bug in this package, never a user input error.
	ErrInvariantViolated = errors.New("solver: invariant violated")
)
