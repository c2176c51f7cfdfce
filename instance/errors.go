package instance

import "errors"

// Sentinel errors for instance construction. Check with errors.Is.
var (
	// ErrEmptyWeights indicates an instance was constructed with no parties.
	ErrEmptyWeights = errors.New("instance: weights is empty")

	// ErrAllZeroWeights indicates every party has zero weight.
	ErrAllZeroWeights = errors.New("instance: all weights are zero")

	// ErrThresholdOrder indicates the weighted and nominal thresholds are not
	// ordered as the problem (WR or WQ) requires.
	ErrThresholdOrder = errors.New("instance: invalid threshold ordering")
)
