package solver

import "github.com/katalvlaran/swiper/internal/applog"

// Options configures a single Solve call.
type Options struct {
	// Linear skips the exact refinement phases (1b, 2b), accepting a
	// possibly larger but still linear-in-n total ticket count.
	Linear bool

	// NoJIT forces the arbitrary-precision knapsack backend, bypassing
	// the int64 fast path entirely.
	NoJIT bool

	// Verify enables the validator assertions in verify.go after each
	// phase and on the final allocation.
	Verify bool

	// Logger receives structured progress and warning output. If nil,
	// a no-op logger is used.
	Logger applog.Logger
}

func (o Options) logger() applog.Logger {
	if o.Logger == nil {
		return applog.Noop()
	}
	return o.Logger
}
