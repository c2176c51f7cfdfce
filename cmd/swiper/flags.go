package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// sharedFlags holds the flag values common to both the wr and wq
// subcommands.
type sharedFlags struct {
	tw      string
	tn      string
	linear  bool
	noJIT   bool
	sumOnly bool
	output  string
	verbose int
	debug   bool
}

// wrapArgsUsage wraps a cobra positional-argument validator so a failure
// is classified as a CLI usage error (exit code 2). cobra's ValidateArgs
// calls Args directly from ExecuteC, bypassing SetFlagErrorFunc, so an
// unwrapped validator's error would otherwise fall through Execute's
// switch to the default (domain-error, exit code 1) branch.
func wrapArgsUsage(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		return nil
	}
}

// register attaches the shared flags to cmd. twAlias/tnAlias are the
// subcommand-specific long names for the same two threshold flags
// (alpha_w/alpha_n on wr, beta_w/beta_n on wq) - both write into the same
// field, so whichever the caller supplies on the command line wins.
func (f *sharedFlags) register(cmd *cobra.Command, twAlias, tnAlias string) {
	fs := cmd.Flags()
	fs.StringVar(&f.tw, "tw", "", "weighted threshold, e.g. 1/3")
	fs.StringVar(&f.tw, twAlias, "", "alias of --tw")
	fs.StringVar(&f.tn, "tn", "", "nominal threshold, e.g. 2/3")
	fs.StringVar(&f.tn, tnAlias, "", "alias of --tn")
	fs.BoolVar(&f.linear, "linear", false, "skip the exact refinement phases, accepting a possibly larger linear-in-n total")
	fs.BoolVar(&f.noJIT, "no-jit", false, "force the arbitrary-precision knapsack backend")
	fs.BoolVar(&f.sumOnly, "sum-only", false, "print only the total ticket count")
	fs.StringVarP(&f.output, "output", "o", "", "output path (default stdout)")
	fs.CountVarP(&f.verbose, "verbose", "v", "increase log verbosity (-v, -vv)")
	fs.BoolVar(&f.debug, "debug", false, "enable internal validator assertions")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})
}
