package main

import (
	"io"

	"github.com/spf13/cobra"
)

func newWQCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	f := &sharedFlags{}
	cmd := &cobra.Command{
		Use:   "wq [input-file]",
		Short: "Solve a Weight Qualification instance",
		Args:  wrapArgsUsage(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args, f, kindWQ, stdin, stdout, stderr)
		},
	}
	f.register(cmd, "beta_w", "beta_n")
	return cmd
}
