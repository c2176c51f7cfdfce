package main

import (
	"io"

	"github.com/spf13/cobra"
)

func newWRCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	f := &sharedFlags{}
	cmd := &cobra.Command{
		Use:   "wr [input-file]",
		Short: "Solve a Weight Restriction instance",
		Args:  wrapArgsUsage(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args, f, kindWR, stdin, stdout, stderr)
		},
	}
	f.register(cmd, "alpha_w", "alpha_n")
	return cmd
}
