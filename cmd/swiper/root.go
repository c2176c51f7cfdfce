package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/swiper/internal/applog"
)

// errUsage marks a CLI usage error (bad flags, missing required flag, an
// unreadable input path) as opposed to a domain error in the parsed
// instance itself. Execute maps it to exit code 2.
var errUsage = errors.New("cmd/swiper: usage error")

// Execute builds the root command, runs it against args, and returns the
// process exit code: 0 success, 1 domain error, 2 CLI usage error.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd(stdin, stdout, stderr)
	root.SetArgs(args)

	err := root.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprintln(stderr, err)
		return 2
	default:
		fmt.Fprintln(stderr, err)
		return 1
	}
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "swiper",
		Short:         "Compute minimal ticket allocations for weighted consensus thresholds",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.AddCommand(newWRCmd(stdin, stdout, stderr))
	root.AddCommand(newWQCmd(stdin, stdout, stderr))

	return root
}

// loggerFor maps the -v/-vv count flag to an applog.Logger.
func loggerFor(verbose int) applog.Logger {
	switch {
	case verbose >= 2:
		return applog.New(applog.LevelDebug)
	case verbose == 1:
		return applog.New(applog.LevelInfo)
	default:
		return applog.New(applog.LevelWarn)
	}
}
