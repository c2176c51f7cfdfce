package main

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/swiper/instance"
	"github.com/katalvlaran/swiper/ratutil"
	"github.com/katalvlaran/swiper/solver"
)

type instanceKind int

const (
	kindWR instanceKind = iota
	kindWQ
)

// runSolve is the body shared by the wr and wq subcommands: parse
// thresholds and weights, normalize, build the instance, solve, and
// write the result.
func runSolve(cmd *cobra.Command, args []string, f *sharedFlags, kind instanceKind, stdin io.Reader, stdout, stderr io.Writer) error {
	if f.tw == "" || f.tn == "" {
		return fmt.Errorf("%w: --tw and --tn are required", errUsage)
	}

	tw, err := instance.ParseRat(f.tw)
	if err != nil {
		return err
	}
	tn, err := instance.ParseRat(f.tn)
	if err != nil {
		return err
	}

	in := stdin
	if len(args) == 1 {
		file, ferr := os.Open(args[0])
		if ferr != nil {
			return fmt.Errorf("%w: %v", errUsage, ferr)
		}
		defer file.Close()
		in = file
	}

	tokens, err := readTokens(in)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	rationalWeights, err := instance.ParseWeights(tokens)
	if err != nil {
		return err
	}

	weights, err := ratutil.NormalizeWeights(rationalWeights, tw, tn)
	if err != nil {
		return err
	}

	var inst any
	switch kind {
	case kindWR:
		inst, err = instance.NewWR(weights, tw, tn)
	case kindWQ:
		inst, err = instance.NewWQ(weights, tw, tn)
	}
	if err != nil {
		return err
	}

	tickets, err := solver.Solve(cmd.Context(), inst, solver.Options{
		Linear: f.linear,
		NoJIT:  f.noJIT,
		Verify: f.debug,
		Logger: loggerFor(f.verbose),
	})
	if err != nil {
		return err
	}

	out := stdout
	if f.output != "" {
		file, cerr := os.Create(f.output)
		if cerr != nil {
			return fmt.Errorf("%w: %v", errUsage, cerr)
		}
		defer file.Close()
		out = file
	}

	return writeResult(out, tickets, f.sumOnly)
}

func readTokens(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return strings.Fields(string(data)), nil
}

func writeResult(w io.Writer, tickets []*big.Int, sumOnly bool) error {
	if sumOnly {
		sum := new(big.Int)
		for _, t := range tickets {
			sum.Add(sum, t)
		}
		_, err := fmt.Fprintln(w, sum.String())
		return err
	}

	parts := make([]string, len(tickets))
	for i, t := range tickets {
		parts[i] = t.String()
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}
