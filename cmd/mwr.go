package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/quantfolio/perf"
)

// mwrCmd holds the flags for the 'mwr' subcommand.
type mwrCmd struct {
	input         string
	path          string
	maxIterations int
	tolerance     float64
}

func (*mwrCmd) Name() string     { return "mwr" }
func (*mwrCmd) Synopsis() string { return "compute the annualized money-weighted return" }
func (*mwrCmd) Usage() string {
	return `pfa mwr [-i <file>] [-path <jsonpath>] [-n <iterations>] [-tol <tolerance>]

  Solves the internal rate of return from the same JSON valuation payload as
  the twr subcommand.
`
}

func (c *mwrCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "input file (defaults to stdin)")
	f.StringVar(&c.path, "path", "", "jsonpath to the payload inside the input document")
	f.IntVar(&c.maxIterations, "n", 100, "iteration budget for the solver")
	f.Float64Var(&c.tolerance, "tol", 1e-10, "convergence tolerance on the rate")
}

func (c *mwrCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var in dietzInput
	if err := readInput(c.input, c.path, &in); err != nil {
		return usageError(err)
	}

	r := perf.MWRWithOptions(in.CashFlows, in.BeginningValue, in.EndingValue,
		in.PeriodStart, in.PeriodEnd, c.maxIterations, c.tolerance)
	fmt.Printf("%s to %s: %s annualized\n", in.PeriodStart, in.PeriodEnd, perf.AsPercent(r).SignedString())
	return subcommands.ExitSuccess
}
