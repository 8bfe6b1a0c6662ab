package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/quantfolio/perf"
	"github.com/quantfolio/perf/renderer"
)

// riskCmd holds the flags for the 'risk' subcommand.
type riskCmd struct {
	input    string
	path     string
	name     string
	riskFree string
	window   int
}

func (*riskCmd) Name() string     { return "risk" }
func (*riskCmd) Synopsis() string { return "display a risk report for a daily return series" }
func (*riskCmd) Usage() string {
	return `pfa risk [-i <file>] [-path <jsonpath>] [-rf <daily rate>] [-w <window>] [-name <portfolio>]

  Reads a daily return series and displays Sharpe, Sortino, drawdowns and
  rolling volatility.
`
}

func (c *riskCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "input file (defaults to stdin)")
	f.StringVar(&c.path, "path", "", "jsonpath to the series inside the input document")
	f.StringVar(&c.riskFree, "rf", "0", "daily risk-free rate as a decimal fraction")
	f.IntVar(&c.window, "w", 30, "rolling volatility window in trading days")
	f.StringVar(&c.name, "name", "", "portfolio name shown in the report")
}

func (c *riskCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var daily []perf.DailyReturn
	if err := readInput(c.input, c.path, &daily); err != nil {
		return usageError(err)
	}
	riskFree, err := perf.ParseDecimal(c.riskFree)
	if err != nil {
		return usageError(err)
	}

	report := renderer.NewRiskReport(c.name, daily, riskFree, c.window)
	printMarkdown(renderer.RenderRiskReport(report))
	return subcommands.ExitSuccess
}
