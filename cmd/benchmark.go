package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/quantfolio/perf/renderer"
	"github.com/shopspring/decimal"
)

// benchmarkCmd holds the flags for the 'benchmark' subcommand.
type benchmarkCmd struct {
	input     string
	path      string
	name      string
	benchmark string
}

// benchmarkInput pairs the two daily return series to compare.
type benchmarkInput struct {
	Portfolio []decimal.Decimal `json:"portfolio"`
	Benchmark []decimal.Decimal `json:"benchmark"`
}

func (*benchmarkCmd) Name() string     { return "benchmark" }
func (*benchmarkCmd) Synopsis() string { return "compare a portfolio against a benchmark series" }
func (*benchmarkCmd) Usage() string {
	return `pfa benchmark [-i <file>] [-path <jsonpath>] [-name <portfolio>] [-b <benchmark>]

  Reads two aligned daily return series and displays excess return, relative
  performance, tracking error and information ratio:

    {"portfolio": ["0.01", "-0.005"], "benchmark": ["0.008", "-0.002"]}
`
}

func (c *benchmarkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "input file (defaults to stdin)")
	f.StringVar(&c.path, "path", "", "jsonpath to the payload inside the input document")
	f.StringVar(&c.name, "name", "", "portfolio name shown in the report")
	f.StringVar(&c.benchmark, "b", "", "benchmark name shown in the report")
}

func (c *benchmarkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var in benchmarkInput
	if err := readInput(c.input, c.path, &in); err != nil {
		return usageError(err)
	}

	report := renderer.NewBenchmarkReport(c.name, c.benchmark, in.Portfolio, in.Benchmark)
	printMarkdown(renderer.RenderBenchmarkReport(report))
	return subcommands.ExitSuccess
}
