package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/quantfolio/perf"
	"github.com/quantfolio/perf/renderer"
)

// perfCmd holds the flags for the 'perf' subcommand.
type perfCmd struct {
	input string
	path  string
	date  string
	name  string
}

func (*perfCmd) Name() string     { return "perf" }
func (*perfCmd) Synopsis() string { return "display a period performance report" }
func (*perfCmd) Usage() string {
	return `pfa perf [-i <file>] [-path <jsonpath>] [-d <date>] [-name <portfolio>]

  Reads a daily return series and displays the week, month, quarter and year
  to date returns plus a monthly breakdown:

    [{"date": "2024-07-01", "return": "0.012"}, ...]
`
}

func (c *perfCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "input file (defaults to stdin)")
	f.StringVar(&c.path, "path", "", "jsonpath to the series inside the input document")
	f.StringVar(&c.date, "d", "", "reference date for the report (defaults to today)")
	f.StringVar(&c.name, "name", "", "portfolio name shown in the report")
}

func (c *perfCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var daily []perf.DailyReturn
	if err := readInput(c.input, c.path, &daily); err != nil {
		return usageError(err)
	}

	asOf := perf.Today()
	if c.date != "" {
		var err error
		asOf, err = perf.ParseDate(c.date)
		if err != nil {
			return usageError(err)
		}
	}

	report := renderer.NewPerformanceReport(c.name, daily, asOf)
	printMarkdown(renderer.RenderPerformanceReport(report))
	return subcommands.ExitSuccess
}
