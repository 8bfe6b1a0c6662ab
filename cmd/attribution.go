package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/quantfolio/perf"
	"github.com/quantfolio/perf/renderer"
	"github.com/shopspring/decimal"
)

// attributionCmd holds the flags for the 'attribution' subcommand.
type attributionCmd struct {
	input string
	path  string
	name  string
}

// attributionInput is the JSON payload of the attribution subcommand. When
// the total benchmark return is omitted it is derived from the benchmark
// segment weights and returns.
type attributionInput struct {
	Portfolio            []perf.SegmentData `json:"portfolio"`
	Benchmark            []perf.SegmentData `json:"benchmark"`
	TotalBenchmarkReturn *decimal.Decimal   `json:"totalBenchmarkReturn,omitempty"`
}

func (*attributionCmd) Name() string     { return "attribution" }
func (*attributionCmd) Synopsis() string { return "display a Brinson-Fachler attribution report" }
func (*attributionCmd) Usage() string {
	return `pfa attribution [-i <file>] [-path <jsonpath>] [-name <portfolio>]

  Reads portfolio and benchmark segments and decomposes the excess return
  into allocation, selection and interaction effects:

    {"portfolio": [{"segment": "Tech", "weight": "0.7", "return": "0.12"}],
     "benchmark": [{"segment": "Tech", "weight": "0.6", "return": "0.10"}]}
`
}

func (c *attributionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "input file (defaults to stdin)")
	f.StringVar(&c.path, "path", "", "jsonpath to the payload inside the input document")
	f.StringVar(&c.name, "name", "", "portfolio name shown in the report")
}

func (c *attributionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var in attributionInput
	if err := readInput(c.input, c.path, &in); err != nil {
		return usageError(err)
	}

	totalB := decimal.Zero
	if in.TotalBenchmarkReturn != nil {
		totalB = *in.TotalBenchmarkReturn
	} else {
		for _, s := range in.Benchmark {
			totalB = totalB.Add(s.Weight.Mul(s.Return))
		}
	}

	attributions := perf.BrinsonAttribution(in.Portfolio, in.Benchmark, totalB)
	report := renderer.NewAttributionReport(c.name, attributions)
	printMarkdown(renderer.RenderAttributionReport(report))
	return subcommands.ExitSuccess
}
