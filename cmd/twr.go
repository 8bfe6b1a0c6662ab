package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/quantfolio/perf"
	"github.com/shopspring/decimal"
)

// twrCmd holds the flags for the 'twr' subcommand.
type twrCmd struct {
	input string
	path  string
}

// dietzInput is the JSON payload the twr and mwr subcommands consume.
type dietzInput struct {
	BeginningValue decimal.Decimal `json:"beginningValue"`
	EndingValue    decimal.Decimal `json:"endingValue"`
	CashFlows      []perf.CashFlow `json:"cashFlows"`
	PeriodStart    perf.Date       `json:"periodStart"`
	PeriodEnd      perf.Date       `json:"periodEnd"`
}

func (*twrCmd) Name() string     { return "twr" }
func (*twrCmd) Synopsis() string { return "compute the time-weighted return of a period" }
func (*twrCmd) Usage() string {
	return `pfa twr [-i <file>] [-path <jsonpath>]

  Computes the Modified Dietz return from a JSON valuation payload read from
  a file or stdin:

    {"beginningValue": "10000", "endingValue": "10500",
     "cashFlows": [{"date": "2024-01-15", "amount": "1000"}],
     "periodStart": "2024-01-01", "periodEnd": "2024-01-31"}
`
}

func (c *twrCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "input file (defaults to stdin)")
	f.StringVar(&c.path, "path", "", "jsonpath to the payload inside the input document")
}

func (c *twrCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var in dietzInput
	if err := readInput(c.input, c.path, &in); err != nil {
		return usageError(err)
	}

	r := perf.ModifiedDietz(in.BeginningValue, in.EndingValue, in.CashFlows, in.PeriodStart, in.PeriodEnd)
	fmt.Printf("%s to %s: %s\n", in.PeriodStart, in.PeriodEnd, perf.AsPercent(r).SignedString())
	return subcommands.ExitSuccess
}
