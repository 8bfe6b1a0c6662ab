package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/quantfolio/perf"
	"github.com/quantfolio/perf/renderer"
	"github.com/shopspring/decimal"
)

// fxCmd holds the flags for the 'fx' subcommand.
type fxCmd struct {
	ticker       string
	currency     string
	entryPrice   string
	currentPrice string
	entryRate    string
	currentRate  string
}

func (*fxCmd) Name() string     { return "fx" }
func (*fxCmd) Synopsis() string { return "decompose a foreign position's return into price and currency parts" }
func (*fxCmd) Usage() string {
	return `pfa fx -entry <price> -current <price> -entry-rate <rate> -current-rate <rate> [-t <ticker>] [-c <currency>]

  Rates follow the ECB convention: 1 EUR = rate units of the foreign currency.
`
}

func (c *fxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "ticker shown in the report")
	f.StringVar(&c.currency, "c", "USD", "currency the position is priced in")
	f.StringVar(&c.entryPrice, "entry", "", "entry price in the position's currency")
	f.StringVar(&c.currentPrice, "current", "", "current price in the position's currency")
	f.StringVar(&c.entryRate, "entry-rate", "", "EUR exchange rate at entry")
	f.StringVar(&c.currentRate, "current-rate", "", "EUR exchange rate now")
}

func (c *fxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	parse := func(name, s string) (decimal.Decimal, error) {
		if s == "" {
			return decimal.Zero, fmt.Errorf("missing required flag -%s", name)
		}
		d, err := perf.ParseDecimal(s)
		if err != nil {
			return decimal.Zero, fmt.Errorf("flag -%s: %w", name, err)
		}
		return d, nil
	}

	var (
		entry, current, entryRate, currentRate decimal.Decimal
		err                                    error
	)
	if entry, err = parse("entry", c.entryPrice); err != nil {
		return usageError(err)
	}
	if current, err = parse("current", c.currentPrice); err != nil {
		return usageError(err)
	}
	if entryRate, err = parse("entry-rate", c.entryRate); err != nil {
		return usageError(err)
	}
	if currentRate, err = parse("current-rate", c.currentRate); err != nil {
		return usageError(err)
	}

	d := perf.DecomposeFxReturn(entry, current, entryRate, currentRate)
	report := renderer.NewFxReport(c.ticker, c.currency, d)
	printMarkdown(renderer.RenderFxReport(report))
	return subcommands.ExitSuccess
}
