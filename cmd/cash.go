package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/quantfolio/perf"
	"github.com/quantfolio/perf/renderer"
)

// cashCmd holds the flags for the 'cash' subcommand.
type cashCmd struct {
	input      string
	path       string
	side       string
	quantity   string
	price      string
	currency   string
	commission string
	tax        string
}

func (*cashCmd) Name() string     { return "cash" }
func (*cashCmd) Synopsis() string { return "preview and validate the cash impact of a trade" }
func (*cashCmd) Usage() string {
	return `pfa cash -side <buy|sell|short|cover> -q <quantity> -p <price> [-c <currency>] [-commission <amount>] [-tax <amount>] [-i <file>]

  Balances are read as a JSON object from a file or stdin:

    {"EUR": "10000", "USD": "2500"}

  Exits with a failure status when the trade cannot be funded.
`
}

func (c *cashCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "balances file (defaults to stdin)")
	f.StringVar(&c.path, "path", "", "jsonpath to the balances inside the input document")
	f.StringVar(&c.side, "side", "buy", "trade side: buy, sell, short or cover")
	f.StringVar(&c.quantity, "q", "", "quantity traded")
	f.StringVar(&c.price, "p", "", "price per unit")
	f.StringVar(&c.currency, "c", "EUR", "trade currency")
	f.StringVar(&c.commission, "commission", "0", "commission on top of the gross amount")
	f.StringVar(&c.tax, "tax", "0", "tax on top of the gross amount")
}

func (c *cashCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	side, err := perf.ParseSide(c.side)
	if err != nil {
		return usageError(err)
	}
	quantity, err := perf.ParseDecimal(c.quantity)
	if err != nil {
		return usageError(fmt.Errorf("flag -q: %w", err))
	}
	price, err := perf.ParseDecimal(c.price)
	if err != nil {
		return usageError(fmt.Errorf("flag -p: %w", err))
	}
	commission, err := perf.ParseDecimal(c.commission)
	if err != nil {
		return usageError(fmt.Errorf("flag -commission: %w", err))
	}
	tax, err := perf.ParseDecimal(c.tax)
	if err != nil {
		return usageError(fmt.Errorf("flag -tax: %w", err))
	}

	var balances perf.Balances
	if err := readInput(c.input, c.path, &balances); err != nil {
		return usageError(err)
	}

	trade := perf.Trade{
		Side:       side,
		Quantity:   quantity,
		Price:      price,
		Currency:   c.currency,
		Commission: commission,
		Tax:        tax,
	}

	preview, err := perf.ValidateCashSufficiency(trade, balances)
	printMarkdown(renderer.RenderCashReport(renderer.NewCashReport(side, preview)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
