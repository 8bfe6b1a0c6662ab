package perf

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Side is the direction of a trade.
type Side int

const (
	Buy Side = iota
	Sell
	Short
	Cover
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	case Short:
		return "SHORT"
	case Cover:
		return "COVER"
	default:
		return "UNKNOWN"
	}
}

// consumesCash reports whether the side pays cash out (buying or covering a
// short) rather than bringing cash in.
func (s Side) consumesCash() bool { return s == Buy || s == Cover }

func ParseSide(s string) (Side, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BUY":
		return Buy, nil
	case "SELL":
		return Sell, nil
	case "SHORT":
		return Short, nil
	case "COVER":
		return Cover, nil
	default:
		return Buy, fmt.Errorf("unknown trade side %q", s)
	}
}

// Trade is the cash-relevant view of an order: what is traded, at what price,
// and the costs on top. It is never persisted here.
type Trade struct {
	Side       Side
	Quantity   decimal.Decimal
	Price      decimal.Decimal
	Currency   string
	Commission decimal.Decimal
	Tax        decimal.Decimal
}

// Balances maps a currency code to the available cash amount in it.
type Balances map[string]decimal.Decimal

// CashImpactPreview is what a trade would do to the cash account in its
// currency, before the trade is submitted.
type CashImpactPreview struct {
	Currency         string
	CurrentBalance   Money
	TradeAmount      Money // signed cash movement, rounded to a monetary amount
	ProjectedBalance Money
	Sufficient       bool
}

// PreviewCashImpact computes the signed cash movement of a trade and the
// projected balance. Buys and covers pay gross plus costs; sells and shorts
// receive gross minus costs. A currency missing from balances counts as zero.
func PreviewCashImpact(trade Trade, balances Balances) CashImpactPreview {
	currentBalance := balances[trade.Currency] // zero when absent
	grossAmount := trade.Quantity.Mul(trade.Price)
	costs := trade.Commission.Add(trade.Tax)

	var tradeAmount decimal.Decimal
	if trade.Side.consumesCash() {
		tradeAmount = DefaultRounding.RoundAmount(grossAmount.Add(costs).Neg())
	} else {
		tradeAmount = DefaultRounding.RoundAmount(grossAmount.Sub(costs))
	}

	projected := currentBalance.Add(tradeAmount)
	return CashImpactPreview{
		Currency:         trade.Currency,
		CurrentBalance:   M(currentBalance, trade.Currency),
		TradeAmount:      M(tradeAmount, trade.Currency),
		ProjectedBalance: M(projected, trade.Currency),
		Sufficient:       projected.GreaterThanOrEqual(decimal.Zero),
	}
}

// InsufficientCashError is the business-rule rejection of a buy or cover that
// the cash account cannot fund. It is the only failure the cash engine
// produces; degenerate numeric inputs never error.
type InsufficientCashError struct {
	Currency string
	Balance  Money
	Required Money
}

func (e *InsufficientCashError) Error() string {
	return fmt.Sprintf("insufficient %s balance: have %s, need %s", e.Currency, e.Balance, e.Required)
}

// ValidateCashSufficiency checks that a trade can be funded. Sells and shorts
// always pass: by this model they only ever add cash. Buys and covers fail
// with an *InsufficientCashError when the projected balance would go
// negative. The preview is returned in every case.
func ValidateCashSufficiency(trade Trade, balances Balances) (CashImpactPreview, error) {
	preview := PreviewCashImpact(trade, balances)

	if !trade.Side.consumesCash() {
		return preview, nil
	}
	if !preview.Sufficient {
		return preview, &InsufficientCashError{
			Currency: trade.Currency,
			Balance:  preview.CurrentBalance,
			Required: preview.TradeAmount.Abs(),
		}
	}
	return preview, nil
}
