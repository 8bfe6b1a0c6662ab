package perf

import "github.com/shopspring/decimal"

// FX rate convention used across the engine: a rate is "1 EUR = rate units of
// foreign currency" (the ECB quote direction). EUR strengthening means the
// rate goes up, which lowers the EUR value of foreign holdings.

// ConvertToEur converts a foreign-currency amount to EUR, rounded to a
// monetary amount. A EUR input is returned unchanged.
func ConvertToEur(amount decimal.Decimal, currency string, fxRate decimal.Decimal) decimal.Decimal {
	if currency == "EUR" {
		return amount
	}
	return DefaultRounding.RoundAmount(SafeDivide(amount, fxRate))
}

// ConvertFromEur converts a EUR amount into the given foreign currency,
// rounded to a monetary amount.
func ConvertFromEur(amountEur decimal.Decimal, currency string, fxRate decimal.Decimal) decimal.Decimal {
	if currency == "EUR" {
		return amountEur
	}
	return DefaultRounding.RoundAmount(amountEur.Mul(fxRate))
}

// InvertRate flips a rate from "foreign per EUR" to "EUR per foreign",
// rounded to FX-rate precision.
func InvertRate(rate decimal.Decimal) decimal.Decimal {
	return DefaultRounding.RoundFxRate(SafeDivide(decimal.NewFromInt(1), rate))
}
