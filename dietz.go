package perf

import "github.com/shopspring/decimal"

// CashFlow is an external flow into or out of the measured portfolio.
// Positive amounts are deposits (money added), negative are withdrawals.
type CashFlow struct {
	Date   Date            `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// ModifiedDietz computes the time-weighted return approximation for a period
// with interior cash flows:
//
//	R = (EMV - BMV - CF) / (BMV + Σ(CFi × Wi))
//
// where Wi = (CD - Di) / CD, CD is the calendar-day length of the period and
// Di the day of flow i within it. A flow on the first day is fully weighted;
// a flow on the last day has weight near zero.
//
// A zero-length (or reversed) period and a zero denominator both yield zero:
// they mean "no time elapsed" and "no meaningful base capital", which are
// expected conditions, not errors.
func ModifiedDietz(beginningValue, endingValue decimal.Decimal, cashFlows []CashFlow, periodStart, periodEnd Date) decimal.Decimal {
	totalDays := DaysBetween(periodStart, periodEnd)
	if totalDays <= 0 {
		return decimal.Zero
	}
	cd := decimal.NewFromInt(int64(totalDays))

	totalCashFlow := decimal.Zero
	weightedCashFlows := decimal.Zero
	for _, cf := range cashFlows {
		totalCashFlow = totalCashFlow.Add(cf.Amount)

		di := decimal.NewFromInt(int64(DaysBetween(periodStart, cf.Date)))
		wi := SafeDivide(cd.Sub(di), cd)
		weightedCashFlows = weightedCashFlows.Add(cf.Amount.Mul(wi))
	}

	numerator := endingValue.Sub(beginningValue).Sub(totalCashFlow)
	denominator := beginningValue.Add(weightedCashFlows)
	return SafeDivide(numerator, denominator)
}

// CompoundReturns chains period returns geometrically: Π(1+Ri) - 1.
// An empty series compounds to zero.
func CompoundReturns(returns []decimal.Decimal) decimal.Decimal {
	if len(returns) == 0 {
		return decimal.Zero
	}
	one := decimal.NewFromInt(1)
	product := one
	for _, r := range returns {
		product = product.Mul(one.Add(r))
	}
	return product.Sub(one)
}
