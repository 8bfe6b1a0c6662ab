package perf

import "github.com/shopspring/decimal"

// tradingDaysPerYear is the fixed annualization convention for daily series.
const tradingDaysPerYear = 252

// annualization factors, computed once.
var (
	annualizeVol  = sqrt(decimal.NewFromInt(tradingDaysPerYear)) // √252
	annualizeMean = decimal.NewFromInt(tradingDaysPerYear)
)

// mean returns the arithmetic mean of the series.
func mean(returns []decimal.Decimal) decimal.Decimal {
	return SafeDivide(Sum(returns), decimal.NewFromInt(int64(len(returns))))
}

// sampleVariance returns the n-1 denominator variance around the mean.
func sampleVariance(returns []decimal.Decimal, m decimal.Decimal) decimal.Decimal {
	sumSquares := decimal.Zero
	for _, r := range returns {
		dev := r.Sub(m)
		sumSquares = sumSquares.Add(dev.Mul(dev))
	}
	return SafeDivide(sumSquares, decimal.NewFromInt(int64(len(returns)-1)))
}

// SharpeRatio is the annualized risk-adjusted return of a daily series:
// mean excess return over its sample standard deviation, scaled by √252.
// Fewer than two observations or a flat series yield zero, never a NaN or
// infinite ratio.
func SharpeRatio(returns []decimal.Decimal, riskFreeDaily decimal.Decimal) decimal.Decimal {
	if len(returns) < 2 {
		return decimal.Zero
	}

	excess := make([]decimal.Decimal, len(returns))
	for i, r := range returns {
		excess[i] = r.Sub(riskFreeDaily)
	}
	m := mean(excess)
	stdDev := sqrt(sampleVariance(excess, m))
	if stdDev.IsZero() {
		return decimal.Zero
	}
	return SafeDivide(m, stdDev).Mul(annualizeVol)
}

// SortinoRatio is the annualized mean excess return over downside deviation.
// The downside variance divides the sum of squared negative excess returns by
// the total observation count, not by the downside count. This matches the
// engine's established behavior and is kept as is. A series with no negative
// excess returns yields zero.
func SortinoRatio(returns []decimal.Decimal, riskFreeDaily decimal.Decimal) decimal.Decimal {
	if len(returns) < 2 {
		return decimal.Zero
	}

	excess := make([]decimal.Decimal, len(returns))
	for i, r := range returns {
		excess[i] = r.Sub(riskFreeDaily)
	}
	m := mean(excess)

	downsideSquares := decimal.Zero
	downsideCount := 0
	for _, r := range excess {
		if r.IsNegative() {
			downsideSquares = downsideSquares.Add(r.Mul(r))
			downsideCount++
		}
	}
	if downsideCount == 0 {
		return decimal.Zero
	}

	downsideVariance := SafeDivide(downsideSquares, decimal.NewFromInt(int64(len(returns))))
	downsideDev := sqrt(downsideVariance)
	if downsideDev.IsZero() {
		return decimal.Zero
	}
	return SafeDivide(m, downsideDev).Mul(annualizeVol)
}

// MaxDrawdown is the worst peak-to-trough decline of the cumulative wealth
// index built from the series, as a non-positive decimal fraction
// (-0.15 means a 15% drawdown). An empty or never-declining series yields zero.
func MaxDrawdown(returns []decimal.Decimal) decimal.Decimal {
	if len(returns) == 0 {
		return decimal.Zero
	}

	one := decimal.NewFromInt(1)
	peak := one
	cumulative := one
	maxDD := decimal.Zero
	for _, r := range returns {
		cumulative = cumulative.Mul(one.Add(r))
		if cumulative.GreaterThan(peak) {
			peak = cumulative
		}
		dd := SafeDivide(cumulative.Sub(peak), peak)
		if dd.LessThan(maxDD) {
			maxDD = dd
		}
	}
	return maxDD
}

// CurrentDrawdown is the decline from the running peak at the end of the
// series (zero when the series finishes at a new peak).
func CurrentDrawdown(returns []decimal.Decimal) decimal.Decimal {
	if len(returns) == 0 {
		return decimal.Zero
	}

	one := decimal.NewFromInt(1)
	peak := one
	cumulative := one
	for _, r := range returns {
		cumulative = cumulative.Mul(one.Add(r))
		if cumulative.GreaterThan(peak) {
			peak = cumulative
		}
	}
	return SafeDivide(cumulative.Sub(peak), peak)
}

// RollingVolatility is the annualized sample standard deviation of the most
// recent window observations. A series shorter than the window yields zero.
func RollingVolatility(returns []decimal.Decimal, window int) decimal.Decimal {
	if window <= 0 || len(returns) < window {
		return decimal.Zero
	}
	recent := returns[len(returns)-window:]
	m := mean(recent)
	return sqrt(sampleVariance(recent, m)).Mul(annualizeVol)
}
