package perf

import "github.com/shopspring/decimal"

// ExcessReturn is the arithmetic difference between the portfolio and
// benchmark returns over the same period.
func ExcessReturn(portfolioReturn, benchmarkReturn decimal.Decimal) decimal.Decimal {
	return portfolioReturn.Sub(benchmarkReturn)
}

// RelativePerformance is the geometric out/under-performance:
// (1+Rp)/(1+Rb) - 1. A benchmark at exactly -100% yields zero.
func RelativePerformance(portfolioReturn, benchmarkReturn decimal.Decimal) decimal.Decimal {
	one := decimal.NewFromInt(1)
	denom := one.Add(benchmarkReturn)
	if denom.IsZero() {
		return decimal.Zero
	}
	return SafeDivide(one.Add(portfolioReturn), denom).Sub(one)
}

// excessSeries pairs up two equal-length daily series into per-period excess
// returns. Returns nil when the series are unusable (mismatched or too short).
func excessSeries(portfolioReturns, benchmarkReturns []decimal.Decimal) []decimal.Decimal {
	if len(portfolioReturns) < 2 || len(portfolioReturns) != len(benchmarkReturns) {
		return nil
	}
	excess := make([]decimal.Decimal, len(portfolioReturns))
	for i, pr := range portfolioReturns {
		excess[i] = pr.Sub(benchmarkReturns[i])
	}
	return excess
}

// TrackingError is the annualized sample standard deviation of per-period
// excess returns. Mismatched or too-short series yield zero.
func TrackingError(portfolioReturns, benchmarkReturns []decimal.Decimal) decimal.Decimal {
	excess := excessSeries(portfolioReturns, benchmarkReturns)
	if excess == nil {
		return decimal.Zero
	}
	m := mean(excess)
	return sqrt(sampleVariance(excess, m)).Mul(annualizeVol)
}

// InformationRatio is the annualized mean excess return divided by the
// tracking error; zero when the tracking error is zero.
func InformationRatio(portfolioReturns, benchmarkReturns []decimal.Decimal) decimal.Decimal {
	te := TrackingError(portfolioReturns, benchmarkReturns)
	if te.IsZero() {
		return decimal.Zero
	}
	excess := excessSeries(portfolioReturns, benchmarkReturns)
	annualizedExcess := mean(excess).Mul(annualizeMean)
	return SafeDivide(annualizedExcess, te)
}
