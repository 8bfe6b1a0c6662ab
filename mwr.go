package perf

import (
	"math"

	"github.com/shopspring/decimal"
)

// Solver defaults for MWR. The tolerance applies to successive rate
// estimates, not to the discounted-flow residual.
const (
	mwrMaxIterations = 100
	mwrTolerance     = 1e-10
)

// daysPerYear converts calendar days to year fractions for annualization.
const daysPerYear = 365.25

type datedFlow struct {
	amount float64
	years  float64 // years the flow stays invested until period end
}

// MWR computes the annualized money-weighted return (internal rate of
// return) over the period. The beginning value is treated as an outflow at
// the period start, the ending value as an inflow at the period end, and
// each cash flow as a flow at its own date. It solves for r in
//
//	Σ flow_i × (1+r)^years_i = 0
//
// using the default iteration budget and tolerance.
func MWR(cashFlows []CashFlow, beginValue, endValue decimal.Decimal, periodStart, periodEnd Date) decimal.Decimal {
	return MWRWithOptions(cashFlows, beginValue, endValue, periodStart, periodEnd, mwrMaxIterations, mwrTolerance)
}

// MWRWithOptions is MWR with an explicit iteration budget and convergence
// tolerance. The solver is best effort by design: when the budget runs out or
// the derivative vanishes it returns the last estimate rather than failing.
// A zero-length period yields zero.
//
// The Newton-Raphson iterate is a plain float64: the solved rate is a
// numerical root, not a monetary amount, and the original engine solves it in
// native floating point too. Inputs and the result stay decimal.
func MWRWithOptions(cashFlows []CashFlow, beginValue, endValue decimal.Decimal, periodStart, periodEnd Date, maxIterations int, tolerance float64) decimal.Decimal {
	totalDays := DaysBetween(periodStart, periodEnd)
	if totalDays <= 0 {
		return decimal.Zero
	}
	T := float64(totalDays) / daysPerYear

	// Signs are flipped so that solving Σ flow×(1+r)^years = 0 balances what
	// was put in against what came out.
	flows := make([]datedFlow, 0, len(cashFlows)+2)
	flows = append(flows, datedFlow{amount: beginValue.Neg().InexactFloat64(), years: T})
	for _, cf := range cashFlows {
		sinceStart := DaysBetween(periodStart, cf.Date)
		flows = append(flows, datedFlow{
			amount: cf.Amount.Neg().InexactFloat64(),
			years:  float64(totalDays-sinceStart) / daysPerYear,
		})
	}
	flows = append(flows, datedFlow{amount: endValue.InexactFloat64(), years: 0})

	r := 0.10 // initial guess
	for i := 0; i < maxIterations; i++ {
		if 1+r <= 0 {
			// Rate collapsed below -100%: halve the estimate instead of
			// raising a NaN power. This consumes an iteration.
			r = r / 2
			continue
		}

		var f, fPrime float64
		for _, flow := range flows {
			f += flow.amount * math.Pow(1+r, flow.years)
			if flow.years != 0 {
				fPrime += flow.amount * flow.years * math.Pow(1+r, flow.years-1)
			}
		}

		if math.Abs(fPrime) < 1e-15 {
			break // derivative vanished, keep the last estimate
		}

		next := r - f/fPrime
		if math.Abs(next-r) < tolerance {
			return decimal.NewFromFloat(next)
		}
		r = next
	}
	return decimal.NewFromFloat(r)
}
