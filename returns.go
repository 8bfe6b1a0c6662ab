package perf

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DailyReturn is one day's portfolio return, as a decimal fraction.
type DailyReturn struct {
	Date   Date            `json:"date"`
	Return decimal.Decimal `json:"return"`
}

// PeriodReturn compounds the daily returns falling inside rng (boundaries
// included). The series must be in chronological order; compounding is
// order sensitive.
func PeriodReturn(daily []DailyReturn, rng Range) decimal.Decimal {
	var returns []decimal.Decimal
	for _, dr := range daily {
		if rng.Contains(dr.Date) {
			returns = append(returns, dr.Return)
		}
	}
	return CompoundReturns(returns)
}

// WeekToDateReturn compounds daily returns from the Monday of the reference
// date's week through the reference date.
func WeekToDateReturn(daily []DailyReturn, reference Date) decimal.Decimal {
	return PeriodReturn(daily, Range{From: reference.StartOf(Weekly), To: reference})
}

// MonthToDateReturn compounds daily returns from the first of the reference
// date's month through the reference date.
func MonthToDateReturn(daily []DailyReturn, reference Date) decimal.Decimal {
	return PeriodReturn(daily, Range{From: reference.StartOf(Monthly), To: reference})
}

// YearToDateReturn compounds daily returns from January 1st of the reference
// date's year through the reference date.
func YearToDateReturn(daily []DailyReturn, reference Date) decimal.Decimal {
	return PeriodReturn(daily, Range{From: reference.StartOf(Yearly), To: reference})
}

// MonthlyReturn is the compounded return of one calendar month.
type MonthlyReturn struct {
	Month  string          `json:"month"` // "2006-01"
	Return decimal.Decimal `json:"return"`
}

// MonthlyReturns aggregates a daily series into per-month compounded returns,
// sorted chronologically.
func MonthlyReturns(daily []DailyReturn) []MonthlyReturn {
	byMonth := make(map[string][]decimal.Decimal)
	for _, dr := range daily {
		key := dr.Date.Format("2006-01")
		byMonth[key] = append(byMonth[key], dr.Return)
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	out := make([]MonthlyReturn, 0, len(months))
	for _, m := range months {
		out = append(out, MonthlyReturn{Month: m, Return: CompoundReturns(byMonth[m])})
	}
	return out
}
