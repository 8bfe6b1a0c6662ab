package perf

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Rounding is the explicit precision policy applied by the engine. It is a
// plain value passed around (or the package default used), never mutated
// library-wide state, so results do not depend on call order.
type Rounding struct {
	Amount  int32 // decimal places for monetary amounts
	Price   int32 // decimal places for prices
	FxRate  int32 // decimal places for foreign-exchange rates
	Percent int32 // decimal places for percentages stored as decimal fractions
	Div     int32 // digits kept by safe division
}

// DefaultRounding matches the reporting conventions used across the engine:
// 2dp money, 6dp prices and percentages, 8dp FX rates. Ties round half up
// (away from zero), which is what decimal.Decimal.Round does.
var DefaultRounding = Rounding{Amount: 2, Price: 6, FxRate: 8, Percent: 6, Div: 28}

// RoundAmount rounds a monetary amount.
func (r Rounding) RoundAmount(d decimal.Decimal) decimal.Decimal { return d.Round(r.Amount) }

// RoundPrice rounds a price.
func (r Rounding) RoundPrice(d decimal.Decimal) decimal.Decimal { return d.Round(r.Price) }

// RoundFxRate rounds a foreign-exchange rate.
func (r Rounding) RoundFxRate(d decimal.Decimal) decimal.Decimal { return d.Round(r.FxRate) }

// RoundPercent rounds a percentage expressed as a decimal fraction.
func (r Rounding) RoundPercent(d decimal.Decimal) decimal.Decimal { return d.Round(r.Percent) }

// SafeDivide returns numerator/denominator, or zero when the denominator is
// zero. A zero denominator is not exceptional here: it signals "no meaningful
// base capital" and metrics treat it as a neutral result.
func (r Rounding) SafeDivide(numerator, denominator decimal.Decimal) decimal.Decimal {
	if denominator.IsZero() {
		return decimal.Zero
	}
	return numerator.DivRound(denominator, r.Div)
}

// SafeDivide divides under the default rounding policy.
func SafeDivide(numerator, denominator decimal.Decimal) decimal.Decimal {
	return DefaultRounding.SafeDivide(numerator, denominator)
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// D builds a decimal from any common numeric type.
func D[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	return newDecimal(value)
}

// ParseDecimal converts a string to an exact decimal. This is the one place
// where malformed input fails fast: everything past this boundary operates on
// well-formed decimals.
func ParseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid decimal %q: %w", s, err)
	}
	return d, nil
}

// Sum adds a slice of decimals.
func Sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// WeightedAverage returns the weight-weighted mean of values. Mismatched or
// empty inputs, or a zero total weight, yield zero.
func WeightedAverage(values, weights []decimal.Decimal) decimal.Decimal {
	if len(values) != len(weights) || len(values) == 0 {
		return decimal.Zero
	}
	totalWeight := Sum(weights)
	if totalWeight.IsZero() {
		return decimal.Zero
	}
	weightedSum := decimal.Zero
	for i, v := range values {
		weightedSum = weightedSum.Add(v.Mul(weights[i]))
	}
	return SafeDivide(weightedSum, totalWeight)
}

// sqrtPrecision is the number of digits computed for square roots; enough to
// dominate the 6dp rounding any ratio is reported at.
const sqrtPrecision = 16

var half = decimal.NewFromFloat(0.5)

// sqrt returns the square root of d, or zero for non-positive inputs.
func sqrt(d decimal.Decimal) decimal.Decimal {
	if d.Sign() <= 0 {
		return decimal.Zero
	}
	root, err := d.PowWithPrecision(half, sqrtPrecision)
	if err != nil {
		return decimal.Zero
	}
	return root
}
