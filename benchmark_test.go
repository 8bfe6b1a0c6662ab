package perf

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestExcessReturn(t *testing.T) {
	assertDecimalExact(t, "ExcessReturn", ExcessReturn(dec("0.08"), dec("0.05")), "0.03")
	assertDecimalExact(t, "ExcessReturn", ExcessReturn(dec("0.03"), dec("0.05")), "-0.02")
}

func TestRelativePerformance(t *testing.T) {
	// (1.08/1.05) - 1 ≈ 0.028571
	got := RelativePerformance(dec("0.08"), dec("0.05"))
	assertDecimal(t, "RelativePerformance", got, "0.028571", "0.000001")

	t.Run("benchmark at -100% is neutral", func(t *testing.T) {
		got := RelativePerformance(dec("0.08"), dec("-1"))
		assertDecimalExact(t, "RelativePerformance", got, "0")
	})
}

func TestTrackingError(t *testing.T) {
	t.Run("degenerate series", func(t *testing.T) {
		assertDecimalExact(t, "too short", TrackingError(decs("0.01"), decs("0.01")), "0")
		assertDecimalExact(t, "mismatched", TrackingError(decs("0.01", "0.02"), decs("0.01")), "0")
	})

	t.Run("constant excess has no tracking error", func(t *testing.T) {
		got := TrackingError(decs("0.015", "0.025", "0.035"), decs("0.01", "0.02", "0.03"))
		assertDecimalExact(t, "TrackingError", got, "0")
	})

	t.Run("known value", func(t *testing.T) {
		// Excess returns {0.005, 0.025}: sample std √0.0002, annualized ×√252.
		got := TrackingError(decs("0.01", "0.03"), decs("0.005", "0.005"))
		assertDecimal(t, "TrackingError", got, "0.224499", "0.0001")
	})
}

func TestInformationRatio(t *testing.T) {
	t.Run("zero tracking error is neutral", func(t *testing.T) {
		got := InformationRatio(decs("0.015", "0.025"), decs("0.01", "0.02"))
		assertDecimalExact(t, "InformationRatio", got, "0")
	})

	t.Run("consistent with its definition", func(t *testing.T) {
		p := decs("0.01", "0.03", "-0.005", "0.02")
		b := decs("0.005", "0.01", "0.002", "0.011")

		te := TrackingError(p, b)
		excess := excessSeries(p, b)
		want := SafeDivide(mean(excess).Mul(decimal.NewFromInt(252)), te)

		got := InformationRatio(p, b)
		if got.Sub(want).Abs().GreaterThan(defaultTolerance) {
			t.Errorf("InformationRatio = %s, want %s", got, want)
		}
		if !got.IsPositive() {
			t.Errorf("InformationRatio = %s, want positive for an outperforming series", got)
		}
	})
}
