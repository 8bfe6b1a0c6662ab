package perf

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDecomposeFxReturn(t *testing.T) {
	t.Run("reference scenario", func(t *testing.T) {
		// Price 100→110 local, rate 1.10→1.05 (euro weakened).
		got := DecomposeFxReturn(dec("100"), dec("110"), dec("1.10"), dec("1.05"))
		assertDecimal(t, "LocalReturn", got.LocalReturn, "0.10", "0.000001")
		assertDecimal(t, "FxImpact", got.FxImpact, "0.047619", "0.000001")
		assertDecimal(t, "TotalReturnEur", got.TotalReturnEur, "0.152381", "0.000001")
		assertDecimal(t, "CrossTerm", got.CrossTerm, "0.004762", "0.000001")
	})

	t.Run("euro strengthening hurts", func(t *testing.T) {
		// Flat local price, rate 1.00→1.25: the EUR value fell by 20%.
		got := DecomposeFxReturn(dec("100"), dec("100"), dec("1.00"), dec("1.25"))
		assertDecimalExact(t, "LocalReturn", got.LocalReturn, "0")
		assertDecimal(t, "FxImpact", got.FxImpact, "-0.20", "0.000001")
		assertDecimal(t, "TotalReturnEur", got.TotalReturnEur, "-0.20", "0.000001")
	})

	t.Run("zero entry price is neutral", func(t *testing.T) {
		got := DecomposeFxReturn(decimal.Zero, dec("110"), dec("1.10"), dec("1.05"))
		assertDecimalExact(t, "LocalReturn", got.LocalReturn, "0")
	})

	t.Run("zero current rate is neutral", func(t *testing.T) {
		got := DecomposeFxReturn(dec("100"), dec("110"), dec("1.10"), decimal.Zero)
		assertDecimal(t, "FxImpact", got.FxImpact, "-1", "0.000001")
	})
}

// The decomposition is built on two exact identities; they must hold for any
// input, not just friendly ones.
func TestDecomposeFxReturn_Identities(t *testing.T) {
	cases := [][4]string{
		{"100", "110", "1.10", "1.05"},
		{"37.5", "12.25", "0.85", "1.6321"},
		{"250", "250", "145.2", "145.2"},
		{"3", "4500", "0.0075", "9.81"},
	}
	one := decimal.NewFromInt(1)
	for _, c := range cases {
		got := DecomposeFxReturn(dec(c[0]), dec(c[1]), dec(c[2]), dec(c[3]))

		composed := one.Add(got.LocalReturn).Mul(one.Add(got.FxImpact)).Sub(one)
		if !got.TotalReturnEur.Equal(composed) {
			t.Errorf("total %s != (1+local)(1+fx)-1 %s for %v", got.TotalReturnEur, composed, c)
		}

		residual := got.TotalReturnEur.Sub(got.LocalReturn).Sub(got.FxImpact)
		if !got.CrossTerm.Equal(residual) {
			t.Errorf("cross term %s != total-local-fx %s for %v", got.CrossTerm, residual, c)
		}
	}
}
