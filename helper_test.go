package perf

import (
	"testing"

	"github.com/shopspring/decimal"
)

// dec is a helper for tests to build decimals from literals.
func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// defaultTolerance is tight enough to catch formula mistakes while leaving
// room for the solver and square-root approximations.
var defaultTolerance = dec("0.000001")

// assertDecimal fails the test when got is not within tol of want.
func assertDecimal(t *testing.T, name string, got decimal.Decimal, want, tol string) {
	t.Helper()
	w := dec(want)
	if got.Sub(w).Abs().GreaterThan(dec(tol)) {
		t.Errorf("%s = %s, want %s (±%s)", name, got, w, tol)
	}
}

// assertDecimalExact fails the test when got differs from want at all.
func assertDecimalExact(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Errorf("%s = %s, want %s", name, got, want)
	}
}
