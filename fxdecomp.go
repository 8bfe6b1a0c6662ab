package perf

import "github.com/shopspring/decimal"

// FxDecomposition splits a foreign position's EUR return into its parts.
// The three components relate to the total by exact geometric composition:
//
//	TotalReturnEur = (1+LocalReturn)×(1+FxImpact) - 1
//	CrossTerm      = TotalReturnEur - LocalReturn - FxImpact
type FxDecomposition struct {
	LocalReturn    decimal.Decimal `json:"localReturn"`
	FxImpact       decimal.Decimal `json:"fxImpact"`
	CrossTerm      decimal.Decimal `json:"crossTerm"`
	TotalReturnEur decimal.Decimal `json:"totalReturnEur"`
}

// DecomposeFxReturn splits the EUR return of a position quoted in a foreign
// currency into the part driven by the local price move and the part driven
// by the exchange-rate move. Rates follow the engine-wide convention
// (1 EUR = rate foreign units), so a rate falling from entry to current means
// the euro weakened and the FX impact is positive.
//
// The cross term is derived from the identity rather than its own formula so
// the components always reconcile exactly with the total.
func DecomposeFxReturn(entryPriceLocal, currentPriceLocal, entryFxRate, currentFxRate decimal.Decimal) FxDecomposition {
	one := decimal.NewFromInt(1)

	localReturn := SafeDivide(currentPriceLocal.Sub(entryPriceLocal), entryPriceLocal)
	fxImpact := SafeDivide(entryFxRate, currentFxRate).Sub(one)
	totalReturnEur := one.Add(localReturn).Mul(one.Add(fxImpact)).Sub(one)
	crossTerm := totalReturnEur.Sub(localReturn).Sub(fxImpact)

	return FxDecomposition{
		LocalReturn:    localReturn,
		FxImpact:       fxImpact,
		CrossTerm:      crossTerm,
		TotalReturnEur: totalReturnEur,
	}
}
