package perf

import (
	"sort"

	"github.com/shopspring/decimal"
)

// SegmentData is one allocation bucket (sector, asset class, region...) on
// either the portfolio or the benchmark side: its weight and return over the
// analyzed period, both as decimal fractions.
type SegmentData struct {
	Segment string          `json:"segment"`
	Weight  decimal.Decimal `json:"weight"`
	Return  decimal.Decimal `json:"return"`
}

// SegmentAttribution is the Brinson-Fachler decomposition for one segment.
type SegmentAttribution struct {
	Segment           string          `json:"segment"`
	PortfolioWeight   decimal.Decimal `json:"portfolioWeight"`
	BenchmarkWeight   decimal.Decimal `json:"benchmarkWeight"`
	PortfolioReturn   decimal.Decimal `json:"portfolioReturn"`
	BenchmarkReturn   decimal.Decimal `json:"benchmarkReturn"`
	AllocationEffect  decimal.Decimal `json:"allocationEffect"`
	SelectionEffect   decimal.Decimal `json:"selectionEffect"`
	InteractionEffect decimal.Decimal `json:"interactionEffect"`
	TotalEffect       decimal.Decimal `json:"totalEffect"`
}

// BrinsonAttribution decomposes the excess return over a benchmark into
// allocation, selection, and interaction effects per segment:
//
//	allocation  = (Wp-Wb) × (Rb - totalBenchmarkReturn)
//	selection   = Wb × (Rp-Rb)
//	interaction = (Wp-Wb) × (Rp-Rb)
//
// The segment universe is the union of both sides; a segment present on only
// one side keeps zero weight and return on the other. Results are sorted by
// segment name so the output is deterministic.
func BrinsonAttribution(portfolioSegments, benchmarkSegments []SegmentData, totalBenchmarkReturn decimal.Decimal) []SegmentAttribution {
	bySegment := func(segments []SegmentData) map[string]SegmentData {
		m := make(map[string]SegmentData, len(segments))
		for _, s := range segments {
			m[s.Segment] = s
		}
		return m
	}
	pMap := bySegment(portfolioSegments)
	bMap := bySegment(benchmarkSegments)

	names := make([]string, 0, len(pMap)+len(bMap))
	for name := range pMap {
		names = append(names, name)
	}
	for name := range bMap {
		if _, dup := pMap[name]; !dup {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	results := make([]SegmentAttribution, 0, len(names))
	for _, name := range names {
		wp, rp := pMap[name].Weight, pMap[name].Return // zero value when absent
		wb, rb := bMap[name].Weight, bMap[name].Return

		allocation := wp.Sub(wb).Mul(rb.Sub(totalBenchmarkReturn))
		selection := wb.Mul(rp.Sub(rb))
		interaction := wp.Sub(wb).Mul(rp.Sub(rb))

		results = append(results, SegmentAttribution{
			Segment:           name,
			PortfolioWeight:   wp,
			BenchmarkWeight:   wb,
			PortfolioReturn:   rp,
			BenchmarkReturn:   rb,
			AllocationEffect:  allocation,
			SelectionEffect:   selection,
			InteractionEffect: interaction,
			TotalEffect:       allocation.Add(selection).Add(interaction),
		})
	}
	return results
}

// PositionReturn is a position's beginning weight and its period returns,
// used to compute contribution to return.
type PositionReturn struct {
	Ticker          string          `json:"ticker"`
	BeginningWeight decimal.Decimal `json:"beginningWeight"`
	LocalReturn     decimal.Decimal `json:"localReturn"`
	FxReturn        decimal.Decimal `json:"fxReturn"`
	TotalReturn     decimal.Decimal `json:"totalReturn"`
}

// Contribution is a position's contribution to portfolio return, split into
// its local-price and currency parts.
type Contribution struct {
	Ticker            string          `json:"ticker"`
	BeginningWeight   decimal.Decimal `json:"beginningWeight"`
	PositionReturn    decimal.Decimal `json:"positionReturn"`
	LocalContribution decimal.Decimal `json:"localContribution"`
	FxContribution    decimal.Decimal `json:"fxContribution"`
	TotalContribution decimal.Decimal `json:"totalContribution"`
}

// ContributionToReturn weights each position's returns by its beginning
// weight. Across all positions the total contributions are expected to sum to
// the portfolio return; that reconciliation is the caller's property to
// check, not enforced here.
func ContributionToReturn(positions []PositionReturn) []Contribution {
	out := make([]Contribution, 0, len(positions))
	for _, pos := range positions {
		out = append(out, Contribution{
			Ticker:            pos.Ticker,
			BeginningWeight:   pos.BeginningWeight,
			PositionReturn:    pos.TotalReturn,
			LocalContribution: pos.BeginningWeight.Mul(pos.LocalReturn),
			FxContribution:    pos.BeginningWeight.Mul(pos.FxReturn),
			TotalContribution: pos.BeginningWeight.Mul(pos.TotalReturn),
		})
	}
	return out
}
