package perf

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestBrinsonAttribution(t *testing.T) {
	portfolio := []SegmentData{
		{Segment: "Energy", Weight: dec("0.40"), Return: dec("0.12")},
		{Segment: "Tech", Weight: dec("0.60"), Return: dec("0.08")},
	}
	benchmark := []SegmentData{
		{Segment: "Energy", Weight: dec("0.30"), Return: dec("0.10")},
		{Segment: "Tech", Weight: dec("0.70"), Return: dec("0.06")},
	}

	got := BrinsonAttribution(portfolio, benchmark, dec("0.072"))
	if len(got) != 2 {
		t.Fatalf("BrinsonAttribution() returned %d segments, want 2", len(got))
	}

	// Sorted by name: Energy first.
	energy, tech := got[0], got[1]
	if energy.Segment != "Energy" || tech.Segment != "Tech" {
		t.Fatalf("segments = %s, %s; want Energy, Tech", energy.Segment, tech.Segment)
	}

	assertDecimal(t, "Energy allocation", energy.AllocationEffect, "0.0028", "0.000001")
	assertDecimal(t, "Energy selection", energy.SelectionEffect, "0.006", "0.000001")
	assertDecimal(t, "Energy interaction", energy.InteractionEffect, "0.002", "0.000001")
	assertDecimal(t, "Energy total", energy.TotalEffect, "0.0108", "0.000001")

	assertDecimal(t, "Tech allocation", tech.AllocationEffect, "0.0012", "0.000001")
	assertDecimal(t, "Tech selection", tech.SelectionEffect, "0.014", "0.000001")
	assertDecimal(t, "Tech interaction", tech.InteractionEffect, "-0.002", "0.000001")
	assertDecimal(t, "Tech total", tech.TotalEffect, "0.0132", "0.000001")
}

func TestBrinsonAttribution_SegmentUnion(t *testing.T) {
	portfolio := []SegmentData{
		{Segment: "Gold", Weight: dec("0.10"), Return: dec("0.15")},
	}
	benchmark := []SegmentData{
		{Segment: "Bonds", Weight: dec("0.10"), Return: dec("0.02")},
	}

	got := BrinsonAttribution(portfolio, benchmark, dec("0.05"))
	if len(got) != 2 {
		t.Fatalf("BrinsonAttribution() returned %d segments, want 2 (union of both sides)", len(got))
	}

	bonds, gold := got[0], got[1]
	if bonds.Segment != "Bonds" || gold.Segment != "Gold" {
		t.Fatalf("segments = %s, %s; want Bonds, Gold", bonds.Segment, gold.Segment)
	}

	// Gold is absent from the benchmark: Wb = Rb = 0.
	assertDecimalExact(t, "Gold benchmark weight", gold.BenchmarkWeight, "0")
	// allocation = (0.10-0) × (0-0.05) = -0.005
	assertDecimal(t, "Gold allocation", gold.AllocationEffect, "-0.005", "0.000001")
	// selection = 0 × (0.15-0) = 0
	assertDecimalExact(t, "Gold selection", gold.SelectionEffect, "0")
	// interaction = 0.10 × 0.15 = 0.015
	assertDecimal(t, "Gold interaction", gold.InteractionEffect, "0.015", "0.000001")

	// Bonds is absent from the portfolio: Wp = Rp = 0.
	assertDecimalExact(t, "Bonds portfolio weight", bonds.PortfolioWeight, "0")
	// allocation = (0-0.10) × (0.02-0.05) = 0.003
	assertDecimal(t, "Bonds allocation", bonds.AllocationEffect, "0.003", "0.000001")
	// selection = 0.10 × (0-0.02) = -0.002
	assertDecimal(t, "Bonds selection", bonds.SelectionEffect, "-0.002", "0.000001")
}

func TestBrinsonAttribution_Empty(t *testing.T) {
	if got := BrinsonAttribution(nil, nil, decimal.Zero); len(got) != 0 {
		t.Errorf("BrinsonAttribution(nil, nil) returned %d segments, want 0", len(got))
	}
}

func TestContributionToReturn(t *testing.T) {
	positions := []PositionReturn{
		{Ticker: "AAPL", BeginningWeight: dec("0.60"), LocalReturn: dec("0.10"), FxReturn: dec("0.02"), TotalReturn: dec("0.122")},
		{Ticker: "ASML", BeginningWeight: dec("0.40"), LocalReturn: dec("-0.05"), FxReturn: dec("0"), TotalReturn: dec("-0.05")},
	}

	got := ContributionToReturn(positions)
	if len(got) != 2 {
		t.Fatalf("ContributionToReturn() returned %d rows, want 2", len(got))
	}

	assertDecimal(t, "AAPL local", got[0].LocalContribution, "0.06", "0.000001")
	assertDecimal(t, "AAPL fx", got[0].FxContribution, "0.012", "0.000001")
	assertDecimal(t, "AAPL total", got[0].TotalContribution, "0.0732", "0.000001")
	assertDecimal(t, "ASML total", got[1].TotalContribution, "-0.02", "0.000001")

	// The totals should reconcile to the weighted portfolio return.
	sum := decimal.Zero
	for _, c := range got {
		sum = sum.Add(c.TotalContribution)
	}
	want := dec("0.60").Mul(dec("0.122")).Add(dec("0.40").Mul(dec("-0.05")))
	if !sum.Equal(want) {
		t.Errorf("sum of contributions = %s, want %s", sum, want)
	}
}
