package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quantfolio/perf"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "input.json")
	if err := os.WriteFile(name, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestReadInput(t *testing.T) {
	name := writeTemp(t, `{"beginningValue": "10000", "endingValue": "10500",
		"cashFlows": [{"date": "2024-01-15", "amount": "1000"}],
		"periodStart": "2024-01-01", "periodEnd": "2024-01-31"}`)

	var in dietzInput
	if err := readInput(name, "", &in); err != nil {
		t.Fatalf("readInput failed: %v", err)
	}
	if in.BeginningValue.String() != "10000" {
		t.Errorf("beginningValue = %s, want 10000", in.BeginningValue)
	}
	if len(in.CashFlows) != 1 || in.CashFlows[0].Date.String() != "2024-01-15" {
		t.Errorf("cashFlows = %v", in.CashFlows)
	}
}

func TestReadInputWithPath(t *testing.T) {
	// the payload is buried inside a larger export document.
	name := writeTemp(t, `{"export": {"valuation": {
		"beginningValue": "10000", "endingValue": "10500",
		"periodStart": "2024-01-01", "periodEnd": "2024-01-31"}}}`)

	var in dietzInput
	if err := readInput(name, "$.export.valuation", &in); err != nil {
		t.Fatalf("readInput failed: %v", err)
	}
	if in.EndingValue.String() != "10500" {
		t.Errorf("endingValue = %s, want 10500", in.EndingValue)
	}
}

func TestReadInputSeries(t *testing.T) {
	name := writeTemp(t, `{"series": [
		{"date": "2024-07-01", "return": "0.01"},
		{"date": "2024-07-02", "return": "-0.005"}]}`)

	var daily []perf.DailyReturn
	if err := readInput(name, "$.series", &daily); err != nil {
		t.Fatalf("readInput failed: %v", err)
	}
	if len(daily) != 2 {
		t.Fatalf("got %d daily returns, want 2", len(daily))
	}
	if daily[1].Return.String() != "-0.005" {
		t.Errorf("second return = %s, want -0.005", daily[1].Return)
	}
}

func TestReadInputBadPath(t *testing.T) {
	name := writeTemp(t, `{"a": 1}`)
	var in dietzInput
	if err := readInput(name, "$.missing[", &in); err == nil {
		t.Error("expected an error for an invalid jsonpath")
	}
}
