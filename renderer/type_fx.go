package renderer

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/quantfolio/perf"
)

// FxReport is a struct to represent the currency decomposition of a foreign
// position's return in json.
type FxReport struct {

	// Ticker of the position.
	Ticker string `json:"ticker,omitempty"`
	// Currency the position is priced in.
	Currency string `json:"currency"`
	// LocalReturn is the price return in the position's own currency.
	LocalReturn perf.Percent `json:"localReturn"`
	// FxImpact is the return caused by the currency move alone.
	FxImpact perf.Percent `json:"fxImpact"`
	// CrossTerm closes the geometric identity between the parts and the total.
	CrossTerm perf.Percent `json:"crossTerm"`
	// TotalReturnEur is the full return seen from the euro side.
	TotalReturnEur perf.Percent `json:"totalReturnEur"`
}

// NewFxReport wraps a decomposition for rendering.
func NewFxReport(ticker, currency string, d perf.FxDecomposition) *FxReport {
	return &FxReport{
		Ticker:         ticker,
		Currency:       currency,
		LocalReturn:    perf.AsPercent(d.LocalReturn),
		FxImpact:       perf.AsPercent(d.FxImpact),
		CrossTerm:      perf.AsPercent(d.CrossTerm),
		TotalReturnEur: perf.AsPercent(d.TotalReturnEur),
	}
}

const fxMarkdownTemplate = `# Currency Decomposition{{ if .Ticker }} for {{ .Ticker }}{{ end }}

Position currency: **{{ .Currency }}**

| Component | Return |
|:---|---:|
| Local price return | {{ .LocalReturn.SignedString }} |
| Currency impact | {{ .FxImpact.SignedString }} |
| Cross term | {{ .CrossTerm.SignedString }} |
| **Total (EUR)** | **{{ .TotalReturnEur.SignedString }}** |
`

// RenderFxReport renders the FxReport struct to a markdown string.
func RenderFxReport(r *FxReport) string {
	tmpl := template.Must(template.New("fx").Parse(fxMarkdownTemplate))
	var b strings.Builder
	if err := tmpl.Execute(&b, r); err != nil {
		return fmt.Sprintf("Error executing template: %v", err)
	}
	return b.String()
}
