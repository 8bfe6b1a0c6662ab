package renderer

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/quantfolio/perf"
	"github.com/shopspring/decimal"
)

// RiskReport is a struct to represent risk metrics of a daily return series
// in json.
type RiskReport struct {

	// Name of the portfolio.
	Name string `json:"name,omitempty"`
	// From and To bound the analyzed series.
	From perf.Date `json:"from"`
	To   perf.Date `json:"to"`
	// Observations is the number of daily returns analyzed.
	Observations int `json:"observations"`
	// Sharpe is the annualized Sharpe ratio.
	Sharpe decimal.Decimal `json:"sharpe"`
	// Sortino is the annualized Sortino ratio.
	Sortino decimal.Decimal `json:"sortino"`
	// MaxDrawdown is the worst peak-to-trough decline.
	MaxDrawdown perf.Percent `json:"maxDrawdown"`
	// CurrentDrawdown is the decline from the running peak at the end.
	CurrentDrawdown perf.Percent `json:"currentDrawdown"`
	// Volatility is the annualized rolling volatility at the end of the series.
	Volatility perf.Percent `json:"volatility"`
	// Window is the observation count the rolling volatility is computed over.
	Window int `json:"window"`
}

// NewRiskReport computes all risk metrics of a daily series against a daily
// risk-free rate.
func NewRiskReport(name string, daily []perf.DailyReturn, riskFreeDaily decimal.Decimal, window int) *RiskReport {
	returns := make([]decimal.Decimal, len(daily))
	r := &RiskReport{
		Name:         name,
		Observations: len(daily),
		Window:       window,
	}
	for i, d := range daily {
		returns[i] = d.Return
	}
	if len(daily) > 0 {
		r.From, r.To = daily[0].Date, daily[len(daily)-1].Date
	}

	r.Sharpe = perf.SharpeRatio(returns, riskFreeDaily).Round(4)
	r.Sortino = perf.SortinoRatio(returns, riskFreeDaily).Round(4)
	r.MaxDrawdown = perf.AsPercent(perf.MaxDrawdown(returns))
	r.CurrentDrawdown = perf.AsPercent(perf.CurrentDrawdown(returns))
	r.Volatility = perf.AsPercent(perf.RollingVolatility(returns, window))
	return r
}

const riskMarkdownTemplate = `# Risk Report {{ .From }} to {{ .To }}

{{ if .Name }}Portfolio: **{{ .Name }}**

{{ end -}}
{{ .Observations }} daily observations.

| Metric | Value |
|:---|---:|
| Sharpe ratio | {{ .Sharpe }} |
| Sortino ratio | {{ .Sortino }} |
| Max drawdown | {{ .MaxDrawdown }} |
| Current drawdown | {{ .CurrentDrawdown }} |
| Rolling volatility ({{ .Window }}d) | {{ .Volatility }} |
`

// RenderRiskReport renders the RiskReport struct to a markdown string.
func RenderRiskReport(r *RiskReport) string {
	tmpl := template.Must(template.New("risk").Parse(riskMarkdownTemplate))
	var b strings.Builder
	if err := tmpl.Execute(&b, r); err != nil {
		return fmt.Sprintf("Error executing template: %v", err)
	}
	return b.String()
}
