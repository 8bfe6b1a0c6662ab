package renderer

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/quantfolio/perf"
	"github.com/shopspring/decimal"
)

// BenchmarkReport is a struct to represent a portfolio-versus-benchmark
// comparison in json.
type BenchmarkReport struct {

	// Name of the portfolio.
	Name string `json:"name,omitempty"`
	// Benchmark names the series compared against.
	Benchmark string `json:"benchmark,omitempty"`
	// PortfolioReturn and BenchmarkReturn are the compounded period returns.
	PortfolioReturn perf.Percent `json:"portfolioReturn"`
	BenchmarkReturn perf.Percent `json:"benchmarkReturn"`
	// ExcessReturn is the arithmetic difference.
	ExcessReturn perf.Percent `json:"excessReturn"`
	// RelativePerformance is the geometric difference.
	RelativePerformance perf.Percent `json:"relativePerformance"`
	// TrackingError is the annualized volatility of the daily excess returns.
	TrackingError perf.Percent `json:"trackingError"`
	// InformationRatio is the annualized excess return per unit of tracking error.
	InformationRatio decimal.Decimal `json:"informationRatio"`
}

// NewBenchmarkReport compounds both daily series and compares them.
func NewBenchmarkReport(name, benchmark string, portfolioDaily, benchmarkDaily []decimal.Decimal) *BenchmarkReport {
	p := perf.CompoundReturns(portfolioDaily)
	b := perf.CompoundReturns(benchmarkDaily)
	return &BenchmarkReport{
		Name:                name,
		Benchmark:           benchmark,
		PortfolioReturn:     perf.AsPercent(p),
		BenchmarkReturn:     perf.AsPercent(b),
		ExcessReturn:        perf.AsPercent(perf.ExcessReturn(p, b)),
		RelativePerformance: perf.AsPercent(perf.RelativePerformance(p, b)),
		TrackingError:       perf.AsPercent(perf.TrackingError(portfolioDaily, benchmarkDaily)),
		InformationRatio:    perf.InformationRatio(portfolioDaily, benchmarkDaily).Round(4),
	}
}

const benchmarkMarkdownTemplate = `# Benchmark Comparison{{ if .Name }} for {{ .Name }}{{ end }}

{{ if .Benchmark }}Benchmark: **{{ .Benchmark }}**

{{ end -}}
| Metric | Value |
|:---|---:|
| Portfolio return | {{ .PortfolioReturn.SignedString }} |
| Benchmark return | {{ .BenchmarkReturn.SignedString }} |
| Excess return | {{ .ExcessReturn.SignedString }} |
| Relative performance | {{ .RelativePerformance.SignedString }} |
| Tracking error | {{ .TrackingError }} |
| Information ratio | {{ .InformationRatio }} |
`

// RenderBenchmarkReport renders the BenchmarkReport struct to a markdown string.
func RenderBenchmarkReport(r *BenchmarkReport) string {
	tmpl := template.Must(template.New("benchmark").Parse(benchmarkMarkdownTemplate))
	var b strings.Builder
	if err := tmpl.Execute(&b, r); err != nil {
		return fmt.Sprintf("Error executing template: %v", err)
	}
	return b.String()
}
