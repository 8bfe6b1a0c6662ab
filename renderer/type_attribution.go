package renderer

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/quantfolio/perf"
)

// AttributionReport is a struct to represent a Brinson-Fachler attribution
// in json.
type AttributionReport struct {

	// Name of the portfolio.
	Name string `json:"name,omitempty"`
	// Segments holds the per-segment decomposition.
	Segments []AttributionRow `json:"segments"`
	// Totals across all segments.
	TotalAllocation  perf.Percent `json:"totalAllocation"`
	TotalSelection   perf.Percent `json:"totalSelection"`
	TotalInteraction perf.Percent `json:"totalInteraction"`
	TotalEffect      perf.Percent `json:"totalEffect"`
}

// AttributionRow is the rendered view of one segment's effects.
type AttributionRow struct {
	Segment         string       `json:"segment"`
	PortfolioWeight perf.Percent `json:"portfolioWeight"`
	BenchmarkWeight perf.Percent `json:"benchmarkWeight"`
	Allocation      perf.Percent `json:"allocation"`
	Selection       perf.Percent `json:"selection"`
	Interaction     perf.Percent `json:"interaction"`
	Total           perf.Percent `json:"total"`
}

// NewAttributionReport runs the attribution and aggregates the totals.
func NewAttributionReport(name string, attributions []perf.SegmentAttribution) *AttributionReport {
	r := &AttributionReport{
		Name:     name,
		Segments: make([]AttributionRow, 0, len(attributions)),
	}

	var allocation, selection, interaction, total perf.Percent
	for _, a := range attributions {
		row := AttributionRow{
			Segment:         a.Segment,
			PortfolioWeight: perf.AsPercent(a.PortfolioWeight),
			BenchmarkWeight: perf.AsPercent(a.BenchmarkWeight),
			Allocation:      perf.AsPercent(a.AllocationEffect),
			Selection:       perf.AsPercent(a.SelectionEffect),
			Interaction:     perf.AsPercent(a.InteractionEffect),
			Total:           perf.AsPercent(a.TotalEffect),
		}
		r.Segments = append(r.Segments, row)
		allocation += row.Allocation
		selection += row.Selection
		interaction += row.Interaction
		total += row.Total
	}
	r.TotalAllocation = allocation
	r.TotalSelection = selection
	r.TotalInteraction = interaction
	r.TotalEffect = total
	return r
}

const attributionMarkdownTemplate = `# Attribution Report

{{ if .Name }}Portfolio: **{{ .Name }}**

{{ end -}}
| Segment | Wp | Wb | Allocation | Selection | Interaction | Total |
|:---|---:|---:|---:|---:|---:|---:|
{{- range .Segments }}
| {{ .Segment }} | {{ .PortfolioWeight }} | {{ .BenchmarkWeight }} | {{ .Allocation.SignedString }} | {{ .Selection.SignedString }} | {{ .Interaction.SignedString }} | {{ .Total.SignedString }} |
{{- end }}
| **Total** | | | **{{ .TotalAllocation.SignedString }}** | **{{ .TotalSelection.SignedString }}** | **{{ .TotalInteraction.SignedString }}** | **{{ .TotalEffect.SignedString }}** |
`

// RenderAttributionReport renders the AttributionReport struct to a markdown string.
func RenderAttributionReport(r *AttributionReport) string {
	tmpl := template.Must(template.New("attribution").Parse(attributionMarkdownTemplate))
	var b strings.Builder
	if err := tmpl.Execute(&b, r); err != nil {
		return fmt.Sprintf("Error executing template: %v", err)
	}
	return b.String()
}
