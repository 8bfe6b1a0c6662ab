// Package renderer builds report views from calculation results and renders
// them to markdown strings.
package renderer

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/quantfolio/perf"
)

// PerformanceReport is a struct to represent period performance data in json.
// Returns are carried as Percent so that they already render themselves.
type PerformanceReport struct {

	// Name of the portfolio.
	Name string `json:"name,omitempty"`
	// Date the report is computed as of.
	Date perf.Date `json:"date"`
	// WeekToDate is the compounded return since the start of the week.
	WeekToDate perf.Percent `json:"weekToDate"`
	// MonthToDate is the compounded return since the start of the month.
	MonthToDate perf.Percent `json:"monthToDate"`
	// QuarterToDate is the compounded return since the start of the quarter.
	QuarterToDate perf.Percent `json:"quarterToDate"`
	// YearToDate is the compounded return since the start of the year.
	YearToDate perf.Percent `json:"yearToDate"`
	// Monthly is the per-calendar-month breakdown of the series.
	Monthly []MonthlyRow `json:"monthly"`
}

// MonthlyRow represents the compounded return of a single calendar month.
type MonthlyRow struct {
	Month  string       `json:"month"`
	Return perf.Percent `json:"return"`
}

// NewPerformanceReport computes the to-date and monthly returns of a daily
// series as of a given date.
func NewPerformanceReport(name string, daily []perf.DailyReturn, asOf perf.Date) *PerformanceReport {
	r := &PerformanceReport{
		Name:          name,
		Date:          asOf,
		WeekToDate:    perf.AsPercent(perf.WeekToDateReturn(daily, asOf)),
		MonthToDate:   perf.AsPercent(perf.MonthToDateReturn(daily, asOf)),
		QuarterToDate: perf.AsPercent(perf.PeriodReturn(daily, perf.NewRange(asOf.StartOf(perf.Quarterly), asOf))),
		YearToDate:    perf.AsPercent(perf.YearToDateReturn(daily, asOf)),
		Monthly:       make([]MonthlyRow, 0),
	}

	for _, m := range perf.MonthlyReturns(daily) {
		r.Monthly = append(r.Monthly, MonthlyRow{
			Month:  m.Month,
			Return: perf.AsPercent(m.Return),
		})
	}
	return r
}

const performanceMarkdownTemplate = `# Performance Report on {{ .Date }}

{{ if .Name }}Portfolio: **{{ .Name }}**

{{ end -}}
| Period | Return |
|:---|---:|
| Week to date | {{ .WeekToDate.SignedString }} |
| Month to date | {{ .MonthToDate.SignedString }} |
| Quarter to date | {{ .QuarterToDate.SignedString }} |
| Year to date | {{ .YearToDate.SignedString }} |

{{- if .Monthly }}

## Monthly Returns

| Month | Return |
|:---|---:|
{{- range .Monthly }}
| {{ .Month }} | {{ .Return.SignedString }} |
{{- end }}
{{- end -}}
`

// RenderPerformanceReport renders the PerformanceReport struct to a markdown string.
func RenderPerformanceReport(r *PerformanceReport) string {
	tmpl := template.Must(template.New("performance").Parse(performanceMarkdownTemplate))
	var b strings.Builder
	if err := tmpl.Execute(&b, r); err != nil {
		return fmt.Sprintf("Error executing template: %v", err)
	}
	return b.String()
}
