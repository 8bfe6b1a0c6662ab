package renderer

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/quantfolio/perf"
)

// CashReport is a struct to represent the cash impact of a pending trade
// in json.
type CashReport struct {
	Side             string     `json:"side"`
	Currency         string     `json:"currency"`
	CurrentBalance   perf.Money `json:"currentBalance"`
	TradeAmount      perf.Money `json:"tradeAmount"`
	ProjectedBalance perf.Money `json:"projectedBalance"`
	Sufficient       bool       `json:"sufficient"`
}

// NewCashReport wraps a preview for rendering.
func NewCashReport(side perf.Side, p perf.CashImpactPreview) *CashReport {
	return &CashReport{
		Side:             side.String(),
		Currency:         p.Currency,
		CurrentBalance:   p.CurrentBalance,
		TradeAmount:      p.TradeAmount,
		ProjectedBalance: p.ProjectedBalance,
		Sufficient:       p.Sufficient,
	}
}

const cashMarkdownTemplate = `# Cash Impact Preview ({{ .Side }})

| | {{ .Currency }} |
|:---|---:|
| Current balance | {{ .CurrentBalance }} |
| Trade amount | {{ .TradeAmount }} |
| Projected balance | {{ .ProjectedBalance }} |

{{ if .Sufficient }}The cash account can fund this trade.{{ else }}**Insufficient cash to fund this trade.**{{ end }}
`

// RenderCashReport renders the CashReport struct to a markdown string.
func RenderCashReport(r *CashReport) string {
	tmpl := template.Must(template.New("cash").Parse(cashMarkdownTemplate))
	var b strings.Builder
	if err := tmpl.Execute(&b, r); err != nil {
		return fmt.Sprintf("Error executing template: %v", err)
	}
	return b.String()
}
