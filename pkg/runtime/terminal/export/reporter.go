package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/permit-atlas/pkg/models/api"
	"github.com/de-tools/permit-atlas/pkg/models/domain"
)

type TableConfig struct {
	NameWidth  int
	CountWidth int
	DaysWidth  int
	RateWidth  int
	BarWidth   int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:  20,
		CountWidth: 10,
		DaysWidth:  10,
		RateWidth:  10,
		BarWidth:   30,
	}
}

// Reporter renders a report as console tables.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(report api.Report) error {
	peak := report.MonthlyTrend.PeakSubmitted

	funcMap := template.FuncMap{
		"formatRow": func(name string, count, days, rate interface{}) string {
			return fmt.Sprintf("| %-*s | %*v | %*v | %*v |",
				c.config.NameWidth, name,
				c.config.CountWidth, count,
				c.config.DaysWidth, days,
				c.config.RateWidth, rate)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.NameWidth+2),
				strings.Repeat("-", c.config.CountWidth+2),
				strings.Repeat("-", c.config.DaysWidth+2),
				strings.Repeat("-", c.config.RateWidth+2))
		},
		"bar": func(submitted int) string {
			if peak <= 0 {
				return strings.Repeat(" ", c.config.BarWidth)
			}
			n := submitted * c.config.BarWidth / peak
			return strings.Repeat("#", n) + strings.Repeat(" ", c.config.BarWidth-n)
		},
		"windowLabel": func(w string) string {
			return domain.Window(w).Label()
		},
		"categoryLabel": func(category string) string {
			if category == domain.AllCategories {
				return "All Types"
			}
			return category
		},
		"arrow": trendArrow,
	}

	tmpl := `
Permit Analytics: {{categoryLabel .Selection.Category}}, {{windowLabel .Selection.Window}}

Total Permits:        {{.Summary.TotalPermits}}
Avg Processing Time:  {{.Summary.AvgProcessingDays}} days
Success Rate:         {{.Summary.SuccessRatePercent}}%
Corrections Required: {{.Summary.CorrectionsEstimate}}

=== Categories ===
{{separator}}
{{formatRow "Category" "Permits" "Avg Days" "Success %"}}
{{separator}}
{{range .Categories}}{{formatRow .Category .Count .AvgDurationDays .SuccessRatePercent}}
{{end}}{{separator}}

=== Monthly Trend ===
{{range .MonthlyTrend.Months}}{{printf "%-4s" .Month}} {{bar .Submitted}} {{.Submitted}} submitted, {{.Approved}} approved, {{.Rejected}} rejected
{{end}}
=== Top Bottlenecks ===
{{range .Bottlenecks}}{{.Rank}}. {{.Issue}}: {{.Count}} permits, +{{.AvgDelayDays}} days
{{end}}
=== Neighborhoods ===
{{range .Neighborhoods}}{{printf "%-20s" .Name}} {{printf "%6d" .Permits}} permits {{printf "%3d" .AvgDays}} days {{arrow .Trend}}
{{end}}`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}

func trendArrow(trend string) string {
	switch domain.Trend(trend) {
	case domain.TrendUp:
		return "↑"
	case domain.TrendDown:
		return "↓"
	}
	return "→"
}
