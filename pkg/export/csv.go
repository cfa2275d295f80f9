package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/de-tools/permit-atlas/pkg/models/api"
)

// WriteCSV writes a report as one CSV stream. The first column names the section,
// so the file stays a single flat table spreadsheets can open.
func WriteCSV(w io.Writer, report api.Report) error {
	writer := csv.NewWriter(w)

	rows := [][]string{
		{"section", "name", "value", "detail_1", "detail_2", "detail_3"},
		{"selection", "window", report.Selection.Window, "", "", ""},
		{"selection", "category", report.Selection.Category, "", "", ""},
		{"summary", "total_permits", itoa(report.Summary.TotalPermits), "", "", ""},
		{"summary", "avg_processing_days", itoa(report.Summary.AvgProcessingDays), "", "", ""},
		{"summary", "success_rate_percent", itoa(report.Summary.SuccessRatePercent), "", "", ""},
		{"summary", "corrections_estimate", itoa(report.Summary.CorrectionsEstimate), "", "", ""},
	}
	for _, c := range report.Categories {
		rows = append(rows, []string{"categories", c.Category, itoa(c.Count), ftoa(c.AvgDurationDays), ftoa(c.SuccessRatePercent), ""})
	}
	for _, m := range report.MonthlyTrend.Months {
		rows = append(rows, []string{"monthly_trend", m.Month, itoa(m.Submitted), itoa(m.Approved), itoa(m.Rejected), ""})
	}
	for _, b := range report.Bottlenecks {
		rows = append(rows, []string{"bottlenecks", b.Issue, itoa(b.Count), itoa(b.AvgDelayDays), itoa(b.Rank), ""})
	}
	for _, n := range report.Neighborhoods {
		rows = append(rows, []string{"neighborhoods", n.Name, itoa(n.Permits), itoa(n.AvgDays), n.Trend, ""})
	}

	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write CSV report: %w", err)
	}
	return nil
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
