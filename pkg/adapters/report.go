package adapters

import (
	"slices"

	"github.com/de-tools/permit-atlas/pkg/models/api"
	"github.com/de-tools/permit-atlas/pkg/models/domain"
)

func MapReportDomainToApi(report *domain.Report) api.Report {
	apiReport := api.Report{
		Selection: api.Selection{
			Window:          string(report.Selection.Window),
			Category:        report.Selection.Category,
			ScaleMultiplier: report.Selection.ScaleMultiplier,
			Categories:      slices.Clone(report.Selection.CategoryKeys),
		},
		Summary: api.Summary{
			TotalPermits:        report.TotalCount,
			AvgProcessingDays:   report.WeightedAvgDuration,
			SuccessRatePercent:  report.WeightedAvgSuccessRate,
			CorrectionsEstimate: report.CorrectionsEstimate,
		},
		Categories: make([]api.CategoryStat, 0, len(report.Categories)),
		MonthlyTrend: api.Trend{
			PeakSubmitted: report.PeakSubmitted,
			Months:        make([]api.MonthPoint, 0, len(report.MonthlyTrend)),
		},
		Bottlenecks:   make([]api.Bottleneck, 0, len(report.Bottlenecks)),
		Neighborhoods: make([]api.Neighborhood, 0, len(report.Neighborhoods)),
	}

	for _, c := range report.Categories {
		apiReport.Categories = append(apiReport.Categories, api.CategoryStat(c))
	}
	for _, m := range report.MonthlyTrend {
		apiReport.MonthlyTrend.Months = append(apiReport.MonthlyTrend.Months, api.MonthPoint(m))
	}
	for i, b := range report.Bottlenecks {
		apiReport.Bottlenecks = append(apiReport.Bottlenecks, api.Bottleneck{
			Rank:         i + 1,
			Issue:        b.Issue,
			Count:        b.BaseCount,
			AvgDelayDays: b.AvgDelayDays,
		})
	}
	for _, n := range report.Neighborhoods {
		apiReport.Neighborhoods = append(apiReport.Neighborhoods, api.Neighborhood{
			Name:    n.Name,
			Permits: n.BasePermits,
			AvgDays: n.AvgDays,
			Trend:   string(n.Trend),
		})
	}
	return apiReport
}
