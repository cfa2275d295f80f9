package domain

import (
	"fmt"
	"math"
)

// CorrectionsRate is the share of permits expected to need at least one correction cycle.
const CorrectionsRate = 0.17

// Round rounds half away from zero. Every scaled or averaged figure in a Report
// goes through it so results stay reproducible across components.
func Round(x float64) int {
	return int(math.Round(x))
}

type ScaledCategoryStat struct {
	Category           string
	Count              int
	AvgDurationDays    float64
	SuccessRatePercent float64
}

// Report represents the complete set of derived dashboard metrics for one filter combination
type Report struct {
	Selection              ResolvedFilter
	Categories             []ScaledCategoryStat
	TotalCount             int
	WeightedAvgDuration    int
	WeightedAvgSuccessRate int
	MonthlyTrend           []MonthPoint
	PeakSubmitted          int // chart scale: max submitted over MonthlyTrend
	Bottlenecks            []BottleneckEntry
	Neighborhoods          []NeighborhoodStat
	CorrectionsEstimate    int
}

// Validate checks the shape invariants a presentation layer relies on.
func (r *Report) Validate() error {
	if r == nil {
		return fmt.Errorf("report is nil")
	}
	if len(r.Categories) == 0 {
		return fmt.Errorf("report has no categories")
	}

	total := 0
	for _, c := range r.Categories {
		if c.Count < 0 {
			return fmt.Errorf("category %q has negative count %d", c.Category, c.Count)
		}
		total += c.Count
	}
	if total != r.TotalCount {
		return fmt.Errorf("total count %d does not match category sum %d", r.TotalCount, total)
	}

	switch len(r.MonthlyTrend) {
	case 1, 3, 12:
	default:
		return fmt.Errorf("unexpected monthly trend length %d", len(r.MonthlyTrend))
	}

	if want := Round(float64(r.TotalCount) * CorrectionsRate); r.CorrectionsEstimate != want {
		return fmt.Errorf("corrections estimate %d, expected %d", r.CorrectionsEstimate, want)
	}
	return nil
}
