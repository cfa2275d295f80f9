package analytics

import (
	"fmt"

	"github.com/de-tools/permit-atlas/pkg/models/domain"
	"github.com/de-tools/permit-atlas/pkg/store/catalog"
)

// monthlyTrend returns the trailing months of the baseline. For a single category each
// field is scaled by the category's share of all base counts and rounded on its own,
// so approved+rejected may exceed submitted by a rounding unit.
func monthlyTrend(store catalog.Store, resolved domain.ResolvedFilter, monthsToShow int) ([]domain.MonthPoint, error) {
	months := store.Months()
	if monthsToShow > len(months) {
		monthsToShow = len(months)
	}
	trend := months[len(months)-monthsToShow:]

	if resolved.AllCategories() {
		return trend, nil
	}

	stat, err := store.Get(resolved.Category)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidSelection, err)
	}
	totalBase := store.TotalBaseCount()
	if totalBase == 0 {
		return nil, fmt.Errorf("%w: catalog has no base permits", domain.ErrDegenerateAggregate)
	}
	ratio := float64(stat.BaseCount) / float64(totalBase)

	for i := range trend {
		trend[i].Submitted = domain.Round(float64(trend[i].Submitted) * ratio)
		trend[i].Approved = domain.Round(float64(trend[i].Approved) * ratio)
		trend[i].Rejected = domain.Round(float64(trend[i].Rejected) * ratio)
	}
	return trend, nil
}

func peakSubmitted(trend []domain.MonthPoint) int {
	peak := 0
	for _, m := range trend {
		peak = max(peak, m.Submitted)
	}
	return peak
}
