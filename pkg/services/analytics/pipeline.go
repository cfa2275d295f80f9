package analytics

import (
	"errors"
	"fmt"
	"slices"

	"github.com/de-tools/permit-atlas/pkg/models/domain"
	"github.com/de-tools/permit-atlas/pkg/services/filter"
	"github.com/de-tools/permit-atlas/pkg/store/catalog"
)

// Aggregate derives a Report from the catalog under the resolved filters.
// It is pure: the catalog is only read and the Report shares no memory with it.
func Aggregate(store catalog.Store, resolved domain.ResolvedFilter) (*domain.Report, error) {
	if err := checkResolved(store, resolved); err != nil {
		return nil, err
	}
	monthsToShow, err := filter.MonthsToShow(resolved.Window)
	if err != nil {
		return nil, err
	}

	// 1. Category scaling
	categories, err := scaleCategories(store, resolved)
	if err != nil {
		return nil, err
	}

	// 2. Totals
	total := 0
	for _, c := range categories {
		total += c.Count
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: selected categories %v have no permits", domain.ErrDegenerateAggregate, resolved.CategoryKeys)
	}

	// 3. Weighted averages, weighted by scaled counts
	avgDuration, avgSuccess := weightedAverages(categories, total)

	// 4. Monthly trend
	trend, err := monthlyTrend(store, resolved, monthsToShow)
	if err != nil {
		return nil, err
	}

	// 5. Bottlenecks
	bottlenecks, err := scaleBottlenecks(store, resolved)
	if err != nil {
		return nil, err
	}

	// 6. Neighborhoods
	neighborhoods := scaleNeighborhoods(store, resolved.ScaleMultiplier)

	report := &domain.Report{
		Selection:              cloneResolved(resolved),
		Categories:             categories,
		TotalCount:             total,
		WeightedAvgDuration:    avgDuration,
		WeightedAvgSuccessRate: avgSuccess,
		MonthlyTrend:           trend,
		PeakSubmitted:          peakSubmitted(trend),
		Bottlenecks:            bottlenecks,
		Neighborhoods:          neighborhoods,
		// 7. Corrections estimate
		CorrectionsEstimate: domain.Round(float64(total) * domain.CorrectionsRate),
	}
	return report, nil
}

// checkResolved rejects filters whose fields disagree with each other, e.g. hand-built ones.
func checkResolved(store catalog.Store, resolved domain.ResolvedFilter) error {
	if len(resolved.CategoryKeys) == 0 {
		return fmt.Errorf("%w: no categories selected", domain.ErrInvalidSelection)
	}

	multiplier, err := filter.ScaleMultiplier(resolved.Window)
	if err != nil {
		return err
	}
	if resolved.ScaleMultiplier != multiplier {
		return fmt.Errorf("%w: multiplier %v does not match window %s", domain.ErrInvalidSelection, resolved.ScaleMultiplier, resolved.Window)
	}

	seen := make(map[string]struct{}, len(resolved.CategoryKeys))
	for _, key := range resolved.CategoryKeys {
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: category %q selected twice", domain.ErrInvalidSelection, key)
		}
		seen[key] = struct{}{}
	}

	expected := []string{resolved.Category}
	if resolved.AllCategories() {
		expected = store.CategoryKeys()
	}
	if !slices.Equal(resolved.CategoryKeys, expected) {
		return fmt.Errorf("%w: keys %v do not match category %q", domain.ErrInvalidSelection, resolved.CategoryKeys, resolved.Category)
	}
	return nil
}

func scaleCategories(store catalog.Store, resolved domain.ResolvedFilter) ([]domain.ScaledCategoryStat, error) {
	scaled := make([]domain.ScaledCategoryStat, 0, len(resolved.CategoryKeys))
	for _, key := range resolved.CategoryKeys {
		stat, err := store.Get(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidSelection, err)
		}
		scaled = append(scaled, domain.ScaledCategoryStat{
			Category:           stat.Category,
			Count:              scale(stat.BaseCount, resolved.ScaleMultiplier),
			AvgDurationDays:    stat.AvgDurationDays,
			SuccessRatePercent: stat.SuccessRatePercent,
		})
	}
	return scaled, nil
}

func weightedAverages(categories []domain.ScaledCategoryStat, total int) (int, int) {
	var durationSum, successSum float64
	for _, c := range categories {
		durationSum += float64(c.Count) * c.AvgDurationDays
		successSum += float64(c.Count) * c.SuccessRatePercent
	}
	return domain.Round(durationSum / float64(total)), domain.Round(successSum / float64(total))
}

func scaleBottlenecks(store catalog.Store, resolved domain.ResolvedFilter) ([]domain.BottleneckEntry, error) {
	key := domain.AllCategories
	if !resolved.AllCategories() {
		key = resolved.Category
	}

	entries, err := store.Bottlenecks(key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidSelection, err)
		}
		return nil, err
	}
	// rank order is a catalog invariant; only counts change
	for i := range entries {
		entries[i].BaseCount = scale(entries[i].BaseCount, resolved.ScaleMultiplier)
	}
	return entries, nil
}

func scaleNeighborhoods(store catalog.Store, multiplier float64) []domain.NeighborhoodStat {
	neighborhoods := store.Neighborhoods()
	for i := range neighborhoods {
		neighborhoods[i].BasePermits = scale(neighborhoods[i].BasePermits, multiplier)
	}
	return neighborhoods
}

func scale(count int, multiplier float64) int {
	return domain.Round(float64(count) * multiplier)
}

func cloneResolved(r domain.ResolvedFilter) domain.ResolvedFilter {
	r.CategoryKeys = append([]string(nil), r.CategoryKeys...)
	return r
}
