package filter

import (
	"fmt"

	"github.com/de-tools/permit-atlas/pkg/models/domain"
	"github.com/de-tools/permit-atlas/pkg/store/catalog"
)

// scaleMultipliers approximate 30/90/365 days against the 90-day baseline.
// The values are a fixed table, not a computed ratio.
var scaleMultipliers = map[domain.Window]float64{
	domain.Window30:  0.33,
	domain.Window90:  1.0,
	domain.Window365: 4.0,
}

// monthsToShow is how many trailing baseline months each window covers.
var monthsToShow = map[domain.Window]int{
	domain.Window30:  1,
	domain.Window90:  3,
	domain.Window365: 12,
}

func ScaleMultiplier(w domain.Window) (float64, error) {
	m, ok := scaleMultipliers[w]
	if !ok {
		return 0, fmt.Errorf("%w: unknown window %q", domain.ErrInvalidSelection, w)
	}
	return m, nil
}

func MonthsToShow(w domain.Window) (int, error) {
	n, ok := monthsToShow[w]
	if !ok {
		return 0, fmt.Errorf("%w: unknown window %q", domain.ErrInvalidSelection, w)
	}
	return n, nil
}

type Resolver struct {
	catalog catalog.Store
}

func NewResolver(store catalog.Store) *Resolver {
	return &Resolver{catalog: store}
}

// Resolve maps selector values to numeric pipeline parameters. It has no side effects.
func (r *Resolver) Resolve(selection domain.FilterSelection) (domain.ResolvedFilter, error) {
	multiplier, err := ScaleMultiplier(selection.Window)
	if err != nil {
		return domain.ResolvedFilter{}, err
	}

	resolved := domain.ResolvedFilter{
		Window:          selection.Window,
		Category:        selection.Category,
		ScaleMultiplier: multiplier,
	}

	if selection.Category == domain.AllCategories {
		resolved.CategoryKeys = r.catalog.CategoryKeys()
		return resolved, nil
	}

	if _, err := r.catalog.Get(selection.Category); err != nil {
		return domain.ResolvedFilter{}, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidSelection, selection.Category)
	}
	resolved.CategoryKeys = []string{selection.Category}
	return resolved, nil
}
