package catalog

import (
	"fmt"

	"github.com/de-tools/permit-atlas/pkg/models/domain"
)

// Validate checks the catalog invariants. Any violation is reported as domain.ErrCatalogLoad.
func Validate(data domain.CatalogData) error {
	if len(data.Categories) == 0 {
		return loadErr("no categories")
	}

	seen := make(map[string]struct{}, len(data.Categories))
	for _, c := range data.Categories {
		switch {
		case c.Category == "":
			return loadErr("category with empty key")
		case c.Category == domain.AllCategories:
			return loadErr("category key %q is reserved", domain.AllCategories)
		case c.BaseCount < 0:
			return loadErr("category %q: negative base count %d", c.Category, c.BaseCount)
		case c.AvgDurationDays <= 0:
			return loadErr("category %q: average duration must be positive", c.Category)
		case c.SuccessRatePercent < 0 || c.SuccessRatePercent > 100:
			return loadErr("category %q: success rate %v out of range", c.Category, c.SuccessRatePercent)
		}
		if _, dup := seen[c.Category]; dup {
			return loadErr("duplicate category %q", c.Category)
		}
		seen[c.Category] = struct{}{}
	}

	if len(data.Months) != BaselineMonths {
		return loadErr("expected %d baseline months, got %d", BaselineMonths, len(data.Months))
	}
	for _, m := range data.Months {
		if m.Submitted < 0 || m.Approved < 0 || m.Rejected < 0 {
			return loadErr("month %q: negative figures", m.Month)
		}
		if m.Approved+m.Rejected > m.Submitted {
			return loadErr("month %q: approved+rejected exceeds submitted", m.Month)
		}
	}

	lists := make(map[string]struct{}, len(data.Bottlenecks))
	for _, l := range data.Bottlenecks {
		if _, dup := lists[l.Key]; dup {
			return loadErr("duplicate bottleneck list %q", l.Key)
		}
		if _, ok := seen[l.Key]; !ok && l.Key != domain.AllCategories {
			return loadErr("bottleneck list %q has no matching category", l.Key)
		}
		for _, e := range l.Entries {
			if e.BaseCount < 0 || e.AvgDelayDays < 0 {
				return loadErr("bottleneck %q in list %q: negative figures", e.Issue, l.Key)
			}
		}
		lists[l.Key] = struct{}{}
	}
	if _, ok := lists[domain.AllCategories]; !ok {
		return loadErr("missing default bottleneck list %q", domain.AllCategories)
	}
	for key := range seen {
		if _, ok := lists[key]; !ok {
			return loadErr("category %q has no bottleneck list", key)
		}
	}

	for _, n := range data.Neighborhoods {
		if n.BasePermits < 0 || n.AvgDays < 0 {
			return loadErr("neighborhood %q: negative figures", n.Name)
		}
		if !n.Trend.Valid() {
			return loadErr("neighborhood %q: unknown trend %q", n.Name, n.Trend)
		}
	}
	return nil
}

func loadErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrCatalogLoad, fmt.Sprintf(format, args...))
}
