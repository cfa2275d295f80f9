package domain

// AllCategories selects every catalog category and keys the default bottleneck list.
const AllCategories = "all"

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

func (t Trend) Valid() bool {
	switch t {
	case TrendUp, TrendDown, TrendStable:
		return true
	}
	return false
}

// CategoryStat holds the 90-day reference figures of a permit category.
type CategoryStat struct {
	Category           string
	BaseCount          int     // permits issued over the baseline window
	AvgDurationDays    float64 // 48
	SuccessRatePercent float64 // 0..100
}

type MonthPoint struct {
	Month     string // Jan
	Submitted int
	Approved  int
	Rejected  int
}

type BottleneckEntry struct {
	Issue        string
	BaseCount    int
	AvgDelayDays int
}

type NeighborhoodStat struct {
	Name        string
	BasePermits int
	AvgDays     int
	Trend       Trend
}

// BottleneckList is a ranked list of issues, most significant first.
type BottleneckList struct {
	Key     string // category key or AllCategories
	Entries []BottleneckEntry
}

// CatalogData is the raw reference data a catalog is built from.
type CatalogData struct {
	Categories    []CategoryStat
	Months        []MonthPoint
	Bottlenecks   []BottleneckList
	Neighborhoods []NeighborhoodStat
}
