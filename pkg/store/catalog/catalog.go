package catalog

import (
	"fmt"
	"slices"

	"github.com/de-tools/permit-atlas/pkg/models/domain"
)

// BaselineMonths is the length of the monthly trend baseline.
const BaselineMonths = 12

// Store exposes read-only reference data. Implementations must be safe for concurrent use.
type Store interface {
	Get(category string) (domain.CategoryStat, error)
	Categories() []domain.CategoryStat
	CategoryKeys() []string
	TotalBaseCount() int
	Months() []domain.MonthPoint
	Bottlenecks(key string) ([]domain.BottleneckEntry, error)
	Neighborhoods() []domain.NeighborhoodStat
}

// Catalog is an immutable Store. It is never modified after New returns,
// every accessor hands out copies.
type Catalog struct {
	categories    []domain.CategoryStat
	index         map[string]int
	totalBase     int
	months        []domain.MonthPoint
	bottlenecks   map[string][]domain.BottleneckEntry
	listOrder     []string
	neighborhoods []domain.NeighborhoodStat
}

func New(data domain.CatalogData) (*Catalog, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}

	c := &Catalog{
		categories:    slices.Clone(data.Categories),
		index:         make(map[string]int, len(data.Categories)),
		months:        slices.Clone(data.Months),
		bottlenecks:   make(map[string][]domain.BottleneckEntry, len(data.Bottlenecks)),
		listOrder:     make([]string, 0, len(data.Bottlenecks)),
		neighborhoods: slices.Clone(data.Neighborhoods),
	}
	for i, cat := range c.categories {
		c.index[cat.Category] = i
		c.totalBase += cat.BaseCount
	}
	for _, list := range data.Bottlenecks {
		c.bottlenecks[list.Key] = slices.Clone(list.Entries)
		c.listOrder = append(c.listOrder, list.Key)
	}
	return c, nil
}

func (c *Catalog) Get(category string) (domain.CategoryStat, error) {
	i, ok := c.index[category]
	if !ok {
		return domain.CategoryStat{}, fmt.Errorf("category %q: %w", category, domain.ErrNotFound)
	}
	return c.categories[i], nil
}

func (c *Catalog) Categories() []domain.CategoryStat {
	return slices.Clone(c.categories)
}

func (c *Catalog) CategoryKeys() []string {
	keys := make([]string, 0, len(c.categories))
	for _, cat := range c.categories {
		keys = append(keys, cat.Category)
	}
	return keys
}

func (c *Catalog) TotalBaseCount() int {
	return c.totalBase
}

func (c *Catalog) Months() []domain.MonthPoint {
	return slices.Clone(c.months)
}

// Bottlenecks returns the ranked list for a category, or the default list for AllCategories.
func (c *Catalog) Bottlenecks(key string) ([]domain.BottleneckEntry, error) {
	list, ok := c.bottlenecks[key]
	if !ok {
		return nil, fmt.Errorf("bottleneck list %q: %w", key, domain.ErrNotFound)
	}
	return slices.Clone(list), nil
}

func (c *Catalog) Neighborhoods() []domain.NeighborhoodStat {
	return slices.Clone(c.neighborhoods)
}

// Data returns a deep copy of the reference data, e.g. for seeding a database.
func (c *Catalog) Data() domain.CatalogData {
	data := domain.CatalogData{
		Categories:    c.Categories(),
		Months:        c.Months(),
		Bottlenecks:   make([]domain.BottleneckList, 0, len(c.listOrder)),
		Neighborhoods: c.Neighborhoods(),
	}
	for _, key := range c.listOrder {
		data.Bottlenecks = append(data.Bottlenecks, domain.BottleneckList{
			Key:     key,
			Entries: slices.Clone(c.bottlenecks[key]),
		})
	}
	return data
}
