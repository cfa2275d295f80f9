package adapters

import (
	"github.com/de-tools/permit-atlas/pkg/models/domain"
	"github.com/de-tools/permit-atlas/pkg/models/store"
)

func MapStoreCatalogToDomain(doc store.CatalogDocument) domain.CatalogData {
	data := domain.CatalogData{
		Categories:    make([]domain.CategoryStat, 0, len(doc.Categories)),
		Months:        make([]domain.MonthPoint, 0, len(doc.Months)),
		Bottlenecks:   make([]domain.BottleneckList, 0, len(doc.Bottlenecks)),
		Neighborhoods: make([]domain.NeighborhoodStat, 0, len(doc.Neighborhoods)),
	}

	for _, c := range doc.Categories {
		data.Categories = append(data.Categories, domain.CategoryStat{
			Category:           c.Name,
			BaseCount:          c.BaseCount,
			AvgDurationDays:    c.AvgDurationDays,
			SuccessRatePercent: c.SuccessRatePercent,
		})
	}
	for _, m := range doc.Months {
		data.Months = append(data.Months, domain.MonthPoint(m))
	}
	for _, g := range doc.Bottlenecks {
		list := domain.BottleneckList{
			Key:     g.Category,
			Entries: make([]domain.BottleneckEntry, 0, len(g.Entries)),
		}
		for _, e := range g.Entries {
			list.Entries = append(list.Entries, domain.BottleneckEntry(e))
		}
		data.Bottlenecks = append(data.Bottlenecks, list)
	}
	for _, n := range doc.Neighborhoods {
		data.Neighborhoods = append(data.Neighborhoods, domain.NeighborhoodStat{
			Name:        n.Name,
			BasePermits: n.BasePermits,
			AvgDays:     n.AvgDays,
			Trend:       domain.Trend(n.Trend),
		})
	}
	return data
}

func MapDomainCatalogToStore(data domain.CatalogData) store.CatalogDocument {
	doc := store.CatalogDocument{
		Categories:    make([]store.CategoryRecord, 0, len(data.Categories)),
		Months:        make([]store.MonthRecord, 0, len(data.Months)),
		Bottlenecks:   make([]store.BottleneckGroup, 0, len(data.Bottlenecks)),
		Neighborhoods: make([]store.NeighborhoodRecord, 0, len(data.Neighborhoods)),
	}

	for _, c := range data.Categories {
		doc.Categories = append(doc.Categories, store.CategoryRecord{
			Name:               c.Category,
			BaseCount:          c.BaseCount,
			AvgDurationDays:    c.AvgDurationDays,
			SuccessRatePercent: c.SuccessRatePercent,
		})
	}
	for _, m := range data.Months {
		doc.Months = append(doc.Months, store.MonthRecord(m))
	}
	for _, l := range data.Bottlenecks {
		group := store.BottleneckGroup{
			Category: l.Key,
			Entries:  make([]store.BottleneckRecord, 0, len(l.Entries)),
		}
		for _, e := range l.Entries {
			group.Entries = append(group.Entries, store.BottleneckRecord(e))
		}
		doc.Bottlenecks = append(doc.Bottlenecks, group)
	}
	for _, n := range data.Neighborhoods {
		doc.Neighborhoods = append(doc.Neighborhoods, store.NeighborhoodRecord{
			Name:        n.Name,
			BasePermits: n.BasePermits,
			AvgDays:     n.AvgDays,
			Trend:       string(n.Trend),
		})
	}
	return doc
}
