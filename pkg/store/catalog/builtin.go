package catalog

import "github.com/de-tools/permit-atlas/pkg/models/domain"

// Builtin returns the reference catalog shipped with the binary.
func Builtin() *Catalog {
	c, err := New(BuiltinData())
	if err != nil {
		panic(err)
	}
	return c
}

// BuiltinData returns a fresh copy of the shipped reference tables.
// Base figures describe the canonical 90-day window.
func BuiltinData() domain.CatalogData {
	buildingIssues := []domain.BottleneckEntry{
		{Issue: "Incomplete Fire Safety Plans", BaseCount: 342, AvgDelayDays: 14},
		{Issue: "Missing Structural Calculations", BaseCount: 289, AvgDelayDays: 12},
		{Issue: "Setback Violations", BaseCount: 267, AvgDelayDays: 18},
		{Issue: "Energy Code Documentation", BaseCount: 234, AvgDelayDays: 8},
		{Issue: "Stormwater Management", BaseCount: 198, AvgDelayDays: 21},
	}

	return domain.CatalogData{
		Categories: []domain.CategoryStat{
			{Category: "Building", BaseCount: 2847, AvgDurationDays: 48, SuccessRatePercent: 87},
			{Category: "Electrical", BaseCount: 1923, AvgDurationDays: 21, SuccessRatePercent: 92},
			{Category: "Plumbing", BaseCount: 1564, AvgDurationDays: 18, SuccessRatePercent: 94},
			{Category: "Mechanical", BaseCount: 1234, AvgDurationDays: 19, SuccessRatePercent: 93},
			{Category: "Demolition", BaseCount: 456, AvgDurationDays: 31, SuccessRatePercent: 89},
		},
		Months: []domain.MonthPoint{
			{Month: "Jan", Submitted: 580, Approved: 520, Rejected: 35},
			{Month: "Feb", Submitted: 620, Approved: 550, Rejected: 42},
			{Month: "Mar", Submitted: 710, Approved: 640, Rejected: 48},
			{Month: "Apr", Submitted: 680, Approved: 610, Rejected: 45},
			{Month: "May", Submitted: 750, Approved: 670, Rejected: 52},
			{Month: "Jun", Submitted: 820, Approved: 730, Rejected: 58},
			{Month: "Jul", Submitted: 790, Approved: 710, Rejected: 55},
			{Month: "Aug", Submitted: 840, Approved: 750, Rejected: 62},
			{Month: "Sep", Submitted: 780, Approved: 700, Rejected: 58},
			{Month: "Oct", Submitted: 810, Approved: 720, Rejected: 60},
			{Month: "Nov", Submitted: 760, Approved: 680, Rejected: 56},
			{Month: "Dec", Submitted: 690, Approved: 620, Rejected: 48},
		},
		Bottlenecks: []domain.BottleneckList{
			// the dashboard-wide list is the building list
			{Key: domain.AllCategories, Entries: append([]domain.BottleneckEntry(nil), buildingIssues...)},
			{Key: "Building", Entries: buildingIssues},
			{Key: "Electrical", Entries: []domain.BottleneckEntry{
				{Issue: "Missing Load Calculations", BaseCount: 156, AvgDelayDays: 8},
				{Issue: "Incomplete Panel Schedules", BaseCount: 134, AvgDelayDays: 6},
				{Issue: "Service Size Documentation", BaseCount: 112, AvgDelayDays: 5},
				{Issue: "Ground Fault Protection", BaseCount: 98, AvgDelayDays: 7},
				{Issue: "Arc Fault Requirements", BaseCount: 87, AvgDelayDays: 6},
			}},
			{Key: "Plumbing", Entries: []domain.BottleneckEntry{
				{Issue: "Fixture Unit Calculations", BaseCount: 123, AvgDelayDays: 6},
				{Issue: "Water Service Size", BaseCount: 108, AvgDelayDays: 5},
				{Issue: "Drainage System Details", BaseCount: 95, AvgDelayDays: 7},
				{Issue: "Backflow Prevention", BaseCount: 82, AvgDelayDays: 5},
				{Issue: "Vent System Layout", BaseCount: 74, AvgDelayDays: 6},
			}},
			{Key: "Mechanical", Entries: []domain.BottleneckEntry{
				{Issue: "HVAC Load Calculations", BaseCount: 145, AvgDelayDays: 7},
				{Issue: "Ventilation Requirements", BaseCount: 121, AvgDelayDays: 6},
				{Issue: "Equipment Specifications", BaseCount: 103, AvgDelayDays: 5},
				{Issue: "Ductwork Layout", BaseCount: 89, AvgDelayDays: 6},
				{Issue: "Combustion Air Details", BaseCount: 76, AvgDelayDays: 8},
			}},
			{Key: "Demolition", Entries: []domain.BottleneckEntry{
				{Issue: "Demolition Plan Details", BaseCount: 67, AvgDelayDays: 10},
				{Issue: "Asbestos Survey", BaseCount: 54, AvgDelayDays: 15},
				{Issue: "Utility Disconnection Plan", BaseCount: 48, AvgDelayDays: 8},
				{Issue: "Debris Management", BaseCount: 39, AvgDelayDays: 6},
				{Issue: "Adjacent Property Protection", BaseCount: 32, AvgDelayDays: 9},
			}},
		},
		Neighborhoods: []domain.NeighborhoodStat{
			{Name: "Capitol Hill", BasePermits: 487, AvgDays: 42, Trend: domain.TrendUp},
			{Name: "Ballard", BasePermits: 423, AvgDays: 45, Trend: domain.TrendStable},
			{Name: "Fremont", BasePermits: 389, AvgDays: 38, Trend: domain.TrendDown},
			{Name: "University District", BasePermits: 356, AvgDays: 51, Trend: domain.TrendUp},
			{Name: "Queen Anne", BasePermits: 312, AvgDays: 44, Trend: domain.TrendStable},
		},
	}
}
