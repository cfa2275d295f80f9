package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/permit-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	c := Builtin()

	assert.Equal(t, []string{"Building", "Electrical", "Plumbing", "Mechanical", "Demolition"}, c.CategoryKeys())
	assert.Equal(t, 8024, c.TotalBaseCount())
	assert.Len(t, c.Months(), BaselineMonths)
	assert.Equal(t, "Dec", c.Months()[BaselineMonths-1].Month)
	assert.Len(t, c.Neighborhoods(), 5)

	all, err := c.Bottlenecks(domain.AllCategories)
	require.NoError(t, err)
	building, err := c.Bottlenecks("Building")
	require.NoError(t, err)
	assert.Equal(t, building, all)
	assert.Equal(t, "Incomplete Fire Safety Plans", all[0].Issue)
}

func TestCatalog_Get(t *testing.T) {
	c := Builtin()

	stat, err := c.Get("Electrical")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryStat{Category: "Electrical", BaseCount: 1923, AvgDurationDays: 21, SuccessRatePercent: 92}, stat)

	_, err = c.Get("Bogus")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = c.Bottlenecks("Bogus")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalog_AccessorsReturnCopies(t *testing.T) {
	c := Builtin()

	c.Categories()[0].BaseCount = 0
	c.Months()[0].Submitted = 0
	c.Neighborhoods()[0].BasePermits = 0
	list, err := c.Bottlenecks("Building")
	require.NoError(t, err)
	list[0].BaseCount = 0
	data := c.Data()
	data.Bottlenecks[0].Entries[0].BaseCount = 0

	stat, err := c.Get("Building")
	require.NoError(t, err)
	assert.Equal(t, 2847, stat.BaseCount)
	assert.Equal(t, 580, c.Months()[0].Submitted)
	assert.Equal(t, 487, c.Neighborhoods()[0].BasePermits)
	list, err = c.Bottlenecks("Building")
	require.NoError(t, err)
	assert.Equal(t, 342, list[0].BaseCount)
	all, err := c.Bottlenecks(domain.AllCategories)
	require.NoError(t, err)
	assert.Equal(t, 342, all[0].BaseCount)
}

func TestCatalog_NewDoesNotAliasInput(t *testing.T) {
	data := BuiltinData()
	c, err := New(data)
	require.NoError(t, err)

	data.Categories[0].BaseCount = 1
	assert.Equal(t, 8024, c.TotalBaseCount())
	stat, err := c.Get("Building")
	require.NoError(t, err)
	assert.Equal(t, 2847, stat.BaseCount)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.CatalogData)
		errMsg string
	}{
		{
			name:   "no categories",
			mutate: func(d *domain.CatalogData) { d.Categories = nil },
			errMsg: "no categories",
		},
		{
			name:   "reserved key",
			mutate: func(d *domain.CatalogData) { d.Categories[0].Category = domain.AllCategories },
			errMsg: "reserved",
		},
		{
			name: "duplicate category",
			mutate: func(d *domain.CatalogData) {
				d.Categories = append(d.Categories, d.Categories[0])
			},
			errMsg: "duplicate category",
		},
		{
			name:   "negative base count",
			mutate: func(d *domain.CatalogData) { d.Categories[1].BaseCount = -1 },
			errMsg: "negative base count",
		},
		{
			name:   "zero duration",
			mutate: func(d *domain.CatalogData) { d.Categories[2].AvgDurationDays = 0 },
			errMsg: "average duration",
		},
		{
			name:   "success rate above 100",
			mutate: func(d *domain.CatalogData) { d.Categories[3].SuccessRatePercent = 101 },
			errMsg: "success rate",
		},
		{
			name:   "short baseline",
			mutate: func(d *domain.CatalogData) { d.Months = d.Months[1:] },
			errMsg: "baseline months",
		},
		{
			name:   "approved and rejected exceed submitted",
			mutate: func(d *domain.CatalogData) { d.Months[4].Approved = d.Months[4].Submitted },
			errMsg: "exceeds submitted",
		},
		{
			name:   "missing default list",
			mutate: func(d *domain.CatalogData) { d.Bottlenecks = d.Bottlenecks[1:] },
			errMsg: "missing default bottleneck list",
		},
		{
			name: "category without list",
			mutate: func(d *domain.CatalogData) {
				d.Bottlenecks = d.Bottlenecks[:len(d.Bottlenecks)-1]
			},
			errMsg: "has no bottleneck list",
		},
		{
			name: "list without category",
			mutate: func(d *domain.CatalogData) {
				d.Bottlenecks = append(d.Bottlenecks, domain.BottleneckList{Key: "Signage"})
			},
			errMsg: "no matching category",
		},
		{
			name:   "unknown trend",
			mutate: func(d *domain.CatalogData) { d.Neighborhoods[0].Trend = "sideways" },
			errMsg: "unknown trend",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := BuiltinData()
			tt.mutate(&data)

			_, err := New(data)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrCatalogLoad)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestValidate_ZeroCountCategoryIsAllowed(t *testing.T) {
	data := BuiltinData()
	data.Categories[4].BaseCount = 0

	c, err := New(data)
	require.NoError(t, err)
	assert.Equal(t, 8024-456, c.TotalBaseCount())
}

func TestLoadFile(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	// No indentation inside the backtick block to avoid YAML parsing errors
	content := `categories:
- name: Solar
  base_count: 120
  avg_duration_days: 12
  success_rate_percent: 97
months:
- {month: Jan, submitted: 10, approved: 9, rejected: 1}
- {month: Feb, submitted: 10, approved: 9, rejected: 1}
- {month: Mar, submitted: 10, approved: 9, rejected: 1}
- {month: Apr, submitted: 10, approved: 9, rejected: 1}
- {month: May, submitted: 10, approved: 9, rejected: 1}
- {month: Jun, submitted: 10, approved: 9, rejected: 1}
- {month: Jul, submitted: 10, approved: 9, rejected: 1}
- {month: Aug, submitted: 10, approved: 9, rejected: 1}
- {month: Sep, submitted: 10, approved: 9, rejected: 1}
- {month: Oct, submitted: 10, approved: 9, rejected: 1}
- {month: Nov, submitted: 10, approved: 9, rejected: 1}
- {month: Dec, submitted: 12, approved: 10, rejected: 2}
bottlenecks:
- category: all
  entries:
  - {issue: Roof Load Letter, base_count: 30, avg_delay_days: 4}
- category: Solar
  entries:
  - {issue: Roof Load Letter, base_count: 30, avg_delay_days: 4}
  - {issue: Interconnection Approval, base_count: 12, avg_delay_days: 9}
neighborhoods:
- {name: Ballard, base_permits: 40, avg_days: 20, trend: up}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	// When
	c, err := LoadFile(path)

	// Then
	require.NoError(t, err)
	assert.Equal(t, []string{"Solar"}, c.CategoryKeys())
	list, err := c.Bottlenecks("Solar")
	require.NoError(t, err)
	assert.Equal(t, []domain.BottleneckEntry{
		{Issue: "Roof Load Letter", BaseCount: 30, AvgDelayDays: 4},
		{Issue: "Interconnection Approval", BaseCount: 12, AvgDelayDays: 9},
	}, list)
	assert.Equal(t, domain.TrendUp, c.Neighborhoods()[0].Trend)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, domain.ErrCatalogLoad)
}
