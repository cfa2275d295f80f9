package dashboard

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/de-tools/permit-atlas/pkg/models/api"
	"github.com/de-tools/permit-atlas/pkg/models/domain"
	"github.com/de-tools/permit-atlas/pkg/services/dashboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Report(ctx context.Context, selection domain.FilterSelection) (*domain.Report, error) {
	args := m.Called(ctx, selection)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func (m *mockService) Categories(ctx context.Context) []dashboard.Option {
	args := m.Called(ctx)
	return args.Get(0).([]dashboard.Option)
}

func (m *mockService) Windows(ctx context.Context) []dashboard.Option {
	args := m.Called(ctx)
	return args.Get(0).([]dashboard.Option)
}

func buildingReport() *domain.Report {
	return &domain.Report{
		Selection: domain.ResolvedFilter{
			Window:          domain.Window30,
			Category:        "Building",
			ScaleMultiplier: 0.33,
			CategoryKeys:    []string{"Building"},
		},
		Categories: []domain.ScaledCategoryStat{
			{Category: "Building", Count: 940, AvgDurationDays: 48, SuccessRatePercent: 87},
		},
		TotalCount:             940,
		WeightedAvgDuration:    48,
		WeightedAvgSuccessRate: 87,
		MonthlyTrend:           []domain.MonthPoint{{Month: "Dec", Submitted: 245, Approved: 220, Rejected: 17}},
		PeakSubmitted:          245,
		Bottlenecks: []domain.BottleneckEntry{
			{Issue: "Structural Calculations Missing", BaseCount: 113, AvgDelayDays: 14},
			{Issue: "Zoning Compliance Review", BaseCount: 95, AvgDelayDays: 21},
		},
		Neighborhoods: []domain.NeighborhoodStat{
			{Name: "Fremont", BasePermits: 161, AvgDays: 38, Trend: domain.TrendDown},
		},
		CorrectionsEstimate: 160,
	}
}

func TestGetReport(t *testing.T) {
	tests := []struct {
		name              string
		query             string
		expectedSelection domain.FilterSelection
		report            *domain.Report
		err               error
		expectedStatus    int
	}{
		{
			name:              "explicit selection",
			query:             "?window=30&category=Building",
			expectedSelection: domain.FilterSelection{Window: domain.Window30, Category: "Building"},
			report:            buildingReport(),
			expectedStatus:    http.StatusOK,
		},
		{
			name:              "defaults",
			query:             "",
			expectedSelection: domain.FilterSelection{Window: domain.Window90, Category: domain.AllCategories},
			report:            buildingReport(),
			expectedStatus:    http.StatusOK,
		},
		{
			name:              "invalid selection",
			query:             "?window=7",
			expectedSelection: domain.FilterSelection{Window: "7", Category: domain.AllCategories},
			err:               fmt.Errorf("%w: unknown window %q", domain.ErrInvalidSelection, "7"),
			expectedStatus:    http.StatusBadRequest,
		},
		{
			name:              "degenerate aggregate",
			query:             "?category=Demolition",
			expectedSelection: domain.FilterSelection{Window: domain.Window90, Category: "Demolition"},
			err:               domain.ErrDegenerateAggregate,
			expectedStatus:    http.StatusUnprocessableEntity,
		},
		{
			name:              "internal failure",
			query:             "?window=365",
			expectedSelection: domain.FilterSelection{Window: domain.Window365, Category: domain.AllCategories},
			err:               fmt.Errorf("malformed report: boom"),
			expectedStatus:    http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(mockService)
			if tt.report != nil {
				service.On("Report", mock.Anything, tt.expectedSelection).Return(tt.report, nil)
			} else {
				service.On("Report", mock.Anything, tt.expectedSelection).Return(nil, tt.err)
			}
			handler := NewHandler(service)

			req := httptest.NewRequest("GET", "/report"+tt.query, nil)
			rec := httptest.NewRecorder()

			handler.GetReport(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				var response api.Report
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
				assert.Equal(t, 940, response.Summary.TotalPermits)
				assert.Equal(t, 160, response.Summary.CorrectionsEstimate)
				assert.Equal(t, 245, response.MonthlyTrend.PeakSubmitted)
				require.Len(t, response.Bottlenecks, 2)
				assert.Equal(t, 2, response.Bottlenecks[1].Rank)
				assert.Equal(t, "down", response.Neighborhoods[0].Trend)
			}
			service.AssertExpectations(t)
		})
	}
}

func TestGetReport_InternalErrorHidesCause(t *testing.T) {
	service := new(mockService)
	service.On("Report", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("database exploded"))
	handler := NewHandler(service)

	rec := httptest.NewRecorder()
	handler.GetReport(rec, httptest.NewRequest("GET", "/report", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "report unavailable\n", rec.Body.String())
}

func TestExportReport(t *testing.T) {
	service := new(mockService)
	service.On("Report", mock.Anything, domain.FilterSelection{Window: domain.Window30, Category: "Building"}).
		Return(buildingReport(), nil)
	handler := NewHandler(service)

	rec := httptest.NewRecorder()
	handler.ExportReport(rec, httptest.NewRequest("GET", "/report/export?window=30&category=Building", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	assert.Contains(t, records, []string{"summary", "total_permits", "940", "", "", ""})
	assert.Contains(t, records, []string{"bottlenecks", "Zoning Compliance Review", "95", "21", "2", ""})
	service.AssertExpectations(t)
}

func TestListOptions(t *testing.T) {
	service := new(mockService)
	service.On("Categories", mock.Anything).Return([]dashboard.Option{
		{Value: domain.AllCategories, Label: "All Types"},
		{Value: "Building", Label: "Building"},
	})
	service.On("Windows", mock.Anything).Return([]dashboard.Option{
		{Value: "30", Label: "Last 30 Days"},
	})
	handler := NewHandler(service)

	rec := httptest.NewRecorder()
	handler.ListCategories(rec, httptest.NewRequest("GET", "/categories", nil))
	var categories []api.Option
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&categories))
	assert.Equal(t, []api.Option{{Value: "all", Label: "All Types"}, {Value: "Building", Label: "Building"}}, categories)

	rec = httptest.NewRecorder()
	handler.ListWindows(rec, httptest.NewRequest("GET", "/windows", nil))
	var windows []api.Option
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&windows))
	assert.Equal(t, []api.Option{{Value: "30", Label: "Last 30 Days"}}, windows)

	service.AssertExpectations(t)
}
