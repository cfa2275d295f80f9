package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/de-tools/permit-atlas/pkg/models/api"
	"github.com/de-tools/permit-atlas/pkg/services/dashboard"
	"github.com/de-tools/permit-atlas/pkg/store/catalog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := zerolog.New(zerolog.NewTestWriter(t))
	registry := prometheus.NewRegistry()

	config := Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Dashboard: dashboard.NewService(catalog.Builtin(), dashboard.NewMetrics(registry)),
			Logger:    logger,
			Registry:  registry,
		},
	}
	testServer := httptest.NewServer(ConfigureRouter(config))
	t.Cleanup(testServer.Close)
	return testServer
}

func TestWebAPI_Endpoints(t *testing.T) {
	testServer := newTestServer(t)

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expected       interface{}
		parseResponse  func([]byte) (interface{}, error)
	}{
		{
			name:           "Report_Defaults",
			path:           "/api/v1/report",
			expectedStatus: http.StatusOK,
			expected: api.Summary{
				TotalPermits:        8024,
				AvgProcessingDays:   30,
				SuccessRatePercent:  91,
				CorrectionsEstimate: 1364,
			},
			parseResponse: summaryOf,
		},
		{
			name:           "Report_BuildingLastMonth",
			path:           "/api/v1/report?window=30&category=Building",
			expectedStatus: http.StatusOK,
			expected: api.Summary{
				TotalPermits:        940,
				AvgProcessingDays:   48,
				SuccessRatePercent:  87,
				CorrectionsEstimate: 160,
			},
			parseResponse: summaryOf,
		},
		{
			name:           "Report_UnknownCategory",
			path:           "/api/v1/report?category=Roofing",
			expectedStatus: http.StatusBadRequest,
			expected:       true,
			parseResponse:  nonEmpty,
		},
		{
			name:           "Report_UnknownWindow",
			path:           "/api/v1/report?window=7",
			expectedStatus: http.StatusBadRequest,
			expected:       true,
			parseResponse:  nonEmpty,
		},
		{
			name:           "Windows",
			path:           "/api/v1/windows",
			expectedStatus: http.StatusOK,
			expected: []api.Option{
				{Value: "30", Label: "Last 30 Days"},
				{Value: "90", Label: "Last 90 Days"},
				{Value: "365", Label: "Last Year"},
			},
			parseResponse: unmarshalResponse[[]api.Option](),
		},
		{
			name:           "Categories",
			path:           "/api/v1/categories",
			expectedStatus: http.StatusOK,
			expected: []api.Option{
				{Value: "all", Label: "All Types"},
				{Value: "Building", Label: "Building"},
				{Value: "Electrical", Label: "Electrical"},
				{Value: "Plumbing", Label: "Plumbing"},
				{Value: "Mechanical", Label: "Mechanical"},
				{Value: "Demolition", Label: "Demolition"},
			},
			parseResponse: unmarshalResponse[[]api.Option](),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Get(testServer.URL + tc.path)
			require.NoError(t, err, "Failed to send request")
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err, "Failed to read response body")

			actual, err := tc.parseResponse(body)
			require.NoError(t, err, "Failed to parse response")

			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestWebAPI_ExportAndMetrics(t *testing.T) {
	testServer := newTestServer(t)

	resp, err := http.Get(testServer.URL + "/api/v1/report/export?window=365")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "summary,total_permits,32096")

	resp, err = http.Get(testServer.URL + "/metrics")
	require.NoError(t, err)
	body, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `permit_atlas_reports_total{category="all",window="365"} 1`)
	assert.Contains(t, string(body), `permit_atlas_http_requests_total{code="200",method="GET",route="/api/v1/report/export"} 1`)
}

func summaryOf(data []byte) (interface{}, error) {
	var report api.Report
	err := json.Unmarshal(data, &report)
	return report.Summary, err
}

func nonEmpty(data []byte) (interface{}, error) {
	return len(data) > 0, nil
}

func unmarshalResponse[T any]() func([]byte) (interface{}, error) {
	return func(data []byte) (interface{}, error) {
		var response T
		err := json.Unmarshal(data, &response)
		return response, err
	}
}
