package dashboard

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are registered by the caller; tests use a private registry.
type Metrics struct {
	reportsTotal    *prometheus.CounterVec
	reportErrors    *prometheus.CounterVec
	reportDuration  prometheus.Histogram
	reportedPermits *prometheus.GaugeVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		reportsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "permit_atlas",
			Name:      "reports_total",
			Help:      "Reports computed, by window and category selection",
		}, []string{"window", "category"}),
		reportErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "permit_atlas",
			Name:      "report_errors_total",
			Help:      "Report requests that failed, by error kind",
		}, []string{"kind"}),
		reportDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "permit_atlas",
			Name:      "report_duration_seconds",
			Help:      "Time to resolve and aggregate a report",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		}),
		reportedPermits: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "permit_atlas",
			Name:      "report_total_permits",
			Help:      "Total permit count of the latest report per window",
		}, []string{"window"}),
	}

	if reg != nil {
		reg.MustRegister(m.reportsTotal, m.reportErrors, m.reportDuration, m.reportedPermits)
	}
	return m
}
