package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/permit-atlas/pkg/models/domain"
	"github.com/de-tools/permit-atlas/pkg/services/analytics"
	"github.com/de-tools/permit-atlas/pkg/services/filter"
	"github.com/de-tools/permit-atlas/pkg/store/catalog"
	"github.com/rs/zerolog"
)

type Option struct {
	Value string
	Label string
}

// Service serves dashboard reports. It holds no mutable state and is safe for concurrent use.
type Service interface {
	Report(ctx context.Context, selection domain.FilterSelection) (*domain.Report, error)
	Categories(ctx context.Context) []Option
	Windows(ctx context.Context) []Option
}

type defaultService struct {
	catalog  catalog.Store
	resolver *filter.Resolver
	metrics  *Metrics
}

func NewService(store catalog.Store, metrics *Metrics) Service {
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	return &defaultService{
		catalog:  store,
		resolver: filter.NewResolver(store),
		metrics:  metrics,
	}
}

func (s *defaultService) Report(ctx context.Context, selection domain.FilterSelection) (*domain.Report, error) {
	logger := zerolog.Ctx(ctx)
	start := time.Now()

	report, err := s.report(selection)
	s.metrics.reportDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.reportErrors.WithLabelValues(errorKind(err)).Inc()
		logger.Warn().
			Err(err).
			Str("selection", selection.String()).
			Msg("report unavailable")
		return nil, err
	}

	s.metrics.reportsTotal.WithLabelValues(string(selection.Window), selection.Category).Inc()
	s.metrics.reportedPermits.WithLabelValues(string(selection.Window)).Set(float64(report.TotalCount))
	logger.Debug().
		Str("selection", selection.String()).
		Int("total", report.TotalCount).
		Dur("elapsed", time.Since(start)).
		Msg("report computed")
	return report, nil
}

func (s *defaultService) report(selection domain.FilterSelection) (*domain.Report, error) {
	resolved, err := s.resolver.Resolve(selection)
	if err != nil {
		return nil, err
	}
	report, err := analytics.Aggregate(s.catalog, resolved)
	if err != nil {
		return nil, err
	}
	if err := report.Validate(); err != nil {
		return nil, fmt.Errorf("malformed report: %w", err)
	}
	return report, nil
}

func (s *defaultService) Categories(_ context.Context) []Option {
	keys := s.catalog.CategoryKeys()
	options := make([]Option, 0, len(keys)+1)
	options = append(options, Option{Value: domain.AllCategories, Label: "All Types"})
	for _, key := range keys {
		options = append(options, Option{Value: key, Label: key})
	}
	return options
}

func (s *defaultService) Windows(_ context.Context) []Option {
	options := make([]Option, 0, len(domain.Windows))
	for _, w := range domain.Windows {
		options = append(options, Option{Value: string(w), Label: w.Label()})
	}
	return options
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidSelection):
		return "invalid_selection"
	case errors.Is(err, domain.ErrDegenerateAggregate):
		return "degenerate_aggregate"
	}
	return "internal"
}
