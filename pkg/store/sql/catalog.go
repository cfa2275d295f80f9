package sql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/permit-atlas/pkg/adapters"
	"github.com/de-tools/permit-atlas/pkg/models/domain"
	"github.com/de-tools/permit-atlas/pkg/models/store"
	"github.com/rs/zerolog"
)

const (
	selectCategories = `
		SELECT name, base_count, avg_duration_days, success_rate_percent
		FROM permit_categories
		ORDER BY position`
	selectMonths = `
		SELECT month, submitted, approved, rejected
		FROM monthly_baseline
		ORDER BY position`
	selectBottlenecks = `
		SELECT category, issue, base_count, avg_delay_days
		FROM bottlenecks
		ORDER BY list_position, position`
	selectNeighborhoods = `
		SELECT name, base_permits, avg_days, trend
		FROM neighborhoods
		ORDER BY position`
)

var catalogTables = []string{"permit_categories", "monthly_baseline", "bottlenecks", "neighborhoods"}

// CatalogStore reads and writes catalog reference tables. Row order is kept in position columns.
type CatalogStore interface {
	Load(ctx context.Context) (domain.CatalogData, error)
	Save(ctx context.Context, data domain.CatalogData) error
}

type catalogStore struct {
	db *sql.DB
}

func NewCatalogStore(db *sql.DB) (CatalogStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &catalogStore{db: db}, nil
}

func (s *catalogStore) Load(ctx context.Context) (domain.CatalogData, error) {
	var doc store.CatalogDocument

	err := s.query(ctx, selectCategories, func(rows *sql.Rows) error {
		var r store.CategoryRecord
		if err := rows.Scan(&r.Name, &r.BaseCount, &r.AvgDurationDays, &r.SuccessRatePercent); err != nil {
			return err
		}
		doc.Categories = append(doc.Categories, r)
		return nil
	})
	if err != nil {
		return domain.CatalogData{}, fmt.Errorf("%w: categories: %w", domain.ErrCatalogLoad, err)
	}

	err = s.query(ctx, selectMonths, func(rows *sql.Rows) error {
		var r store.MonthRecord
		if err := rows.Scan(&r.Month, &r.Submitted, &r.Approved, &r.Rejected); err != nil {
			return err
		}
		doc.Months = append(doc.Months, r)
		return nil
	})
	if err != nil {
		return domain.CatalogData{}, fmt.Errorf("%w: monthly baseline: %w", domain.ErrCatalogLoad, err)
	}

	err = s.query(ctx, selectBottlenecks, func(rows *sql.Rows) error {
		var (
			category string
			r        store.BottleneckRecord
		)
		if err := rows.Scan(&category, &r.Issue, &r.BaseCount, &r.AvgDelayDays); err != nil {
			return err
		}
		// rows arrive grouped by list, so a new key always starts a new group
		if n := len(doc.Bottlenecks); n == 0 || doc.Bottlenecks[n-1].Category != category {
			doc.Bottlenecks = append(doc.Bottlenecks, store.BottleneckGroup{Category: category})
		}
		last := &doc.Bottlenecks[len(doc.Bottlenecks)-1]
		last.Entries = append(last.Entries, r)
		return nil
	})
	if err != nil {
		return domain.CatalogData{}, fmt.Errorf("%w: bottlenecks: %w", domain.ErrCatalogLoad, err)
	}

	err = s.query(ctx, selectNeighborhoods, func(rows *sql.Rows) error {
		var r store.NeighborhoodRecord
		if err := rows.Scan(&r.Name, &r.BasePermits, &r.AvgDays, &r.Trend); err != nil {
			return err
		}
		doc.Neighborhoods = append(doc.Neighborhoods, r)
		return nil
	})
	if err != nil {
		return domain.CatalogData{}, fmt.Errorf("%w: neighborhoods: %w", domain.ErrCatalogLoad, err)
	}

	return adapters.MapStoreCatalogToDomain(doc), nil
}

func (s *catalogStore) query(ctx context.Context, query string, scan func(*sql.Rows) error) error {
	logger := zerolog.Ctx(ctx)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Warn().Err(err).Msg("failed to close catalog query rows")
		}
	}(rows)

	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

// Save replaces the stored catalog. It joins the transaction carried by ctx, if any.
func (s *catalogStore) Save(ctx context.Context, data domain.CatalogData) error {
	tx := GetTransaction(ctx)
	if tx == nil {
		var err error
		tx, err = s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		if err := s.save(ctx, tx, data); err != nil {
			_ = tx.Rollback()
			return err
		}
		return tx.Commit()
	}
	return s.save(ctx, tx, data)
}

func (s *catalogStore) save(ctx context.Context, tx *sql.Tx, data domain.CatalogData) error {
	doc := adapters.MapDomainCatalogToStore(data)

	for _, table := range catalogTables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for i, r := range doc.Categories {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO permit_categories (position, name, base_count, avg_duration_days, success_rate_percent)
			VALUES ($1, $2, $3, $4, $5)`,
			i, r.Name, r.BaseCount, r.AvgDurationDays, r.SuccessRatePercent,
		)
		if err != nil {
			return fmt.Errorf("insert category %q: %w", r.Name, err)
		}
	}

	for i, r := range doc.Months {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO monthly_baseline (position, month, submitted, approved, rejected)
			VALUES ($1, $2, $3, $4, $5)`,
			i, r.Month, r.Submitted, r.Approved, r.Rejected,
		)
		if err != nil {
			return fmt.Errorf("insert month %q: %w", r.Month, err)
		}
	}

	for li, g := range doc.Bottlenecks {
		for i, r := range g.Entries {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO bottlenecks (list_position, category, position, issue, base_count, avg_delay_days)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				li, g.Category, i, r.Issue, r.BaseCount, r.AvgDelayDays,
			)
			if err != nil {
				return fmt.Errorf("insert bottleneck %q: %w", r.Issue, err)
			}
		}
	}

	for i, r := range doc.Neighborhoods {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO neighborhoods (position, name, base_permits, avg_days, trend)
			VALUES ($1, $2, $3, $4, $5)`,
			i, r.Name, r.BasePermits, r.AvgDays, r.Trend,
		)
		if err != nil {
			return fmt.Errorf("insert neighborhood %q: %w", r.Name, err)
		}
	}
	return nil
}
