package postgres

import (
	"context"
	"database/sql"
	"fmt"

	catalogsql "github.com/de-tools/permit-atlas/pkg/store/sql"
	_ "github.com/lib/pq"
)

type Settings struct {
	DSN string
}

// NewDB connects to Postgres and makes sure the catalog tables exist.
func NewDB(ctx context.Context, settings Settings) (*sql.DB, error) {
	if settings.DSN == "" {
		return nil, fmt.Errorf("postgres dsn is empty")
	}

	db, err := sql.Open("postgres", settings.DSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	for _, query := range catalogsql.Schema {
		if _, err := db.ExecContext(ctx, query); err != nil {
			db.Close()
			return nil, fmt.Errorf("create catalog schema: %w", err)
		}
	}
	return db, nil
}
