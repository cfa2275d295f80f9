package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/permit-atlas/pkg/models/domain"
	"github.com/de-tools/permit-atlas/pkg/store/duckdb"
	"github.com/de-tools/permit-atlas/pkg/store/postgres"
	catalogsql "github.com/de-tools/permit-atlas/pkg/store/sql"
	"github.com/rs/zerolog"
)

// Load builds the catalog named by profile. It is meant to run once at start-up;
// any error wraps domain.ErrCatalogLoad.
func Load(ctx context.Context, profile domain.CatalogProfile) (*Catalog, error) {
	logger := zerolog.Ctx(ctx)

	var (
		c   *Catalog
		err error
	)
	switch profile.Source {
	case domain.CatalogSourceBuiltin, "":
		c, err = New(BuiltinData())
	case domain.CatalogSourceYAML:
		c, err = LoadFile(profile.Path)
	case domain.CatalogSourceDuckDB:
		c, err = loadSQL(ctx, func() (*sql.DB, error) {
			return duckdb.NewDB(duckdb.Settings{DbPath: profile.Path})
		})
	case domain.CatalogSourcePostgres:
		c, err = loadSQL(ctx, func() (*sql.DB, error) {
			return postgres.NewDB(ctx, postgres.Settings{DSN: profile.DSN})
		})
	default:
		err = fmt.Errorf("%w: unknown catalog source %q", domain.ErrCatalogLoad, profile.Source)
	}
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", profile, err)
	}

	logger.Info().
		Str("profile", profile.String()).
		Int("categories", len(c.categories)).
		Int("neighborhoods", len(c.neighborhoods)).
		Msg("catalog loaded")
	return c, nil
}

func loadSQL(ctx context.Context, open func() (*sql.DB, error)) (*Catalog, error) {
	db, err := open()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogLoad, err)
	}
	defer db.Close()

	store, err := catalogsql.NewCatalogStore(db)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogLoad, err)
	}
	data, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return New(data)
}
