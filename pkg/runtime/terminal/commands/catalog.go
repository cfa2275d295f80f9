package commands

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/de-tools/permit-atlas/pkg/adapters"
	"github.com/de-tools/permit-atlas/pkg/models/domain"
	"github.com/de-tools/permit-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/permit-atlas/pkg/store/duckdb"
	"github.com/de-tools/permit-atlas/pkg/store/postgres"
	catalogsql "github.com/de-tools/permit-atlas/pkg/store/sql"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func NewCatalogCmd(load CatalogLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and copy baseline catalogs",
	}

	cmd.AddCommand(newSeedCmd(load))
	cmd.AddCommand(newExportCmd(load))

	return cmd
}

type SeedCmd struct {
	profile string
	dbPath  string
	dsn     string
	load    CatalogLoader
}

func newSeedCmd(load CatalogLoader) *cobra.Command {
	sc := &SeedCmd{load: load}
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write a profile's catalog into a DuckDB file or a Postgres database",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.profile, "profile", defaultProfile, "Catalog profile to copy")
	cmd.Flags().StringVar(&sc.dbPath, "db", "", "Path of the DuckDB file to write")
	cmd.Flags().StringVar(&sc.dsn, "dsn", "", "Postgres connection string to write to")
	cmd.MarkFlagsMutuallyExclusive("db", "dsn")
	cmd.MarkFlagsOneRequired("db", "dsn")

	return cmd
}

func (sc *SeedCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	c, err := sc.load(ctx, sc.profile)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	db, target, err := sc.open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close database")
		}
	}()

	store, err := catalogsql.NewCatalogStore(db)
	if err != nil {
		return err
	}
	data := c.Data()
	if err := seed(ctx, db, store, data); err != nil {
		return fmt.Errorf("failed to seed %s: %w", target, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d categories and %d neighborhoods into %s\n",
		len(data.Categories), len(data.Neighborhoods), target)
	return nil
}

// seed writes the catalog in one transaction that the store joins through ctx.
func seed(ctx context.Context, db *sql.DB, store catalogsql.CatalogStore, data domain.CatalogData) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := store.Save(catalogsql.WithTransaction(ctx, tx), data); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (sc *SeedCmd) open(ctx context.Context) (*sql.DB, string, error) {
	switch {
	case sc.dbPath != "":
		db, err := duckdb.NewDB(duckdb.Settings{DbPath: sc.dbPath})
		if err != nil {
			return nil, "", fmt.Errorf("failed to open DuckDB: %w", err)
		}
		return db, sc.dbPath, nil
	case sc.dsn != "":
		db, err := postgres.NewDB(ctx, postgres.Settings{DSN: sc.dsn})
		if err != nil {
			return nil, "", fmt.Errorf("failed to open Postgres: %w", err)
		}
		return db, "postgres", nil
	}
	return nil, "", errors.New("either --db or --dsn is required")
}

type ExportCmd struct {
	profile string
	format  string
	load    CatalogLoader
}

func newExportCmd(load CatalogLoader) *cobra.Command {
	ec := &ExportCmd{load: load}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print a profile's catalog as a document the yaml source can read back",
		RunE:  ec.run,
	}

	cmd.Flags().StringVar(&ec.profile, "profile", defaultProfile, "Catalog profile to export")
	cmd.Flags().StringVarP(&ec.format, "format", "f", string(export.FormatYAML), "Output format (yaml, json)")

	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, _ []string) error {
	format, err := export.ParseFormat(ec.format)
	if err != nil {
		return err
	}
	if format != export.FormatYAML && format != export.FormatJSON {
		return fmt.Errorf("catalogs export as yaml or json, not %s", format)
	}

	c, err := ec.load(cmd.Context(), ec.profile)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	return export.Render(cmd.OutOrStdout(), format, adapters.MapDomainCatalogToStore(c.Data()))
}
