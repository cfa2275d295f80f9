package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/de-tools/permit-atlas/pkg/models/domain"
	"github.com/de-tools/permit-atlas/pkg/store/duckdb"
	catalogsql "github.com/de-tools/permit-atlas/pkg/store/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Builtin(t *testing.T) {
	c, err := Load(context.Background(), domain.CatalogProfile{Name: "default", Source: domain.CatalogSourceBuiltin})
	require.NoError(t, err)
	assert.Equal(t, Builtin().Data(), c.Data())
}

func TestLoad_DuckDB(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: dbPath})
	require.NoError(t, err)
	store, err := catalogsql.NewCatalogStore(db)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, BuiltinData()))
	require.NoError(t, db.Close())

	c, err := Load(ctx, domain.CatalogProfile{Name: "warehouse", Source: domain.CatalogSourceDuckDB, Path: dbPath})
	require.NoError(t, err)
	assert.Equal(t, BuiltinData(), c.Data())
}

func TestLoad_Failures(t *testing.T) {
	tests := []struct {
		name    string
		profile domain.CatalogProfile
	}{
		{
			name:    "unknown source",
			profile: domain.CatalogProfile{Name: "p", Source: "s3"},
		},
		{
			name:    "missing yaml file",
			profile: domain.CatalogProfile{Name: "p", Source: domain.CatalogSourceYAML, Path: filepath.Join(t.TempDir(), "none.yaml")},
		},
		{
			name:    "empty duckdb catalog",
			profile: domain.CatalogProfile{Name: "p", Source: domain.CatalogSourceDuckDB, Path: filepath.Join(t.TempDir(), "empty.db")},
		},
		{
			name:    "postgres without dsn",
			profile: domain.CatalogProfile{Name: "p", Source: domain.CatalogSourcePostgres},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Load(context.Background(), tt.profile)
			assert.ErrorIs(t, err, domain.ErrCatalogLoad)
			assert.Nil(t, c)
		})
	}
}
