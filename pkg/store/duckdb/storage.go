package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	catalogsql "github.com/de-tools/permit-atlas/pkg/store/sql"
	"github.com/marcboeker/go-duckdb/v2"
)

type Settings struct {
	DbPath string
}

// NewDB opens a DuckDB database with the catalog tables created on every new connection.
func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		bootQueries := append([]string{}, catalogsql.Schema...)

		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
