package domain

import "fmt"

type CatalogSource string

const (
	CatalogSourceBuiltin  CatalogSource = "builtin"
	CatalogSourceYAML     CatalogSource = "yaml"
	CatalogSourceDuckDB   CatalogSource = "duckdb"
	CatalogSourcePostgres CatalogSource = "postgres"
)

// CatalogProfile names where a catalog is loaded from.
type CatalogProfile struct {
	Name   string
	Source CatalogSource
	Path   string // yaml file or duckdb database
	DSN    string // postgres connection string
}

func (c CatalogProfile) String() string {
	return fmt.Sprintf("%s:%s", c.Source, c.Name)
}
