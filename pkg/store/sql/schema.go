package sql

const CategoriesTableSchema = `
	CREATE TABLE IF NOT EXISTS permit_categories (
		position INTEGER NOT NULL,
		name VARCHAR NOT NULL,
		base_count INTEGER NOT NULL,
		avg_duration_days DOUBLE PRECISION NOT NULL,
		success_rate_percent DOUBLE PRECISION NOT NULL
	);
`
const MonthlyBaselineTableSchema = `
	CREATE TABLE IF NOT EXISTS monthly_baseline (
		position INTEGER NOT NULL,
		month VARCHAR NOT NULL,
		submitted INTEGER NOT NULL,
		approved INTEGER NOT NULL,
		rejected INTEGER NOT NULL
	);
`
const BottlenecksTableSchema = `
	CREATE TABLE IF NOT EXISTS bottlenecks (
		list_position INTEGER NOT NULL,
		category VARCHAR NOT NULL,
		position INTEGER NOT NULL,
		issue VARCHAR NOT NULL,
		base_count INTEGER NOT NULL,
		avg_delay_days INTEGER NOT NULL
	);
`
const NeighborhoodsTableSchema = `
	CREATE TABLE IF NOT EXISTS neighborhoods (
		position INTEGER NOT NULL,
		name VARCHAR NOT NULL,
		base_permits INTEGER NOT NULL,
		avg_days INTEGER NOT NULL,
		trend VARCHAR NOT NULL
	);
`

// Schema lists the catalog DDL in creation order. It is valid for both DuckDB and Postgres.
// Tables carry no primary keys: Save deletes and re-inserts rows in one transaction,
// which DuckDB rejects for indexed keys.
var Schema = []string{
	CategoriesTableSchema,
	MonthlyBaselineTableSchema,
	BottlenecksTableSchema,
	NeighborhoodsTableSchema,
}
