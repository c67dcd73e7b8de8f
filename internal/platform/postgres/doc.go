// Package postgres implements the store interfaces on PostgreSQL via
// database/sql with the pgx driver.
package postgres
