// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package.
// It handles query construction and execution, and the mapping between
// domain entities and database records. The schema itself is owned by the
// goose migrations embedded from the migrations directory.
package postgres
