// Package store declares the persistence contracts of the course API: the
// course, user and enrollment stores, the listing filter and page types, and
// the sentinel errors every implementation reports. Concrete SQL lives in
// internal/platform/postgres.
package store
