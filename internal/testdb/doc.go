//go:build integration

// Package testdb provides helpers for tests that run against a real
// PostgreSQL database.
//
// Tests obtain a connection with GetTestDB, which skips the test when no
// database URL is configured and applies the embedded goose migrations once
// per process. Each test then runs its body inside WithTx, which hands it a
// transaction that is always rolled back, so tests can share one database
// without cleaning up after themselves.
//
//	func TestSomething(t *testing.T) {
//	    db := testdb.GetTestDB(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        courses := postgres.NewPostgresCourseStore(tx, nil)
//	        ...
//	    })
//	}
//
// The database URL is read from COURSES_TEST_DB_URL, falling back to
// DATABASE_URL.
package testdb
