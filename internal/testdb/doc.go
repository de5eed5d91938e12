//go:build integration

// Package testdb provides utilities for database integration tests.
//
// Each test runs in its own transaction, which is rolled back when the test
// completes, so tests can run in parallel against one schema without cleanup.
//
//	func TestMyFeature(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        taskStore := postgres.NewPostgresTaskStore(tx, nil)
//	        // ...
//	    })
//	}
//
// The database is taken from DATABASE_URL or TASKAPI_TEST_DB_URL. When
// neither is set a disposable PostgreSQL container is started with
// testcontainers-go and shared by every test in the package. Migrations are
// applied once per process.
package testdb
