// Package testdb provides helpers for tests that need a real PostgreSQL
// database.
//
// Tests call GetTestDBWithT, which skips the test when DATABASE_URL is unset,
// then run their body inside WithTx. The transaction is rolled back when the
// body returns, so tests can run in parallel without cleaning up after
// themselves:
//
//	func TestSomething(t *testing.T) {
//		db := testdb.GetTestDBWithT(t)
//		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//			s := postgres.NewPostgresTaskStore(tx, nil)
//			// ...
//		})
//	}
package testdb
