// Package memory provides process-local implementations of the store
// interfaces. They back the server when no database is configured and give
// service and handler tests a real store without Postgres.
//
// Stored values are copied on the way in and on the way out, so callers never
// share memory with the store.
package memory
