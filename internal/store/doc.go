// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic: task and audit log services depend only on
// TaskStore and AuditLogStore, while the postgres and memory packages under
// internal/platform provide the engines.
package store
