// Package service contains the task board's use cases: listing, creating,
// updating and deleting tasks, and reading the audit log that records every
// mutation.
//
// Services depend on the store interfaces, never on a storage engine, and
// receive every dependency through their constructor.
//
// Each successful task mutation is followed by exactly one audit entry. The
// audit write happens after the mutation; when it fails the mutation stays
// applied, the failure is logged, and the caller gets an error wrapping
// ErrAuditWriteFailed.
package service
