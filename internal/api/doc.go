// Package api handles incoming HTTP requests, request validation and
// response formatting. It adapts the JSON task and audit-log endpoints to the
// task and audit-log services.
//
// Every error response has the shape {"error": "...", "trace_id": "..."}.
// Internal error detail is logged (redacted) and never returned to clients.
package api
