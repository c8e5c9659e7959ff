// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels. Request-scoped loggers travel in a context.Context,
// so stores and services log with the trace id of the request they serve.
package logger
