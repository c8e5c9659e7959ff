package shared

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContextKey is the type of keys this package stores in a request context.
type ContextKey string

const (
	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// TraceIDHeader carries the trace ID back to the client.
	TraceIDHeader = "X-Trace-ID"
)

// SetTraceID adds a freshly generated trace ID to the context.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// generateTraceID returns 32 hex characters from a random UUID. If the
// random source fails it falls back to the current time so an ID is always
// produced.
func generateTraceID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		fallback := make([]byte, 16)
		now := time.Now()
		binary.BigEndian.PutUint64(fallback[:8], uint64(now.UnixNano()))
		binary.BigEndian.PutUint64(fallback[8:], uint64(now.Nanosecond()))
		return hex.EncodeToString(fallback)
	}
	return strings.ReplaceAll(id.String(), "-", "")
}
