// Package tracer provides a small tracing abstraction for the lookup pipeline.
//
// The orchestrator depends on the Tracer interface only; OTelTracer adapts
// OpenTelemetry and NoopTracer serves tests and tracing-disabled runs.
package tracer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
)

// Span represents an active trace span.
type Span interface {
	// End completes the span, marking it failed when err is non-nil.
	// End must be called exactly once.
	End(err error)

	SetAttributes(attrs ...Attribute)

	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute represents a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

// String creates a string attribute.
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Bool creates a boolean attribute.
func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int64 creates an int64 attribute.
func Int64(key string, value int64) Attribute {
	return Attribute{Key: key, Value: value}
}

// HashQuery returns a short SHA-256 prefix of a query so traces and logs can
// be correlated without carrying the raw identifier.
func HashQuery(query string) string {
	if query == "" {
		return ""
	}
	hash := sha256.Sum256([]byte(query))
	return hex.EncodeToString(hash[:8])
}

// Span names.
const (
	SpanSearch   = "lookup.search"
	SpanGuard    = "lookup.guard"
	SpanUpstream = "lookup.upstream"
)

// Attribute keys.
const (
	AttrCategory  = "lookup.category"
	AttrQueryHash = "lookup.query_hash"
	AttrOutcome   = "lookup.outcome"
	AttrBlocked   = "guard.blocked"
	AttrGuardSize = "guard.size"
)

// Event names.
const (
	EventHistoryUpdated = "history.updated"
)
