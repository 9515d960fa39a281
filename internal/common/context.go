package common

import (
	"context"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID    contextKey = "request_id"
	ContextKeyDocumentName contextKey = "document_name"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithDocumentName adds the document name to the context
func WithDocumentName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, ContextKeyDocumentName, name)
}

// DocumentNameFromContext extracts the document name from context
func DocumentNameFromContext(ctx context.Context) string {
	if name, ok := ctx.Value(ContextKeyDocumentName).(string); ok {
		return name
	}
	return ""
}
