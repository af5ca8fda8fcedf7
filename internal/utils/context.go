// Package utils provides general-purpose helper utilities
// used across different parts of the application: request id generation
// and propagation, the shared HTTP client, and HTTP response writing.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// RequestIDCtxKey is the key used to store the request correlation id in the
// context.
var RequestIDCtxKey = contextKey("requestID")

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, id)
}

// RequestIDFromContext retrieves the request id stored by WithRequestID.
//
// Returns the id and an ok flag:
//   - ok == true  — a non-empty string value is present
//   - ok == false — value is missing, empty or has an unexpected type
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDCtxKey).(string)
	return id, ok && id != ""
}
