package log

import "context"

// FieldRequestID is the structured field name for the per-request id.
const FieldRequestID = "request_id"

type requestIDKey struct{}

// WithRequestID stores a request id in ctx so every log line carries it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request id stored by WithRequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
