package logger

import "context"

type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID stamps the request id onto the context so downstream layers,
// the gorm query logger included, can correlate their entries.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID returns the request id carried by the context, empty when
// none was stamped.
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}
