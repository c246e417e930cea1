package common

import (
	"context"
	"log/slog"
)

// GetLogger is a helper to get logger from context or fallback
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(LoggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// GetRequestID returns the request ID stored in the context or empty string if there is no such
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// WithRequestLogger stores the request ID and a logger tagged with it in the context
func WithRequestLogger(ctx context.Context, requestID string) context.Context {
	logger := slog.Default().With("request_id", requestID)
	ctx = context.WithValue(ctx, RequestIDKey, requestID)
	return context.WithValue(ctx, LoggerKey, logger)
}
