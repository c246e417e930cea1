package common

// Define a custom type for context keys
type contextKey string

const (
	LoggerKey    contextKey = "LoggerKey"
	RequestIDKey contextKey = "RequestIDKey"

	RequestIDHeader = "X-Request-ID"
)
