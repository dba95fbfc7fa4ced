package logging

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// WithLogger returns a context carrying logger
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the context logger, or the global one
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
			return logger
		}
	}
	return GetGlobalLogger()
}

func withAttrs(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
}

// WithOperation tags the context logger with an MSK operation name
func WithOperation(ctx context.Context, operation string) context.Context {
	return withAttrs(ctx, "operation", operation)
}

// WithCluster tags the context logger with a cluster ARN
func WithCluster(ctx context.Context, clusterArn string) context.Context {
	return withAttrs(ctx, "cluster_arn", clusterArn)
}

// WithRequestID tags the context logger with an AWS request id
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withAttrs(ctx, "request_id", requestID)
}
