package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

type loggerKey struct{}

// WithLogger attaches logger to ctx so later pipeline stages can log
// through the caller's configuration instead of the package default.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger attached with WithLogger. When ctx is
// nil or carries no logger, the package default is returned instead, so
// callers never need a nil check.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	logger, ok := ctx.Value(loggerKey{}).(*log.Logger)
	if !ok || logger == nil {
		return Default()
	}
	return logger
}
