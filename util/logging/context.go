package logging

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

type contextKey struct{}

var ErrNoLoggerInContext = errors.New("no logger in context")

// ContextWithLogger attaches log to ctx. The cli commands pass the root
// logger to each other this way.
func ContextWithLogger(ctx context.Context, log *zap.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, log)
}

func LoggerFromContext(ctx context.Context) (*zap.Logger, error) {
	if log, ok := ctx.Value(contextKey{}).(*zap.Logger); ok && log != nil {
		return log, nil
	}

	return nil, ErrNoLoggerInContext
}
