package logging

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// DecorateLogger names the logger of every component in an fx module.
func DecorateLogger(name string) fx.Option {
	return fx.Decorate(func(log *zap.Logger) *zap.Logger {
		return log.Named(name)
	})
}
