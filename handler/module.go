package handler

import (
	"go.uber.org/fx"

	"github.com/lambda-feedback/mathy/internal/metrics"
)

func Module(config Config) fx.Option {
	options := []fx.Option{
		fx.Provide(NewDispatchHandler),
		fx.Provide(NewDispatchRoute),
	}

	if config.Health {
		options = append(options, fx.Provide(NewHealthRoute))
	}

	if config.Metrics {
		options = append(options,
			fx.Provide(metrics.New),
			fx.Provide(NewMetricsRoute),
		)
	}

	return fx.Module("handler", options...)
}
