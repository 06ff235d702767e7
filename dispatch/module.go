package dispatch

import "go.uber.org/fx"

// Module provides the dispatcher as a Handler.
func Module(config Config) fx.Option {
	return fx.Module(
		"dispatch",

		// provide dispatch config
		fx.Supply(config),

		// provide dispatcher
		fx.Provide(
			fx.Annotate(NewDispatcher, fx.As(new(Handler))),
		),
	)
}
