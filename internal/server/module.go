package server

import "go.uber.org/fx"

// Module serves every handler of the "handlers" group over http for the
// lifetime of the application.
func Module(config HttpConfig) fx.Option {
	return fx.Module("server",
		fx.Supply(config),
		fx.Provide(NewLifecycleServer),
		// the server has no consumers, force its construction
		fx.Invoke(func(*HttpServer) {}),
	)
}
