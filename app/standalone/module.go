package standalone

import (
	"go.uber.org/fx"

	"github.com/lambda-feedback/mathy/handler"
	"github.com/lambda-feedback/mathy/internal/server"
	"github.com/lambda-feedback/mathy/util/logging"
)

func Module(config Config) fx.Option {
	return fx.Module(
		"serve",
		// rename logger for module
		logging.DecorateLogger("serve"),
		// provide handlers
		handler.Module(config.Routes),
		// provide server
		server.Module(config.HttpConfig),
	)
}
