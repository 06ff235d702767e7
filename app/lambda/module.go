package lambda

import (
	"go.uber.org/fx"

	"github.com/lambda-feedback/mathy/handler"
	"github.com/lambda-feedback/mathy/util/logging"
)

func Module(config Config) fx.Option {
	return fx.Module(
		"lambda",
		// provide lambda config
		fx.Supply(config),
		// rename logger for module
		logging.DecorateLogger("lambda"),
		// provide handlers
		handler.Module(config.Routes),
		// provide lambda runtime client
		fx.Provide(NewLifecycleHandler),
		// invoke lambda runtime client
		fx.Invoke(func(*LambdaHandler) {}),
	)
}
