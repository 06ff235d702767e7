package app

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/lambda-feedback/mathy/config"
	"github.com/lambda-feedback/mathy/dispatch"
	"github.com/lambda-feedback/mathy/internal/shell"
	"github.com/lambda-feedback/mathy/util/conf"
	"github.com/lambda-feedback/mathy/util/logging"
)

func New(ctx *cli.Context) (*shell.Shell, error) {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return nil, err
	}

	config, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return nil, err
	}

	sharedModule := fx.Module(
		"shared",
		// provide global config
		fx.Supply(config),
		// provide dispatcher
		dispatch.Module(config.Runtime),
	)

	return shell.New(log, sharedModule), nil
}
