package cmd

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/lambda-feedback/mathy/app"
	"github.com/lambda-feedback/mathy/app/lambda"
	"github.com/lambda-feedback/mathy/util/conf"
)

var (
	lambdaCmdDescription = `The lambda command starts mathy as an AWS Lambda runtime
interface client. Incoming API Gateway or ALB events are
translated into http requests and routed exactly like
requests of the standalone server.

The command blocks indefinitely, processing incoming AWS
Lambda events.`
	lambdaCmd = &cli.Command{
		Name:        "lambda",
		Usage:       "Run the AWS Lambda handler",
		Description: lambdaCmdDescription,
		Action:      lambdaAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "lambda-proxy-source",
				Usage:    "the source of the AWS Lambda event. Options: API_GW_V1, API_GW_V2, ALB.",
				Value:    "API_GW_V2",
				Category: "lambda",
			},
		},
	}
)

func lambdaAction(ctx *cli.Context) error {
	shell, err := app.New(ctx)
	if err != nil {
		return err
	}

	opts, err := parseOptions(ctx, lambda.DefaultConfig)
	if err != nil {
		return err
	}

	cfg, err := conf.Parse[lambda.Config](opts)
	if err != nil {
		return err
	}

	opts.Log.Info("starting AWS Lambda handler", zap.Stringer("proxy_source", cfg.ProxySource))

	return shell.Run(ctx.Context, lambda.Module(cfg))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, lambdaCmd)
}
