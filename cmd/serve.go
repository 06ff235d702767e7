package cmd

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/lambda-feedback/mathy/app"
	"github.com/lambda-feedback/mathy/app/standalone"
	"github.com/lambda-feedback/mathy/util/conf"
)

var (
	serveCmdDescription = `The serve command starts a http server answering factorial,
fibonacci and mean requests. It blocks until the process
receives SIGINT or SIGTERM, then drains in-flight requests
and exits.`
	serveCmd = &cli.Command{
		Name:        "serve",
		Usage:       "Start a http server and listen for requests.",
		Description: serveCmdDescription,
		Action:      serveAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "host",
				Aliases:  []string{"H"},
				Usage:    "The host to listen on.",
				Value:    "localhost",
				Category: "http",
			},
			&cli.IntFlag{
				Name:     "port",
				Aliases:  []string{"P"},
				Usage:    "The port to listen on.",
				Value:    8080,
				Category: "http",
			},
			&cli.BoolFlag{
				Name:     "h2c",
				Usage:    "Enable HTTP/2 cleartext upgrade.",
				Category: "http",
			},
			&cli.DurationFlag{
				Name:     "read-header-timeout",
				Usage:    "The time allowed to read request headers, 0 disables the timeout.",
				Category: "http",
			},
			&cli.BoolFlag{
				Name:     "health",
				Usage:    "Mount the GET /health route.",
				Category: "routes",
			},
			&cli.BoolFlag{
				Name:     "metrics",
				Usage:    "Mount the GET /metrics route and record request metrics.",
				Category: "routes",
			},
		},
	}
)

func serveAction(ctx *cli.Context) error {
	shell, err := app.New(ctx)
	if err != nil {
		return err
	}

	opts, err := parseOptions(ctx, standalone.DefaultConfig)
	if err != nil {
		return err
	}

	cfg, err := conf.Parse[standalone.Config](opts)
	if err != nil {
		return err
	}

	opts.Log.Info("starting http server",
		zap.String("host", cfg.HttpConfig.Host),
		zap.Int("port", cfg.HttpConfig.Port),
	)

	return shell.Run(ctx.Context, standalone.Module(cfg))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, serveCmd)
}
