package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/mathy/config"
	"github.com/lambda-feedback/mathy/internal/shell"
	"github.com/lambda-feedback/mathy/util/conf"
	"github.com/lambda-feedback/mathy/util/logging"
)

var (
	appName  = "mathy"
	appUsage = `A small http service computing factorials, fibonacci
numbers and arithmetic means.`
	rootApp = &cli.App{
		Name:            appName,
		Usage:           appUsage,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "set the log level. Options: debug, info, warn, error, dpanic, panic, fatal.",
				EnvVars: []string{"MATHY_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "set the log format. Options: production, development.",
				EnvVars: []string{"MATHY_LOG_FORMAT"},
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "load configuration from a json or .env file.",
				EnvVars: []string{"MATHY_CONFIG"},
			},
			&cli.Int64Flag{
				Name:     "max-body-bytes",
				Usage:    "the maximum size of a request body in bytes, 0 disables the limit.",
				Category: "runtime",
			},
		},
		Before: func(ctx *cli.Context) error {
			log, err := logging.New(ctx.String("log-level"), ctx.String("log-format"))
			if err != nil {
				return err
			}

			ctx.Context = logging.ContextWithLogger(ctx.Context, log)

			cfg, err := conf.Parse[config.Config](conf.ParseOptions{
				Cli:       ctx,
				CliMap:    config.CliMap,
				Defaults:  config.DefaultConfig,
				EnvPrefix: config.EnvPrefix,
				FileName:  ctx.String("config"),
				Log:       log,
			})
			if err != nil {
				return err
			}

			ctx.Context = conf.ContextWithConfig(ctx.Context, cfg)

			return nil
		},
		After: func(ctx *cli.Context) error {
			if log, err := logging.LoggerFromContext(ctx.Context); err == nil {
				_ = log.Sync()
			}

			return nil
		},
	}
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:               "version",
		Usage:              "print the version",
		DisableDefaultText: true,
	}
}

type ExecuteParams struct {
	Version  string
	Compiled time.Time

	// Exit terminates the process, defaults to os.Exit.
	Exit func(code int)
}

func Execute(params ExecuteParams) {
	rootApp.Version = params.Version
	rootApp.Compiled = params.Compiled

	exit := params.Exit
	if exit == nil {
		exit = os.Exit
	}

	exit(run(context.Background(), os.Args))
}

func run(ctx context.Context, args []string) int {
	err := rootApp.RunContext(ctx, args)
	if err == nil {
		return 0
	}

	code := shell.ExitCode(err)

	// exit errors are logged by the shell before it returns
	var exitErr *shell.ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
	}

	return code
}

// parseOptions returns the options a command uses to parse its own
// configuration, sharing env prefix and config file with the root.
func parseOptions(ctx *cli.Context, defaults conf.DefaultConfig) (conf.ParseOptions, error) {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return conf.ParseOptions{}, err
	}

	return conf.ParseOptions{
		Cli:       ctx,
		Defaults:  defaults,
		EnvPrefix: config.EnvPrefix,
		FileName:  ctx.String("config"),
		Log:       log,
	}, nil
}
