package cmd

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/mathy/config"
	"github.com/lambda-feedback/mathy/dispatch"
	"github.com/lambda-feedback/mathy/internal/shell"
	"github.com/lambda-feedback/mathy/util/conf"
	"github.com/lambda-feedback/mathy/util/logging"
)

var (
	invokeCmdDescription = `The invoke command dispatches a single request without
starting a server and prints the response status and body.
Use --body - to read the request body from stdin.

The command exits with code 1 if the response status is not
in the 2xx range.`
	invokeCmd = &cli.Command{
		Name:        "invoke",
		Usage:       "Dispatch a single request and print the response.",
		Description: invokeCmdDescription,
		ArgsUsage:   "<path>",
		Action:      invokeAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "method",
				Aliases: []string{"X"},
				Usage:   "The request method, case-sensitive.",
				Value:   http.MethodGet,
			},
			&cli.StringFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "The raw query string, e.g. n=5.",
			},
			&cli.StringFlag{
				Name:    "body",
				Aliases: []string{"d"},
				Usage:   "The request body, or - to read it from stdin.",
			},
		},
	}
)

func invokeAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("expected exactly one path argument, got %d", ctx.NArg())
	}

	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	cfg, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return err
	}

	dispatcher, err := dispatch.NewDispatcher(dispatch.HandlerParams{Log: log})
	if err != nil {
		return err
	}

	var body io.Reader = strings.NewReader(ctx.String("body"))
	if ctx.String("body") == "-" {
		body = ctx.App.Reader
	}

	path, rawQuery, _ := strings.Cut(ctx.Args().First(), "?")
	if ctx.IsSet("query") {
		rawQuery = ctx.String("query")
	}

	resp := dispatcher.Handle(ctx.Context, dispatch.Request{
		Method:   ctx.String("method"),
		Path:     path,
		RawQuery: rawQuery,
		Body:     dispatch.NewBodyReader(body, cfg.Runtime.MaxBodyBytes),
	})

	fmt.Fprintf(ctx.App.Writer, "%d %s\n%s\n", resp.StatusCode, http.StatusText(resp.StatusCode), resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return shell.NewExitError(1)
	}

	return nil
}

func init() {
	rootApp.Commands = append(rootApp.Commands, invokeCmd)
}
