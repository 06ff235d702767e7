package cliflags_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/mathy/util/cliflags"
)

func runWithProvider(t *testing.T, args []string, cb func(string) string) map[string]any {
	var result map[string]any

	app := &cli.App{
		Name: "test",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level"},
			&cli.Int64Flag{Name: "max-body-bytes"},
		},
		Commands: []*cli.Command{
			{
				Name: "serve",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "host", Value: "localhost"},
					&cli.IntFlag{Name: "port", Aliases: []string{"P"}, Value: 8080},
					&cli.BoolFlag{Name: "h2c"},
					&cli.DurationFlag{Name: "read-header-timeout"},
				},
				Action: func(ctx *cli.Context) error {
					var err error
					result, err = cliflags.Provider(ctx, ".", cb).Read()
					return err
				},
			},
		},
	}

	require.NoError(t, app.Run(append([]string{"test"}, args...)))

	return result
}

func TestProvider_SetFlagsOnly(t *testing.T) {
	mp := runWithProvider(t, []string{"serve", "-P", "9000", "--h2c"}, nil)

	assert.Equal(t, 9000, mp["port"])
	assert.Equal(t, true, mp["h2c"])
	assert.NotContains(t, mp, "host")
}

func TestProvider_ParentFlagsAndTransform(t *testing.T) {
	transform := func(s string) string {
		if s == "max-body-bytes" {
			return "runtime.max_body_bytes"
		}
		return strings.ReplaceAll(s, "-", "_")
	}

	mp := runWithProvider(t, []string{
		"--log-level", "debug",
		"--max-body-bytes", "42",
		"serve", "--read-header-timeout", "3s",
	}, transform)

	assert.Equal(t, "debug", mp["log_level"])
	assert.Equal(t, 3*time.Second, mp["read_header_timeout"])
	assert.Equal(t, map[string]any{"max_body_bytes": int64(42)}, mp["runtime"])
}

func TestProvider_ReadBytes(t *testing.T) {
	_, err := (&cliflags.CLIFlags{}).ReadBytes()
	assert.Error(t, err)
}
