package standalone

import (
	"github.com/lambda-feedback/mathy/handler"
	"github.com/lambda-feedback/mathy/internal/server"
	"github.com/lambda-feedback/mathy/util/conf"
)

type Config struct {
	// HttpConfig represents the configuration for the HTTP server.
	HttpConfig server.HttpConfig `conf:",squash"`

	// Routes selects the routes mounted next to the dispatcher.
	Routes handler.Config `conf:",squash"`
}

var DefaultConfig = conf.DefaultConfig{
	"host": "localhost",
	"port": 8080,
}
