package config

import (
	"github.com/lambda-feedback/mathy/dispatch"
	"github.com/lambda-feedback/mathy/util/conf"
)

// EnvPrefix is the prefix of all environment variables read by mathy.
const EnvPrefix = "MATHY_"

type Config struct {
	// LogLevel is the log level for the application
	LogLevel string `conf:"log_level" validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`

	// LogFormat is the log format for the application
	LogFormat string `conf:"log_format" validate:"omitempty,oneof=production development"`

	// Runtime is the request dispatcher configuration
	Runtime dispatch.Config `conf:"runtime"`
}

// DefaultConfig holds the defaults for Config.
var DefaultConfig = conf.MergeDefaults("runtime", conf.DefaultConfig{
	"max_body_bytes": dispatch.DefaultMaxBodyBytes,
})

// CliMap maps root cli flags to their config keys.
var CliMap = map[string]string{
	"max-body-bytes": "runtime.max_body_bytes",
}
