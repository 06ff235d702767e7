package logging

import (
	"go.uber.org/zap"
)

const (
	FormatProduction  = "production"
	FormatDevelopment = "development"
)

// New builds the application logger. Unknown levels fall back to info,
// any format other than development selects the json production encoder.
func New(level, format string) (*zap.Logger, error) {
	var config zap.Config
	if format == FormatDevelopment {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}

	config.Level = parseLevel(level)
	config.InitialFields = map[string]any{
		"app": "mathy",
	}

	return config.Build()
}

func parseLevel(level string) zap.AtomicLevel {
	if atom, err := zap.ParseAtomicLevel(level); err == nil {
		return atom
	}

	return zap.NewAtomicLevelAt(zap.InfoLevel)
}
