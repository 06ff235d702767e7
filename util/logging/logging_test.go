package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log, err := New(tt.level, FormatProduction)
			require.NoError(t, err)

			assert.True(t, log.Core().Enabled(tt.expected))
			if tt.expected > zapcore.DebugLevel {
				assert.False(t, log.Core().Enabled(tt.expected-1))
			}
		})
	}
}

func TestNew_Development(t *testing.T) {
	log, err := New("debug", FormatDevelopment)
	require.NoError(t, err)

	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestContext(t *testing.T) {
	_, err := LoggerFromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoLoggerInContext)

	log := zap.NewNop()
	got, err := LoggerFromContext(ContextWithLogger(context.Background(), log))
	require.NoError(t, err)
	assert.Same(t, log, got)
}

func TestDecorateLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	app := fxtest.New(t,
		fx.Supply(zap.New(core)),
		fx.Module("serve",
			DecorateLogger("serve"),
			fx.Invoke(func(log *zap.Logger) {
				log.Info("hello")
			}),
		),
	)
	app.RequireStart().RequireStop()

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "serve", logs.All()[0].LoggerName)
}
