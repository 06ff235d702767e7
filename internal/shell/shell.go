package shell

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Shell runs an fx application until it is asked to stop, either by a
// signal or by a component calling fx.Shutdowner.
type Shell struct {
	log     *zap.Logger
	options []fx.Option
}

// New creates a shell whose applications all share the given options.
func New(log *zap.Logger, options ...fx.Option) *Shell {
	return &Shell{
		log:     log,
		options: options,
	}
}

// Run starts an application built from the shared and the given options
// and blocks until it stops. A non-zero exit is reported as *ExitError.
func (s *Shell) Run(ctx context.Context, options ...fx.Option) error {
	defer s.log.Sync()

	appCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	app := s.newApp(appCtx, options...)
	if err := app.Err(); err != nil {
		return fmt.Errorf("invalid application graph: %w", err)
	}

	startCtx, cancelStart := context.WithTimeout(ctx, app.StartTimeout())
	defer cancelStart()

	if err := app.Start(startCtx); err != nil {
		s.log.Error("application failed to start", zap.Error(err))
		return NewExitError(1)
	}

	sig := <-app.Wait()
	s.log.Debug("application stopping", zap.Stringer("signal", sig), zap.Int("code", sig.ExitCode))

	// components observing the app context stop before the hooks run
	cancel()

	stopCtx, cancelStop := context.WithTimeout(context.WithoutCancel(ctx), app.StopTimeout())
	defer cancelStop()

	if err := app.Stop(stopCtx); err != nil {
		s.log.Error("application failed to stop", zap.Error(err))
		return NewExitError(1)
	}

	if sig.ExitCode != 0 {
		return NewExitError(sig.ExitCode)
	}

	return nil
}

func (s *Shell) newApp(ctx context.Context, options ...fx.Option) *fx.App {
	return fx.New(
		// execution context, cancelled once the app stops
		fx.Supply(fx.Annotate(ctx, fx.As(new(context.Context)))),
		fx.Supply(s.log),
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: s.log.Named("fx")}
		}),
		fx.Options(s.options...),
		fx.Options(options...),
	)
}
