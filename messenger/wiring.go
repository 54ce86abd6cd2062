package messenger

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/sghaida/odic/config"
	"github.com/sghaida/odic/di"
)

// Options controls how Register wires the graph.
type Options struct {
	// Sink selects the Logger binding: config.SinkConsole (default) or config.SinkZap.
	Sink string
	// Out receives encryptor and console logger output. Defaults to os.Stdout.
	Out io.Writer
	// Color colours the console logger's level tag.
	Color bool
	// DateLayout is the encryptor's date layout. Defaults to DefaultDateLayout.
	DateLayout string
	// Clock overrides the system clock.
	Clock Clock
	// Zap is the logger behind the zap sink. Defaults to a no-op logger.
	Zap *zap.Logger
}

// OptionsFromConfig maps application config onto wiring options.
func OptionsFromConfig(cfg config.Config, out io.Writer, log *zap.Logger) Options {
	return Options{
		Sink:       cfg.Log.Sink,
		Out:        out,
		Color:      cfg.Log.Color,
		DateLayout: cfg.DateLayout,
		Zap:        log,
	}
}

// Register wires the messenger graph into reg:
//
//	Clock     -> SystemClock (or Options.Clock)
//	io.Writer -> Options.Out
//	Encryptor -> *HeadEncryptor
//	Logger    -> *ConsoleLogger | *ZapLogger
//	*Messenger
//
// Registrations follow reg's overwrite policy, so calling Register twice on a
// registry with the default policy fails with di.RegistrationError.
func Register(reg *di.Registry, opts Options) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	steps := []func() error{
		func() error { return registerClock(reg, opts.Clock) },
		func() error { return di.Provide0(reg, func() io.Writer { return out }) },
		func() error {
			return di.Provide2(reg, func(c Clock, w io.Writer) *HeadEncryptor {
				return NewHeadEncryptor(c, w, opts.DateLayout)
			})
		},
		func() error { return di.Register(reg, func(e *HeadEncryptor) Encryptor { return e }) },
		func() error { return registerLogger(reg, opts) },
		func() error { return di.Provide3(reg, NewMessenger) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return fmt.Errorf("messenger: wire: %w", err)
		}
	}
	return nil
}

func registerClock(reg *di.Registry, clock Clock) error {
	if clock != nil {
		return di.Provide0(reg, func() Clock { return clock })
	}
	if err := di.Provide0(reg, func() SystemClock { return SystemClock{} }); err != nil {
		return err
	}
	return di.Register(reg, func(c SystemClock) Clock { return c })
}

func registerLogger(reg *di.Registry, opts Options) error {
	switch opts.Sink {
	case "", config.SinkConsole:
		if err := di.Provide1(reg, func(w io.Writer) *ConsoleLogger {
			return NewConsoleLogger(w, opts.Color)
		}); err != nil {
			return err
		}
		return di.Register(reg, func(l *ConsoleLogger) Logger { return l })
	case config.SinkZap:
		if err := di.Provide0(reg, func() *zap.Logger { return opts.Zap }); err != nil {
			return err
		}
		if err := di.Provide1(reg, NewZapLogger); err != nil {
			return err
		}
		return di.Register(reg, func(l *ZapLogger) Logger { return l })
	default:
		return fmt.Errorf("unknown log sink %q", opts.Sink)
	}
}
