package messenger

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

// ConsoleLogger writes "Console Logger: INFO-<msg>" lines.
type ConsoleLogger struct {
	out   io.Writer
	level *color.Color
}

// NewConsoleLogger returns a ConsoleLogger writing to out. colored turns the
// INFO tag green regardless of whether out is a terminal.
func NewConsoleLogger(out io.Writer, colored bool) *ConsoleLogger {
	level := color.New(color.FgGreen)
	if colored {
		level.EnableColor()
	} else {
		level.DisableColor()
	}
	return &ConsoleLogger{out: out, level: level}
}

func (l *ConsoleLogger) Log(msg string) {
	_, _ = fmt.Fprintf(l.out, "Console Logger: %s-%s\n", l.level.Sprint("INFO"), msg)
}

// ZapLogger forwards lines to a zap logger at info level.
type ZapLogger struct {
	log *zap.Logger
}

// NewZapLogger wraps log. A nil log discards everything.
func NewZapLogger(log *zap.Logger) *ZapLogger {
	if log == nil {
		log = zap.NewNop()
	}
	return &ZapLogger{log: log.Named("messenger")}
}

func (l *ZapLogger) Log(msg string) {
	l.log.Info(msg)
}
