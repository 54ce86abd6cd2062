// Package config loads the messenger application's configuration.
//
// Values come from, in increasing precedence: Defaults, an optional YAML file,
// and ODI_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sghaida/odic/di"
)

// Log sinks the messenger's Logger contract can be bound to.
const (
	SinkConsole = "console"
	SinkZap     = "zap"
)

// LogConfig configures both the application's structured logger and the
// Logger contract bound in the container.
type LogConfig struct {
	// Sink selects the Logger implementation: "console" or "zap".
	Sink string `yaml:"sink"`
	// Level is the zap level: debug, info, warn, error.
	Level string `yaml:"level"`
	// Format is the zap encoding: "console" or "json".
	Format string `yaml:"format"`
	// Color enables coloured level tags on console output.
	Color bool `yaml:"color"`
}

// Config is the messenger application configuration.
type Config struct {
	Log LogConfig `yaml:"log"`
	// DateLayout is the time layout the encryptor stamps messages with.
	DateLayout string `yaml:"date_layout"`
	// Overwrite is the container's duplicate registration policy: error, overwrite or ignore.
	Overwrite string `yaml:"overwrite"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Log: LogConfig{
			Sink:   SinkConsole,
			Level:  "info",
			Format: "console",
			Color:  false,
		},
		DateLayout: "2006-01-02",
		Overwrite:  di.OverwriteError.String(),
	}
}

// Load builds a Config from Defaults, the YAML file at path (skipped when path
// is empty) and the environment, then validates it.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if strings.TrimSpace(path) != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Log.Sink = getenv("ODI_LOG_SINK", c.Log.Sink)
	c.Log.Level = getenv("ODI_LOG_LEVEL", c.Log.Level)
	c.Log.Format = getenv("ODI_LOG_FORMAT", c.Log.Format)
	c.Log.Color = getenvBool("ODI_LOG_COLOR", c.Log.Color)
	c.DateLayout = getenv("ODI_DATE_LAYOUT", c.DateLayout)
	c.Overwrite = getenv("ODI_OVERWRITE", c.Overwrite)
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error

	switch c.Log.Sink {
	case SinkConsole, SinkZap:
	default:
		errs = append(errs, fmt.Errorf("log.sink must be %q or %q, got %q", SinkConsole, SinkZap, c.Log.Sink))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q is not a known level", c.Log.Level))
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be console or json, got %q", c.Log.Format))
	}
	if strings.TrimSpace(c.DateLayout) == "" {
		errs = append(errs, errors.New("date_layout must not be empty"))
	} else if _, err := time.Parse(c.DateLayout, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC).Format(c.DateLayout)); err != nil {
		errs = append(errs, fmt.Errorf("date_layout %q does not round-trip: %w", c.DateLayout, err))
	}
	if _, err := di.ParseOverwritePolicy(c.Overwrite); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// OverwritePolicy returns the parsed container overwrite policy. Call it on a
// validated Config.
func (c Config) OverwritePolicy() di.OverwritePolicy {
	p, _ := di.ParseOverwritePolicy(c.Overwrite)
	return p
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
