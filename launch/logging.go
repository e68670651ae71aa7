package launch

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type LoggingConfig struct {
	// Level is one of debug, info, warn or error
	Level string `yaml:"level"`

	// Format is either text or json
	Format string `yaml:"format"`

	// File to append the log to. Use this with the terminal backend.
	File string `yaml:"file"`

	// Output defaults to stderr, ignored if File is set
	Output io.Writer `yaml:"-"`
}

// SetupLogging creates a logger from the config and installs it as the
// default logger. The returned function closes the log file, if any.
func SetupLogging(cfg LoggingConfig) (*slog.Logger, func(), error) {
	var level slog.Level
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, nil, fmt.Errorf("parse log level: %w", err)
		}
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	closeLog := func() {}

	if cfg.File != "" {
		fp, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}

		output = fp
		closeLog = func() { _ = fp.Close() }
	}

	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", "text":
		handler = slog.NewTextHandler(output, handlerOpts)
	case "json":
		handler = slog.NewJSONHandler(output, handlerOpts)
	default:
		closeLog()
		return nil, nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger, closeLog, nil
}
