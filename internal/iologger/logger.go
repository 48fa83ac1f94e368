// Package iologger provides slog-based logging initialization and configuration.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/srameta/pkg/config"
)

// LogFile is the name of the log file created in the log directory.
const LogFile = "srameta.log"

// Init initializes the global slog logger with the given configuration.
// For the "file" destination the log file in logDir is recreated on
// every start. It returns a function that closes the log file.
func Init(logDir string, cfg config.LogConfig) (func() error, error) {
	var writer io.Writer
	closer := func() error { return nil }

	switch cfg.Destination {
	case "stdout":
		writer = os.Stdout
	case "file":
		logPath := filepath.Join(logDir, LogFile)
		file, err := os.Create(logPath)
		if err != nil {
			return closer, CreateLogFileError(logPath, err)
		}
		writer = file
		closer = file.Close
	default:
		writer = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}

	var handler slog.Handler
	switch cfg.Format {
	case "text", "tint":
		handler = slog.NewTextHandler(writer, handlerOpts)
	default:
		handler = slog.NewJSONHandler(writer, handlerOpts)
	}

	slog.SetDefault(slog.New(handler))

	return closer, nil
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
