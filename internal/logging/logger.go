// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"textreports/internal/config"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger owns the handler installed as slog's default and the optional
// rotating file behind it. Call Close when done.
type Logger struct {
	*slog.Logger
	file *lumberjack.Logger
}

// NewLogger builds a logger from cfg writing to stderr and, when
// cfg.Log.File is set, to a size-rotated log file.
func NewLogger(cfg *config.Config, stderr io.Writer) (*Logger, error) {
	if stderr == nil {
		stderr = os.Stderr
	}

	l := &Logger{}
	out := stderr

	if cfg.Log.File != "" {
		err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o755)
		if err != nil {
			return nil, err
		}

		l.file = &lumberjack.Logger{
			Filename:   cfg.Log.File,
			MaxSize:    cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAgeDays,
		}
		out = io.MultiWriter(stderr, l.file)
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Log.Level)}
	if cfg.Verbose {
		opts.Level = slog.LevelDebug
	}

	var handler slog.Handler
	if cfg.Log.Format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	l.Logger = slog.New(handler)

	return l, nil
}

// Install makes l the default logger used by slog's package-level functions.
func (l *Logger) Install() {
	slog.SetDefault(l.Logger)
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}

	err := l.file.Close()
	l.file = nil

	return err
}

// ParseLevel maps a config level name to a slog level, defaulting to warn.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
