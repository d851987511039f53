package logger

import (
	"io"
	"log/slog"
	"os"
)

// New builds the logger for env: JSON in production, text elsewhere.
// local/dev log at debug, test at warn to keep test output readable.
func New(env string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	switch env {
	case "production", "prod":
		return slog.New(slog.NewJSONHandler(w, opts))
	case "local", "dev", "development":
		opts.Level = slog.LevelDebug
	case "test":
		opts.Level = slog.LevelWarn
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// Setup installs New(env, os.Stdout) as the slog default
func Setup(env string) {
	logger := New(env, os.Stdout)
	slog.SetDefault(logger)

	slog.Info("Logger 초기화", "env", env)
}
