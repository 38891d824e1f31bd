package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog with a level parsed from configuration.
type Logger struct {
	*slog.Logger
}

func NewLogger(level string) *Logger {
	var lvl slog.Level

	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: lvl,
	})

	return &Logger{slog.New(handler)}
}
