package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Setup creates a text *slog.Logger writing to w, sets it as the default,
// and returns it. level accepts "debug", "info", "warn" or "error"
// (case-insensitive); anything else means warn, which keeps CLI output
// clean.
func Setup(level string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: lvl,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
