// Package logging installs and hands out the process-wide structured
// logger shared by the indexer, searcher, crawler and web binaries.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup installs a slog handler as the process default. format is "json"
// or anything else for human-readable text; level is one of
// debug/info/warn/error (case-insensitive), defaulting to info.
func Setup(level, format string) {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// WithComponent returns a logger tagged with a component field, so log
// lines from the indexer, evaluator, and crawler are easy to separate.
func WithComponent(component string) *slog.Logger {
	return slog.Default().With("component", component)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
