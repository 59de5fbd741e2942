package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"jamesfarrell.me/audio-to-text/internal/config"
)

// New builds the logger for a single run. Every record carries the run id so
// lines from one invocation can be grouped when stderr is collected.
func New(w io.Writer, cfg config.LogConfig, debug bool) *slog.Logger {
	level := ParseLevel(cfg.Level)
	if debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With("run_id", uuid.NewString())
}

func ParseLevel(level string) slog.Level {
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
