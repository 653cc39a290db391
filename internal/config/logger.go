package config

import (
	"io"
	"log/slog"
)

// NewLogger builds the process logger: human-readable text in dev, JSON in
// prod so log shippers can parse it.
func NewLogger(w io.Writer, cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.Env == EnvProd {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
