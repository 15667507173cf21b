package app

import (
	"log/slog"

	"softrast/hal"
)

// NewLogger returns a text slog.Logger writing one record per line to l.
func NewLogger(l hal.Logger, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(hal.LogWriter(l), &slog.HandlerOptions{Level: level}))
}
