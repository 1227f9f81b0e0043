package testutil

import (
	"io"
	"log/slog"

	"blogapi/internal/logger"
)

// NewLogger returns a logger that discards all output.
func NewLogger() *logger.Logger {
	return &logger.Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}
