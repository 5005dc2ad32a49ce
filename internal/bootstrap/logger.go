package bootstrap

import (
	"io"
	"log/slog"

	"github.com/murkotick/bookstore-catalog-service/internal/config"
)

// NewLogger builds the process logger from config.
func NewLogger(w io.Writer, cfg config.Log) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level}
	if cfg.JSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
