package observability

import (
	"log/slog"
	"os"
)

// NewLogger returns a JSON slog logger, wrapped so records emitted with a
// request context carry the active trace and span ids.
func NewLogger(env string) *slog.Logger {
	level := slog.LevelInfo

	if env == "dev" {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(NewTraceHandler(handler))
}
