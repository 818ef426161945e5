package logger

import (
	"log/slog"
	"os"
)

// SetupPrettySlog returns a human-friendly text logger for local runs.
// Dev and prod environments use JSON handlers instead (see components).
func SetupPrettySlog() *slog.Logger {
	return slog.New(
		slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: false,
		}),
	)
}
