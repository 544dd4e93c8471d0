package logger

import (
	"log/slog"
	"os"
)

// Init installs a JSON slog handler as the process-wide default.
func Init() {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(h))
}

// Fatal logs at error level and exits. Only for startup failures.
func Fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	os.Exit(1)
}
