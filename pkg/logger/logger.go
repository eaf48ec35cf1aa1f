package logger

import (
	"log/slog"
	"os"
)

// Log is usable from package load; Init reconfigures it at service startup.
var Log = newJSONLogger()

func Init() {
	Log = newJSONLogger()
}

func newJSONLogger() *slog.Logger {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	return slog.New(handler)
}
