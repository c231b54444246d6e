package logger

import (
	"log/slog"
	"os"
)

// Log is the global logger instance; it writes through slog's default
// handler until Setup is called
var Log = slog.Default()

// Setup initializes the global logger based on the environment.
// Production logs JSON at info level, everything else text at debug level.
func Setup(env string) {
	var handler slog.Handler

	if env == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	Log = slog.New(handler).With(slog.String("service", "ledger-api"))
	slog.SetDefault(Log)
}

// Info logs an info message
func Info(msg string, args ...any) {
	Log.Info(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	Log.Error(msg, args...)
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	Log.Debug(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	Log.Warn(msg, args...)
}
