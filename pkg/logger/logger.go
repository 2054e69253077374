package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

var log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

// Init configures the package logger. Production environments log JSON,
// everything else logs text. LOG_LEVEL overrides the default level.
func Init(environment string) {
	opts := &slog.HandlerOptions{
		Level: parseLevel(os.Getenv("LOG_LEVEL"), environment),
	}

	var handler slog.Handler
	if strings.EqualFold(environment, "production") {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	log = slog.New(handler)
	slog.SetDefault(log)
}

func parseLevel(level, environment string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info":
		return slog.LevelInfo
	}

	if strings.EqualFold(environment, "development") {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// normalize lets callers pass a bare error (logger.Error("msg", err))
// alongside key/value pairs.
func normalize(args []any) []any {
	if len(args)%2 == 0 {
		return args
	}
	if err, ok := args[0].(error); ok {
		return append([]any{"error", err.Error()}, args[1:]...)
	}
	return append([]any{"detail", args[0]}, args[1:]...)
}

func Debug(msg string, args ...any) {
	log.Debug(msg, normalize(args)...)
}

func Info(msg string, args ...any) {
	log.Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	log.Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	log.Error(msg, normalize(args)...)
}

// Fatal logs at error level and exits the process.
func Fatal(msg string, args ...any) {
	log.Log(context.Background(), slog.LevelError, msg, normalize(args)...)
	os.Exit(1)
}
