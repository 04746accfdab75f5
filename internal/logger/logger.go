package logger

import (
	"log/slog"
	"os"
)

var LogLevel = new(slog.LevelVar)

var Handler = slog.NewJSONHandler(
	os.Stderr,
	&slog.HandlerOptions{Level: LogLevel},
)
var Logger = slog.New(Handler)

func InitSlog() {
	slog.SetDefault(Logger)
	LogLevel.Set(slog.LevelDebug)
}
