package logger

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// New builds the application logger. Release mode drops debug output and the
// colored handler, which keeps container logs parseable.
func New(mode string) *slog.Logger {
	level := slog.LevelDebug
	if mode == "release" {
		level = slog.LevelInfo
	}
	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    mode == "release",
	})
	return slog.New(handler)
}
