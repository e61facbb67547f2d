package logger

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// InitLogger installs the process-wide context logger. Console mode writes human readable lines,
// otherwise JSON lines go to stdout.
func InitLogger(level string, console bool) *zerolog.Logger {
	return InitLoggerTo(os.Stdout, level, console)
}

// InitLoggerTo is InitLogger with an explicit destination. The terminal UI owns stdout, so it
// logs to a file or io.Discard.
func InitLoggerTo(w io.Writer, level string, console bool) *zerolog.Logger {
	out := w
	if console {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: w != os.Stdout}
	}

	logger := zerolog.New(out).
		With().
		Timestamp().
		Caller().
		Logger()
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.DefaultContextLogger = &logger
	return &logger
}

func Logger(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
