package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init installs the global logger. Text output goes through a
// zerolog.ConsoleWriter, anything else is written as JSON lines.
func Init(w io.Writer, debug bool, format string) {
	zerolog.TimeFieldFormat = time.RFC3339

	if w == nil {
		w = os.Stderr
	}

	out := w
	if format != "json" {
		out = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: "15:04:05",
			NoColor:    !isTerminal(w),
			PartsOrder: []string{
				zerolog.TimestampFieldName,
				zerolog.LevelFieldName,
				zerolog.MessageFieldName,
			},
		}
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	log.Logger = zerolog.New(out).With().Timestamp().Logger().Level(level)
	zerolog.DefaultContextLogger = &log.Logger
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// Debug logs debug messages only when debug mode is enabled
func Debug(format string, args ...interface{}) {
	log.Debug().Msgf(format, args...)
}

// Info logs informational messages
func Info(format string, args ...interface{}) {
	log.Info().Msgf(format, args...)
}

// Warning logs warning messages
func Warning(format string, args ...interface{}) {
	log.Warn().Msgf(format, args...)
}

// Error logs error messages
func Error(format string, args ...interface{}) {
	log.Error().Msgf(format, args...)
}

// ErrorWithDetails logs an error, attaching the cause as a structured field
func ErrorWithDetails(msg string, err error) {
	log.Error().Err(err).Msg(msg)
}
