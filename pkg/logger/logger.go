package logger

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	APP        = "APP"
	CONFIG     = "CONFIG"
	GROQ       = "GROQ"
	HANDLER    = "HANDLER"
	MIDDLEWARE = "MIDDLEWARE"
	MURF       = "MURF"
	RELAY      = "RELAY"
	SERVICE    = "SERVICE"
)

// Setup configures the global zerolog logger. format is "json" or "console";
// anything else falls back to console output.
func Setup(level, format string, out io.Writer) {
	if out == nil {
		out = os.Stderr
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(parseLevel(level))

	if strings.EqualFold(format, "json") {
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out}).With().Timestamp().Logger()
	}

	// requests without a logger attached fall back to the global one
	zerolog.DefaultContextLogger = &log.Logger
}

func parseLevel(level string) zerolog.Level {
	if level == "" {
		return zerolog.InfoLevel
	}
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return parsed
}

// Ctx returns the request-scoped logger tagged with namespace.
func Ctx(ctx context.Context, namespace string) *zerolog.Logger {
	l := zerolog.Ctx(ctx).With().Str("namespace", namespace).Logger()
	return &l
}

func Debug(namespace, format string, v ...interface{}) {
	log.Debug().Str("namespace", namespace).Msgf(format, v...)
}

func Info(namespace, format string, v ...interface{}) {
	log.Info().Str("namespace", namespace).Msgf(format, v...)
}

func Warn(namespace, format string, v ...interface{}) {
	log.Warn().Str("namespace", namespace).Msgf(format, v...)
}

func Error(namespace, format string, v ...interface{}) {
	log.Error().Str("namespace", namespace).Msgf(format, v...)
}
