package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/deepgram/voicerelay/pkg/logger"
)

// WithLogger attaches l to every request context
func WithLogger(l zerolog.Logger) func(http.Handler) http.Handler {
	return hlog.NewHandler(l)
}

// AccessLog writes one line per request once the response is complete
func AccessLog() func(http.Handler) http.Handler {
	return hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		event := hlog.FromRequest(r).Info()
		if status >= http.StatusInternalServerError {
			event = hlog.FromRequest(r).Warn()
		}
		event.
			Str("namespace", logger.MIDDLEWARE).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("client_ip", r.RemoteAddr).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("Request completed")
	})
}
