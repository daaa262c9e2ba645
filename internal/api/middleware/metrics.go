package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/hlog"

	"github.com/deepgram/voicerelay/internal/metrics"
)

// Metrics records request counts and latency labelled by route template.
// Register it with Router.Use so the matched route is available.
func Metrics(collector *metrics.Collector) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if tmpl, err := route.GetPathTemplate(); err == nil {
					path = tmpl
				}
			}

			hlog.AccessHandler(func(r *http.Request, status, _ int, duration time.Duration) {
				collector.RecordHTTPRequest(r.Method, path, status, duration)
			})(next).ServeHTTP(w, r)
		})
	}
}
