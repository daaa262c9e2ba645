package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/deepgram/voicerelay/internal/api/middleware"
	"github.com/deepgram/voicerelay/internal/services"
)

const defaultMaxMessageLength = 2000

// RegisterRoutes adds the relay endpoints to router
func RegisterRoutes(router *mux.Router, services *services.Services) {
	maxMessageLength := defaultMaxMessageLength
	if cfg := services.GetConfig(); cfg != nil && cfg.MaxMessageLength > 0 {
		maxMessageLength = cfg.MaxMessageLength
	}

	if collector := services.GetMetrics(); collector != nil {
		router.Use(middleware.Metrics(collector))
		router.Handle("/metrics", collector.Handler()).Methods("GET")
	}

	router.HandleFunc("/", HandleRoot).Methods("GET")
	router.HandleFunc("/chat", func(w http.ResponseWriter, r *http.Request) {
		HandleChat(services.GetRelayService(), maxMessageLength, w, r)
	}).Methods("POST")
}

// NewHandler builds the router and wraps it with the request middleware
func NewHandler(services *services.Services, logger zerolog.Logger) http.Handler {
	router := mux.NewRouter()
	RegisterRoutes(router, services)

	var handler http.Handler = router
	handler = middleware.CORS()(handler)
	handler = middleware.AccessLog()(handler)
	handler = middleware.RequestID()(handler)
	handler = middleware.WithLogger(logger)(handler)
	return handler
}
