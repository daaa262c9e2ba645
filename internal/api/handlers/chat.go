package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/hlog"

	domain "github.com/deepgram/voicerelay/internal/domain/relay"
	"github.com/deepgram/voicerelay/internal/domain/relay/models"
	"github.com/deepgram/voicerelay/internal/services/relay"
	"github.com/deepgram/voicerelay/pkg/httpext"
)

const maxBodyBytes = 64 << 10

// use a single instance of Validate, it caches struct info
var validate = validator.New(validator.WithRequiredStructEnabled())

// HandleChat relays one message through the completion and speech providers
func HandleChat(relayService relay.Service, maxMessageLength int, w http.ResponseWriter, r *http.Request) {
	log := hlog.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req models.IncomingMessage
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			log.Warn().Int64("limit", maxErr.Limit).Msg("Client sent oversized request body")
			httpext.JsonError(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		log.Warn().Err(err).Msg("Client sent malformed JSON request")
		httpext.JsonError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil || strings.TrimSpace(req.Message) == "" {
		log.Warn().Err(err).Msg("Client sent empty message")
		httpext.JsonError(w, "Message cannot be empty", http.StatusBadRequest)
		return
	}

	if err := validate.Var(req.Message, fmt.Sprintf("max=%d", maxMessageLength)); err != nil {
		log.Warn().Int("limit", maxMessageLength).Msg("Client sent oversized message")
		httpext.JsonError(w, fmt.Sprintf("Message cannot exceed %d characters", maxMessageLength), http.StatusBadRequest)
		return
	}

	log.Info().
		Int("message_length", len(req.Message)).
		Str("client_ip", r.RemoteAddr).
		Msg("Received chat request")

	result, err := relayService.HandleChat(r.Context(), req)
	if err != nil {
		writeRelayError(w, r, err)
		return
	}

	httpext.WriteJSON(w, http.StatusOK, result)
}

func writeRelayError(w http.ResponseWriter, r *http.Request, err error) {
	log := hlog.FromRequest(r)

	if errors.Is(err, domain.ErrEmptyMessage) {
		httpext.JsonError(w, "Message cannot be empty", http.StatusBadRequest)
		return
	}

	var upstreamErr *domain.UpstreamError
	if !errors.As(err, &upstreamErr) {
		log.Error().Err(err).Msg("Failed to process chat")
		httpext.JsonError(w, "Failed to process chat", http.StatusInternalServerError)
		return
	}

	code := http.StatusBadGateway
	if upstreamErr.Kind == domain.KindUpstreamTimeout {
		code = http.StatusGatewayTimeout
	}

	log.Error().
		Err(err).
		Str("provider", upstreamErr.Provider).
		Str("kind", string(upstreamErr.Kind)).
		Int("upstream_status", upstreamErr.StatusCode).
		Int("status", code).
		Msg("Upstream provider failed")

	httpext.JsonErrorWithDetails(w, code, httpext.ErrorResponse{
		Error:            "Failed to process chat",
		ErrorDescription: fmt.Sprintf("%s request failed: %s", upstreamErr.Provider, strings.ToLower(string(upstreamErr.Kind))),
	})
}
