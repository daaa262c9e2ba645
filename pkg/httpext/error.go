package httpext

import (
	"encoding/json"
	"net/http"

	"github.com/deepgram/voicerelay/pkg/logger"
)

// ErrorResponse represents a standardised JSON error response
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
	RequestID        string `json:"request_id,omitempty"`
}

// WriteJSON encodes v as the response body with the given status code
func WriteJSON(w http.ResponseWriter, code int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.Error(logger.HANDLER, "Failed to encode response: %v", err)
		http.Error(w, "{\"error\":\"Internal Server Error\"}", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(append(body, '\n')); err != nil {
		logger.Warn(logger.HANDLER, "Failed to write response body: %v", err)
	}
}

// JsonError writes a JSON error response with the specified status code
func JsonError(w http.ResponseWriter, message string, code int) {
	JsonErrorWithDetails(w, code, ErrorResponse{Error: message})
}

// JsonErrorWithDetails writes a detailed JSON error response. The request ID is
// copied from the response headers when the caller left it empty.
func JsonErrorWithDetails(w http.ResponseWriter, code int, errResp ErrorResponse) {
	if errResp.RequestID == "" {
		errResp.RequestID = w.Header().Get("X-Request-ID")
	}
	WriteJSON(w, code, errResp)
}
