package handlers

import (
	"net/http"

	"github.com/deepgram/voicerelay/pkg/httpext"
)

const statusMessage = "Groq + Murf voice agent backend running (fast model)"

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HandleRoot reports liveness without touching either provider
func HandleRoot(w http.ResponseWriter, r *http.Request) {
	httpext.WriteJSON(w, http.StatusOK, StatusResponse{Status: "ok", Message: statusMessage})
}
