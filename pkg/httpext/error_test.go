package httpext

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestJsonError(t *testing.T) {
	tests := []struct {
		name           string
		message        string
		code           int
		expectedStatus int
		expectedBody   ErrorResponse
	}{
		{
			name:           "Basic error",
			message:        "Something went wrong",
			code:           http.StatusBadRequest,
			expectedStatus: http.StatusBadRequest,
			expectedBody: ErrorResponse{
				Error: "Something went wrong",
			},
		},
		{
			name:           "Bad gateway",
			message:        "Upstream failed",
			code:           http.StatusBadGateway,
			expectedStatus: http.StatusBadGateway,
			expectedBody: ErrorResponse{
				Error: "Upstream failed",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			JsonError(w, tt.message, tt.code)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status code %d, got %d", tt.expectedStatus, w.Code)
			}

			if w.Header().Get("Content-Type") != "application/json" {
				t.Errorf("Expected Content-Type application/json, got %s", w.Header().Get("Content-Type"))
			}

			var response ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
				t.Fatalf("Failed to decode response body: %v", err)
			}

			if response.Error != tt.expectedBody.Error {
				t.Errorf("Expected error message %q, got %q", tt.expectedBody.Error, response.Error)
			}
		})
	}
}

func TestJsonErrorWithDetails(t *testing.T) {
	tests := []struct {
		name          string
		headerID      string
		errorResponse ErrorResponse
		wantRequestID string
	}{
		{
			name: "Explicit request ID wins",
			errorResponse: ErrorResponse{
				Error:            "upstream_timeout",
				ErrorDescription: "Speech synthesis timed out",
				RequestID:        "abc",
			},
			headerID:      "from-header",
			wantRequestID: "abc",
		},
		{
			name:          "Request ID copied from header",
			errorResponse: ErrorResponse{Error: "bad_gateway"},
			headerID:      "from-header",
			wantRequestID: "from-header",
		},
		{
			name:          "No request ID",
			errorResponse: ErrorResponse{Error: "bad_gateway"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			if tt.headerID != "" {
				w.Header().Set("X-Request-ID", tt.headerID)
			}
			JsonErrorWithDetails(w, http.StatusGatewayTimeout, tt.errorResponse)

			if w.Code != http.StatusGatewayTimeout {
				t.Errorf("Expected status code %d, got %d", http.StatusGatewayTimeout, w.Code)
			}

			var response ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
				t.Fatalf("Failed to decode response body: %v", err)
			}

			if response.Error != tt.errorResponse.Error {
				t.Errorf("Expected error %q, got %q", tt.errorResponse.Error, response.Error)
			}
			if response.ErrorDescription != tt.errorResponse.ErrorDescription {
				t.Errorf("Expected error description %q, got %q", tt.errorResponse.ErrorDescription, response.ErrorDescription)
			}
			if response.RequestID != tt.wantRequestID {
				t.Errorf("Expected request ID %q, got %q", tt.wantRequestID, response.RequestID)
			}
		})
	}
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})

	if w.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %q", body["status"])
	}
}
