package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/deepgram/voicerelay/internal/domain/relay/models"
	"github.com/deepgram/voicerelay/internal/metrics"
	"github.com/deepgram/voicerelay/internal/services"
)

func newTestServer(t *testing.T, relayService *MockRelayService, collector *metrics.Collector) *httptest.Server {
	t.Helper()
	svcs := services.NewServices(nil, relayService, collector)
	server := httptest.NewServer(NewHandler(svcs, zerolog.Nop()))
	t.Cleanup(server.Close)
	return server
}

func TestRoutes(t *testing.T) {
	relayService := &MockRelayService{}
	relayService.On("HandleChat", mock.Anything, models.IncomingMessage{Message: "hello"}).
		Return(&models.ChatResult{Reply: "Hi there!", AudioDataURI: "data:audio/mp3;base64,QQ=="}, nil)

	collector := metrics.NewCollector("voicerelay")
	server := newTestServer(t, relayService, collector)

	t.Run("root", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	})

	t.Run("chat", func(t *testing.T) {
		resp, err := http.Post(server.URL+"/chat", "application/json", strings.NewReader(`{"message":"hello"}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("chat preflight", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodOptions, server.URL+"/chat", nil)
		require.NoError(t, err)
		req.Header.Set("Origin", "https://app.example.com")
		req.Header.Set("Access-Control-Request-Method", "POST")
		req.Header.Set("Access-Control-Request-Headers", "content-type")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		assert.Equal(t, "content-type", resp.Header.Get("Access-Control-Allow-Headers"))
	})

	t.Run("wrong method", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/chat")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})

	t.Run("invalid endpoint", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/invalid")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("metrics", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/metrics")
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), `voicerelay_http_requests_total{method="POST",path="/chat",status="200"} 1`)
	})
}

func TestRoutesWithoutMetrics(t *testing.T) {
	server := newTestServer(t, &MockRelayService{}, nil)

	resp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
