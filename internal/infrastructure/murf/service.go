package murf

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/deepgram/voicerelay/internal/config"
	"github.com/deepgram/voicerelay/internal/domain/relay"
	"github.com/deepgram/voicerelay/pkg/logger"
)

const (
	ProviderName = "murf"

	generatePath = "/v1/speech/generate"
	maxErrorBody = 512
)

type Service struct {
	client       *http.Client
	apiKey       string
	baseURL      string
	voiceID      string
	format       string
	modelVersion string
	channelType  string
	sampleRate   int
	timeout      time.Duration
}

type GenerateRequest struct {
	Text           string `json:"text"`
	VoiceID        string `json:"voiceId"`
	Format         string `json:"format"`
	EncodeAsBase64 bool   `json:"encodeAsBase64"`
	ModelVersion   string `json:"modelVersion"`
	ChannelType    string `json:"channelType"`
	SampleRate     int    `json:"sampleRate"`
}

type GenerateResponse struct {
	EncodedAudio         string  `json:"encodedAudio"`
	AudioFile            string  `json:"audioFile"`
	AudioLengthInSeconds float64 `json:"audioLengthInSeconds"`
	ConsumedCharacters   int     `json:"consumedCharacterCount"`
	RemainingCharacters  int     `json:"remainingCharacterCount"`
}

func NewService(cfg config.MurfConfig) *Service {
	logger.Info(logger.MURF, "Initialising Murf service with voice %s", cfg.VoiceID)

	return &Service{
		client:       &http.Client{Timeout: cfg.Timeout},
		apiKey:       cfg.APIKey,
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		voiceID:      cfg.VoiceID,
		format:       cfg.Format,
		modelVersion: cfg.ModelVersion,
		channelType:  cfg.ChannelType,
		sampleRate:   cfg.SampleRate,
		timeout:      cfg.Timeout,
	}
}

// Synthesize returns the base64 encoded audio for text
func (s *Service) Synthesize(ctx context.Context, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	log := logger.Ctx(ctx, logger.MURF)

	req := GenerateRequest{
		Text:           text,
		VoiceID:        s.voiceID,
		Format:         s.format,
		EncodeAsBase64: true,
		ModelVersion:   s.modelVersion,
		ChannelType:    s.channelType,
		SampleRate:     s.sampleRate,
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+generatePath, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("api-key", s.apiKey)

	log.Debug().
		Str("voice_id", s.voiceID).
		Int("text_length", len(text)).
		Msg("Sending speech generation request")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		upstreamErr := relay.NewTransportError(ProviderName, err)
		log.Error().Err(upstreamErr).Msg("Speech generation request failed")
		return "", upstreamErr
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		log.Error().
			Int("status", resp.StatusCode).
			Str("body", string(body)).
			Msg("Murf API returned non-2xx status")
		return "", relay.NewHTTPError(ProviderName, resp.StatusCode, strings.TrimSpace(string(body)), nil)
	}

	var genResp GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		if relay.IsTimeout(err) {
			return "", relay.NewTimeoutError(ProviderName, err)
		}
		return "", relay.NewMalformedError(ProviderName, "failed to decode response", err)
	}

	if genResp.EncodedAudio == "" {
		return "", relay.NewMalformedError(ProviderName, "response did not contain encodedAudio", nil)
	}

	log.Debug().
		Float64("audio_seconds", genResp.AudioLengthInSeconds).
		Int("remaining_characters", genResp.RemainingCharacters).
		Msg("Speech generated")

	return genResp.EncodedAudio, nil
}
