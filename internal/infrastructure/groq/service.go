package groq

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/deepgram/voicerelay/internal/config"
	"github.com/deepgram/voicerelay/internal/domain/relay"
	"github.com/deepgram/voicerelay/internal/domain/relay/models"
	"github.com/deepgram/voicerelay/pkg/logger"
)

const ProviderName = "groq"

// Service talks to Groq through its OpenAI-compatible chat completions API
type Service struct {
	client       *openai.Client
	model        string
	systemPrompt string
	temperature  float32
	maxTokens    int
	timeout      time.Duration
}

func NewService(cfg config.GroqConfig) *Service {
	logger.Info(logger.GROQ, "Initialising Groq service with model %s", cfg.Model)

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &Service{
		client:       openai.NewClientWithConfig(clientConfig),
		model:        cfg.Model,
		systemPrompt: cfg.SystemPrompt,
		temperature:  cfg.Temperature,
		maxTokens:    cfg.MaxTokens,
		timeout:      cfg.Timeout,
	}
}

// Complete asks the model for a brief reply to message
func (s *Service) Complete(ctx context.Context, message string) (*models.AssistantReply, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: s.systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
		Stream:      false,
		Temperature: s.temperature,
		MaxTokens:   s.maxTokens,
	}

	log := logger.Ctx(ctx, logger.GROQ)
	log.Debug().
		Str("model", s.model).
		Int("message_length", len(message)).
		Msg("Sending chat completion request")

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		upstreamErr := classifyError(err)
		log.Error().Err(upstreamErr).Msg("Chat completion failed")
		return nil, upstreamErr
	}

	if len(resp.Choices) == 0 {
		return nil, relay.NewMalformedError(ProviderName, "response contained no choices", nil)
	}

	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return nil, relay.NewMalformedError(ProviderName, "first choice has no message content", nil)
	}

	log.Debug().
		Int("completion_tokens", resp.Usage.CompletionTokens).
		Str("finish_reason", string(resp.Choices[0].FinishReason)).
		Msg("Chat completion received")

	return &models.AssistantReply{Text: content}, nil
}

func classifyError(err error) *relay.UpstreamError {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return relay.NewHTTPError(ProviderName, apiErr.HTTPStatusCode, apiErr.Message, err)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return relay.NewHTTPError(ProviderName, reqErr.HTTPStatusCode, "unexpected status", err)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return relay.NewMalformedError(ProviderName, "response body is not a chat completion", err)
	}

	return relay.NewTransportError(ProviderName, err)
}
