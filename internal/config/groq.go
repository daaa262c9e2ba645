package config

import (
	"time"

	"github.com/deepgram/voicerelay/pkg/logger"
)

const (
	DefaultGroqBaseURL      = "https://api.groq.com/openai/v1"
	DefaultGroqModel        = "llama-3.1-8b-instant"
	DefaultGroqSystemPrompt = "You are a friendly, fast voice assistant. Reply in 1-2 short sentences."
	DefaultGroqTemperature  = 0.5
	DefaultGroqMaxTokens    = 96
	DefaultGroqTimeout      = 30 * time.Second
)

// groqKeyVars are checked in order; the second spelling is kept for older deployments.
var groqKeyVars = []string{"GROQ_API_KEY", "GROK_API_KEY"}

// GroqConfig holds the fixed parameters of the completion call
type GroqConfig struct {
	APIKey       string
	BaseURL      string
	Model        string
	SystemPrompt string
	Temperature  float32
	MaxTokens    int
	Timeout      time.Duration
}

func loadGroqConfig() GroqConfig {
	key, source := firstNonEmpty(groqKeyVars...)
	if source != "" {
		logger.Debug(logger.CONFIG, "Groq API key loaded from %s", source)
	}

	return GroqConfig{
		APIKey:       key,
		BaseURL:      GetEnvOrDefault("GROQ_BASE_URL", DefaultGroqBaseURL),
		Model:        GetEnvOrDefault("GROQ_MODEL", DefaultGroqModel),
		SystemPrompt: GetEnvOrDefault("GROQ_SYSTEM_PROMPT", DefaultGroqSystemPrompt),
		Temperature:  DefaultGroqTemperature,
		MaxTokens:    DefaultGroqMaxTokens,
		Timeout:      parseEnvDuration("GROQ_TIMEOUT", DefaultGroqTimeout),
	}
}
