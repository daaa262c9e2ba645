package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/deepgram/voicerelay/pkg/logger"
)

// Config is built once at startup and handed to every component that needs it
type Config struct {
	HTTPAddr         string
	LogLevel         string
	LogFormat        string
	MaxMessageLength int
	ShutdownTimeout  time.Duration

	Groq GroqConfig
	Murf MurfConfig
}

// ConfigError reports every required variable that is missing
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", strings.Join(e.Missing, ", "))
}

// LoadDotEnv reads path into the environment without overriding variables
// that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	logger.Info(logger.CONFIG, "Loaded environment from %s", path)
	return nil
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:         GetEnvOrDefault("HTTP_ADDR", ":8000"),
		LogLevel:         GetEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:        GetEnvOrDefault("LOG_FORMAT", "console"),
		MaxMessageLength: parseEnvInt("MAX_MESSAGE_LENGTH", 2000),
		ShutdownTimeout:  parseEnvDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
		Groq:             loadGroqConfig(),
		Murf:             loadMurfConfig(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that both provider keys are present
func (c *Config) Validate() error {
	var missing []string
	if c.Groq.APIKey == "" {
		missing = append(missing, strings.Join(groqKeyVars, "/"))
	}
	if c.Murf.APIKey == "" {
		missing = append(missing, "MURF_API_KEY")
	}
	if len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}
	return nil
}
