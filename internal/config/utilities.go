package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/deepgram/voicerelay/pkg/logger"
)

// GetEnvOrDefault returns the value of an environment variable or a default value
func GetEnvOrDefault(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

// firstNonEmpty returns the value of the first set variable among keys, and
// the key it came from.
func firstNonEmpty(keys ...string) (string, string) {
	for _, key := range keys {
		if value := GetEnvOrDefault(key, ""); value != "" {
			return value, key
		}
	}
	return "", ""
}

func parseEnvInt(key string, defaultValue int) int {
	val := GetEnvOrDefault(key, "")
	if val == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		logger.Warn(logger.CONFIG, "Invalid value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return parsed
}

func parseEnvDuration(key string, defaultValue time.Duration) time.Duration {
	val := GetEnvOrDefault(key, "")
	if val == "" {
		return defaultValue
	}

	parsed, err := time.ParseDuration(val)
	if err != nil || parsed <= 0 {
		logger.Warn(logger.CONFIG, "Invalid value for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return parsed
}
