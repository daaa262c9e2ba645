package config

import "time"

const (
	DefaultMurfBaseURL      = "https://api.murf.ai"
	DefaultMurfVoiceID      = "en-US-natalie"
	DefaultMurfFormat       = "MP3"
	DefaultMurfModelVersion = "GEN2"
	DefaultMurfChannelType  = "MONO"
	DefaultMurfSampleRate   = 44100
	DefaultMurfTimeout      = 60 * time.Second
)

// MurfConfig holds the fixed parameters of the synthesis call
type MurfConfig struct {
	APIKey       string
	BaseURL      string
	VoiceID      string
	Format       string
	ModelVersion string
	ChannelType  string
	SampleRate   int
	Timeout      time.Duration
}

func loadMurfConfig() MurfConfig {
	return MurfConfig{
		APIKey:       GetEnvOrDefault("MURF_API_KEY", ""),
		BaseURL:      GetEnvOrDefault("MURF_BASE_URL", DefaultMurfBaseURL),
		VoiceID:      GetEnvOrDefault("MURF_VOICE_ID", DefaultMurfVoiceID),
		Format:       DefaultMurfFormat,
		ModelVersion: DefaultMurfModelVersion,
		ChannelType:  DefaultMurfChannelType,
		SampleRate:   DefaultMurfSampleRate,
		Timeout:      parseEnvDuration("MURF_TIMEOUT", DefaultMurfTimeout),
	}
}
