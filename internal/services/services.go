package services

import (
	"fmt"

	"github.com/deepgram/voicerelay/internal/config"
	"github.com/deepgram/voicerelay/internal/infrastructure/groq"
	"github.com/deepgram/voicerelay/internal/infrastructure/murf"
	"github.com/deepgram/voicerelay/internal/metrics"
	"github.com/deepgram/voicerelay/internal/services/relay"
	"github.com/deepgram/voicerelay/pkg/logger"
)

type Services struct {
	config       *config.Config
	groqService  *groq.Service
	murfService  *murf.Service
	relayService relay.Service
	metrics      *metrics.Collector
}

// InitializeServices builds every service from cfg
func InitializeServices(cfg *config.Config, collector *metrics.Collector) (*Services, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}

	logger.Info(logger.SERVICE, "Initializing core services")

	groqService := groq.NewService(cfg.Groq)
	murfService := murf.NewService(cfg.Murf)

	relayService, err := relay.NewService(groqService, murfService, collector)
	if err != nil {
		logger.Error(logger.SERVICE, "Failed to initialize relay service: %v", err)
		return nil, fmt.Errorf("failed to initialize relay service: %w", err)
	}

	logger.Info(logger.SERVICE, "All services initialized (model %s, voice %s)", cfg.Groq.Model, cfg.Murf.VoiceID)

	return &Services{
		config:       cfg,
		groqService:  groqService,
		murfService:  murfService,
		relayService: relayService,
		metrics:      collector,
	}, nil
}

// NewServices assembles a container from prebuilt parts
func NewServices(cfg *config.Config, relayService relay.Service, collector *metrics.Collector) *Services {
	return &Services{
		config:       cfg,
		relayService: relayService,
		metrics:      collector,
	}
}

// GetRelayService returns the relay service
func (s *Services) GetRelayService() relay.Service {
	return s.relayService
}

// GetGroqService returns the completion provider, nil when built with NewServices
func (s *Services) GetGroqService() *groq.Service {
	return s.groqService
}

// GetMurfService returns the speech provider, nil when built with NewServices
func (s *Services) GetMurfService() *murf.Service {
	return s.murfService
}

// GetMetrics returns the metrics collector
func (s *Services) GetMetrics() *metrics.Collector {
	return s.metrics
}

// GetConfig returns the process configuration
func (s *Services) GetConfig() *config.Config {
	return s.config
}
