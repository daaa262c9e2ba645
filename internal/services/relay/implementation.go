package relay

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domain "github.com/deepgram/voicerelay/internal/domain/relay"
	"github.com/deepgram/voicerelay/internal/domain/relay/models"
	"github.com/deepgram/voicerelay/internal/metrics"
	"github.com/deepgram/voicerelay/pkg/logger"
)

const (
	completionStep = "groq"
	speechStep     = "murf"
)

type Implementation struct {
	completion domain.CompletionProvider
	speech     domain.SpeechProvider
	metrics    *metrics.Collector
}

func NewService(completion domain.CompletionProvider, speech domain.SpeechProvider, collector *metrics.Collector) (*Implementation, error) {
	if completion == nil {
		return nil, errors.New("completion provider is required")
	}
	if speech == nil {
		return nil, errors.New("speech provider is required")
	}

	return &Implementation{
		completion: completion,
		speech:     speech,
		metrics:    collector,
	}, nil
}

func (s *Implementation) HandleChat(ctx context.Context, input models.IncomingMessage) (*models.ChatResult, error) {
	if strings.TrimSpace(input.Message) == "" {
		return nil, domain.ErrEmptyMessage
	}

	log := logger.Ctx(ctx, logger.RELAY)

	start := time.Now()
	reply, err := s.completion.Complete(ctx, input.Message)
	s.record(completionStep, start, err)
	if err != nil {
		return nil, fmt.Errorf("completion failed: %w", err)
	}
	log.Debug().
		Dur("elapsed", time.Since(start)).
		Int("reply_length", len(reply.Text)).
		Msg("Completion step finished")

	start = time.Now()
	audio, err := s.speech.Synthesize(ctx, reply.Text)
	s.record(speechStep, start, err)
	if err != nil {
		return nil, fmt.Errorf("speech synthesis failed: %w", err)
	}
	log.Debug().
		Dur("elapsed", time.Since(start)).
		Int("audio_base64_length", len(audio)).
		Msg("Speech step finished")

	return &models.ChatResult{
		Reply:        reply.Text,
		AudioDataURI: AudioDataURIPrefix + audio,
	}, nil
}

func (s *Implementation) record(provider string, start time.Time, err error) {
	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = "error"
		if kind, ok := domain.KindOf(err); ok {
			outcome = strings.ToLower(string(kind))
		}
	}
	s.metrics.RecordUpstreamCall(provider, outcome, time.Since(start))
}
