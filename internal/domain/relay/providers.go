package relay

import (
	"context"

	"github.com/deepgram/voicerelay/internal/domain/relay/models"
)

// CompletionProvider turns a user message into a short assistant reply
type CompletionProvider interface {
	Complete(ctx context.Context, message string) (*models.AssistantReply, error)
}

// SpeechProvider synthesizes text and returns the raw base64 MP3 payload
type SpeechProvider interface {
	Synthesize(ctx context.Context, text string) (string, error)
}
