package relay

import (
	"context"

	"github.com/deepgram/voicerelay/internal/domain/relay/models"
)

// AudioDataURIPrefix marks the synthesized payload as inline MP3
const AudioDataURIPrefix = "data:audio/mp3;base64,"

// Service defines the interface for the chat relay
type Service interface {
	// HandleChat produces a reply and its synthesized audio for one message
	HandleChat(ctx context.Context, input models.IncomingMessage) (*models.ChatResult, error)
}
