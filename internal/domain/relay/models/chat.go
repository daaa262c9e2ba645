package models

// IncomingMessage is the body of POST /chat
type IncomingMessage struct {
	Message string `json:"message" validate:"required"`
}

// AssistantReply is the text produced by the completion step
type AssistantReply struct {
	Text string
}

// ChatResult is returned to the caller. AudioDataURI carries the complete
// data URI even though the wire name says base64.
type ChatResult struct {
	Reply        string `json:"reply"`
	AudioDataURI string `json:"audio_base64"`
}
