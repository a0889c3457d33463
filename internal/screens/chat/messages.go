package chat

import (
	"time"

	"github.com/perchlabs/chirp/internal/conversation"
)

// greetingReadyMsg is sent when the conversation has started and the
// opening greeting is available.
type greetingReadyMsg struct {
	Resp *conversation.AIResponse
}

// replyReadyMsg is sent when a turn has been processed.
type replyReadyMsg struct {
	Resp *conversation.AIResponse
	Err  error
}

// spinnerTickMsg animates the "bird is thinking" indicator.
type spinnerTickMsg time.Time
