package dto

import (
	"time"

	"github.com/maatalaayoub/L9ani-sub001/pkg/assistant"

	"github.com/google/uuid"
)

type ChatRequest struct {
	ConversationId string                     `json:"conversation_id" validate:"required"`
	Message        string                     `json:"message,omitempty"`
	QuickReply     *assistant.QuickReplyInput `json:"quick_reply,omitempty"`
	// Context lets thin clients carry the conversation state themselves;
	// when present it wins over the server-side cache.
	Context *assistant.Context `json:"context,omitempty"`
}

type ChatResponse struct {
	ConversationId string                  `json:"conversation_id"`
	Reply          string                  `json:"reply"`
	QuickReplies   []assistant.QuickReply  `json:"quick_replies,omitempty"`
	Progress       string                  `json:"progress,omitempty"`
	Action         *assistant.ClientAction `json:"action,omitempty"`
	Language       string                  `json:"language"`
	Intent         string                  `json:"intent,omitempty"`
	Context        *assistant.Context      `json:"context"`
}

type ChatHistoryResponse struct {
	ConversationId string               `json:"conversation_id"`
	Messages       []ChatHistoryMessage `json:"messages"`
}

type ChatHistoryMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Language  string    `json:"language,omitempty"`
	Intent    string    `json:"intent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// PublishTranscriptMessage is the payload handed to the transcript
// consumer. Both sides of a turn are published, one message each.
type PublishTranscriptMessage struct {
	ConversationId string     `json:"conversation_id"`
	UserId         *uuid.UUID `json:"user_id,omitempty"`
	Role           string     `json:"role"` // user | assistant
	Content        string     `json:"content"`
	Language       string     `json:"language,omitempty"`
	Intent         string     `json:"intent,omitempty"`
}
