package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ConversationId string
	UserId         *uuid.UUID
	Role           string
	Content        string
	Language       string
	Intent         string
	CreatedAt      time.Time
}
