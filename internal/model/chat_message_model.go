package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one transcript line of an assistant conversation.
// Transcripts are append-only; there is no soft delete.
type ChatMessage struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ConversationId string     `gorm:"type:varchar(64);not null;index"`
	UserId         *uuid.UUID `gorm:"type:uuid;index"`
	Role           string     `gorm:"type:varchar(16);not null"`
	Content        string     `gorm:"type:text;not null"`
	Language       string     `gorm:"type:varchar(16)"`
	Intent         string     `gorm:"type:varchar(32)"`
	CreatedAt      time.Time  `gorm:"autoCreateTime;index"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
