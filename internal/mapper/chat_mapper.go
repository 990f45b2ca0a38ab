package mapper

import (
	"github.com/maatalaayoub/L9ani-sub001/internal/entity"
	"github.com/maatalaayoub/L9ani-sub001/internal/model"
)

type ChatMessageMapper struct{}

func NewChatMessageMapper() *ChatMessageMapper {
	return &ChatMessageMapper{}
}

func (m *ChatMessageMapper) ToEntity(c *model.ChatMessage) *entity.ChatMessage {
	if c == nil {
		return nil
	}
	return &entity.ChatMessage{
		Id:             c.Id,
		ConversationId: c.ConversationId,
		UserId:         c.UserId,
		Role:           c.Role,
		Content:        c.Content,
		Language:       c.Language,
		Intent:         c.Intent,
		CreatedAt:      c.CreatedAt,
	}
}

func (m *ChatMessageMapper) ToModel(c *entity.ChatMessage) *model.ChatMessage {
	if c == nil {
		return nil
	}
	return &model.ChatMessage{
		Id:             c.Id,
		ConversationId: c.ConversationId,
		UserId:         c.UserId,
		Role:           c.Role,
		Content:        c.Content,
		Language:       c.Language,
		Intent:         c.Intent,
		CreatedAt:      c.CreatedAt,
	}
}

func (m *ChatMessageMapper) ToEntities(messages []*model.ChatMessage) []*entity.ChatMessage {
	entities := make([]*entity.ChatMessage, len(messages))
	for i, c := range messages {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
