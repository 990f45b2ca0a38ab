package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/maatalaayoub/L9ani-sub001/internal/dto"
	"github.com/maatalaayoub/L9ani-sub001/internal/pkg/logger"
	"github.com/maatalaayoub/L9ani-sub001/internal/repository/memory"
	"github.com/maatalaayoub/L9ani-sub001/internal/repository/specification"
	"github.com/maatalaayoub/L9ani-sub001/internal/repository/unitofwork"
	"github.com/maatalaayoub/L9ani-sub001/pkg/assistant"
	"github.com/maatalaayoub/L9ani-sub001/pkg/events"
	pktNats "github.com/maatalaayoub/L9ani-sub001/pkg/nats"

	"github.com/google/uuid"
)

type IAssistantService interface {
	Chat(ctx context.Context, userId *uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error)
	History(ctx context.Context, conversationId string) (*dto.ChatHistoryResponse, error)
}

type assistantService struct {
	orchestrator     *assistant.Orchestrator
	contexts         *memory.ContextRepository
	interests        *memory.InterestRepository
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
}

func NewAssistantService(
	orchestrator *assistant.Orchestrator,
	contexts *memory.ContextRepository,
	interests *memory.InterestRepository,
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IAssistantService {
	return &assistantService{
		orchestrator:     orchestrator,
		contexts:         contexts,
		interests:        interests,
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

func (c *assistantService) Chat(ctx context.Context, userId *uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	state := assistant.Context{}
	if req.Context != nil {
		state = *req.Context
	} else if saved, found := c.contexts.Get(req.ConversationId); found {
		state = *saved
	}

	turn := assistant.Turn{
		Message:    req.Message,
		QuickReply: req.QuickReply,
		UserID:     userId,
	}

	next, reply, err := c.orchestrator.HandleTurn(ctx, state, turn)
	if err != nil {
		c.logger.Error("AssistantService", "Turn failed", map[string]interface{}{
			"conversation_id": req.ConversationId,
			"error":           err.Error(),
		})
		return nil, err
	}

	c.contexts.Save(req.ConversationId, &next)

	// Signed-in users searching for something get pinged when a
	// matching report is published later.
	if userId != nil && c.interests != nil && next.Mode == assistant.ModeSearch && next.Search != nil {
		c.interests.Save(*userId, next.Search.LastParams)
	}

	c.publishTranscript(ctx, req.ConversationId, userId, "user", userMessageText(req), string(next.Language), reply.Intent)
	c.publishTranscript(ctx, req.ConversationId, userId, "assistant", reply.Text, string(next.Language), "")

	// A finished draft is handed to the client for confirmation; the
	// event lets the rest of the platform react (metrics, follow-up).
	if reply.Action != nil && reply.Action.Type == "navigate_with_data" && c.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "REPORT_DRAFT_COMPLETED",
			Data: map[string]interface{}{
				"conversation_id": req.ConversationId,
				"report_type":     reply.Action.Params["reportType"],
				"user_id":         userIdString(userId),
			},
			OccurredAt: time.Now(),
		}
		if err := c.eventPublisher.Publish(ctx, evt); err != nil {
			c.logger.Warn("AssistantService", "Failed to publish REPORT_DRAFT_COMPLETED", map[string]interface{}{"error": err.Error()})
		}
	}

	return &dto.ChatResponse{
		ConversationId: req.ConversationId,
		Reply:          reply.Text,
		QuickReplies:   reply.QuickReplies,
		Progress:       reply.Progress,
		Action:         reply.Action,
		Language:       string(next.Language),
		Intent:         reply.Intent,
		Context:        &next,
	}, nil
}

func (c *assistantService) History(ctx context.Context, conversationId string) (*dto.ChatHistoryResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: conversationId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.ChatHistoryResponse{
		ConversationId: conversationId,
		Messages:       make([]dto.ChatHistoryMessage, 0, len(messages)),
	}
	for _, m := range messages {
		res.Messages = append(res.Messages, dto.ChatHistoryMessage{
			Role:      m.Role,
			Content:   m.Content,
			Language:  m.Language,
			Intent:    m.Intent,
			CreatedAt: m.CreatedAt,
		})
	}
	return res, nil
}

// publishTranscript hands one side of the turn to the async consumer.
// Transcript persistence is best-effort and never blocks the reply.
func (c *assistantService) publishTranscript(ctx context.Context, conversationId string, userId *uuid.UUID, role, content, lang, intent string) {
	if content == "" {
		return
	}
	payload := dto.PublishTranscriptMessage{
		ConversationId: conversationId,
		UserId:         userId,
		Role:           role,
		Content:        content,
		Language:       lang,
		Intent:         intent,
	}
	msgJson, err := json.Marshal(payload)
	if err != nil {
		c.logger.Error("AssistantService", "Failed to marshal transcript message", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := c.publisherService.Publish(ctx, msgJson); err != nil {
		c.logger.Warn("AssistantService", "Failed to publish transcript message", map[string]interface{}{"error": err.Error()})
	}
}

func userMessageText(req *dto.ChatRequest) string {
	if req.QuickReply != nil {
		if req.QuickReply.Data != "" {
			return req.QuickReply.Data
		}
		return req.QuickReply.Action
	}
	return req.Message
}

func userIdString(userId *uuid.UUID) string {
	if userId == nil {
		return ""
	}
	return userId.String()
}
