package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/maatalaayoub/L9ani-sub001/internal/model"
	"github.com/maatalaayoub/L9ani-sub001/internal/pkg/logger"
	"github.com/maatalaayoub/L9ani-sub001/internal/pkg/mailer"
	"github.com/maatalaayoub/L9ani-sub001/internal/repository"
	"github.com/maatalaayoub/L9ani-sub001/internal/repository/memory"
	"github.com/maatalaayoub/L9ani-sub001/pkg/lostfound"
	"github.com/maatalaayoub/L9ani-sub001/pkg/events"
	pktNats "github.com/maatalaayoub/L9ani-sub001/pkg/nats" // Renamed to avoid collision

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification model.Notification)
	Broadcast(notification model.Notification)
}

type NotificationService struct {
	repo       repository.NotificationRepository
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	interests  *memory.InterestRepository
	mailer     mailer.IEmailService
	logger     logger.ILogger
}

func NewNotificationService(
	repo repository.NotificationRepository,
	sub *pktNats.Subscriber,
	delivery NotificationDelivery,
	interests *memory.InterestRepository,
	email mailer.IEmailService,
	log logger.ILogger,
) *NotificationService {
	return &NotificationService{
		repo:       repo,
		subscriber: sub,
		delivery:   delivery,
		interests:  interests,
		mailer:     email,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *NotificationService) Start() {
	// Subscribe to all events with a durable consumer
	err := s.subscriber.Subscribe("events.>", "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to events.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	// Strip "events." prefix from type if present (NATS subject includes stream name)
	typeCode := strings.TrimPrefix(event.EventType(), "events.")

	s.logger.Info("NotificationService", fmt.Sprintf("Processing event: %s", typeCode), map[string]interface{}{"type": typeCode})

	config, err := s.repo.GetNotificationTypeByCode(ctx, typeCode)
	if err != nil {
		// Unregistered events are fine; not everything produces a notification.
		s.logger.Warn("NotificationService", fmt.Sprintf("Config not found for code: '%s'", typeCode), map[string]interface{}{"error": err.Error()})
		return nil
	}
	if !config.IsActive {
		s.logger.Info("NotificationService", fmt.Sprintf("Notification type '%s' is inactive", typeCode), nil)
		return nil
	}

	// A freshly published report also goes to whoever recently searched
	// for something like it, over and above the SELF/BROADCAST target.
	if typeCode == "REPORT_CREATED" {
		s.notifyInterested(config, event)
	}

	// Broadcast = push only. Persisting one row per connected user does
	// not scale, and a missed broadcast is not worth keeping.
	if config.TargetType == "BROADCAST" {
		notif := s.buildNotification(uuid.Nil, config, event)
		if s.delivery != nil {
			s.delivery.Broadcast(notif)
		}
		return nil
	}

	// SELF: the event payload names its owner.
	userID, ok := payloadUserID(event)
	if !ok {
		s.logger.Warn("NotificationService", fmt.Sprintf("TargetType SELF but no user_id found in payload for event %s", typeCode), nil)
		return nil
	}

	notif := s.buildNotification(userID, config, event)
	if err := s.repo.CreateNotification(ctx, &notif); err != nil {
		s.logger.Error("NotificationService", fmt.Sprintf("Error saving notification for user %s", userID), map[string]interface{}{"error": err})
		return err // NATS will retry if we return error
	}

	if s.delivery != nil {
		s.delivery.Send(userID, notif)
	}

	// Report publication also confirms by email when the payload
	// carries an address.
	if typeCode == "REPORT_CREATED" && s.mailer != nil {
		if email, ok := event.Payload()["email"].(string); ok && email != "" {
			title, _ := event.Payload()["title"].(string)
			reportID, _ := event.Payload()["report_id"].(string)
			if err := s.mailer.SendReportConfirmation(email, title, reportID); err != nil {
				s.logger.Warn("NotificationService", "Failed to send confirmation email", map[string]interface{}{"error": err.Error()})
			}
		}
	}

	return nil
}

// notifyInterested pushes the new-report notification to users whose
// last search matches the report's type and city. Push-only, same
// reasoning as broadcasts: stale interest rows are not worth keeping.
func (s *NotificationService) notifyInterested(config *model.NotificationType, event events.Event) {
	if s.interests == nil || s.delivery == nil {
		return
	}
	payload := event.Payload()
	reportType, _ := payload["type"].(string)
	city, _ := payload["city"].(string)
	reporter, _ := payloadUserID(event)

	for _, uid := range s.interests.Matching(lostfound.ReportType(reportType), city) {
		if uid == reporter {
			continue
		}
		notif := s.buildNotification(uid, config, event)
		s.delivery.Send(uid, notif)
	}
}

func payloadUserID(event events.Event) (uuid.UUID, bool) {
	uidStr, ok := event.Payload()["user_id"].(string)
	if !ok || uidStr == "" {
		return uuid.Nil, false
	}
	uid, err := uuid.Parse(uidStr)
	if err != nil {
		return uuid.Nil, false
	}
	return uid, true
}

func (s *NotificationService) buildNotification(userID uuid.UUID, config *model.NotificationType, event events.Event) model.Notification {
	// Simple Template Engine
	msg := config.Template
	payload := event.Payload()

	for k, v := range payload {
		placeholder := fmt.Sprintf("{%s}", k)
		valStr := fmt.Sprintf("%v", v)
		msg = strings.ReplaceAll(msg, placeholder, valStr)
	}

	// Entity?
	entityType := ""
	var entityID *uuid.UUID

	if et, ok := payload["entity_type"].(string); ok {
		entityType = et
	}
	if eidStr, ok := payload["entity_id"].(string); ok {
		if eid, err := uuid.Parse(eidStr); err == nil {
			entityID = &eid
		}
	}

	// Metadata - enrich with action_url for deep linking
	metaMap := make(map[string]interface{})
	for k, v := range payload {
		metaMap[k] = v
	}
	if entityType != "" && entityID != nil {
		metaMap["action_url"] = fmt.Sprintf("/%ss/%s", entityType, entityID.String())
	}
	metaJSON, _ := json.Marshal(metaMap)

	return model.Notification{
		ID:         uuid.New(),
		UserID:     userID,
		TypeCode:   config.Code,
		Title:      config.DisplayName,
		Message:    msg,
		Metadata:   datatypes.JSON(metaJSON),
		EntityType: entityType,
		EntityID:   entityID,
		CreatedAt:  time.Now(),
		IsRead:     false,
	}
}

// GetNotifications fetches notifications for a user.
func (s *NotificationService) GetNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Notification, int64, error) {
	return s.repo.GetNotificationsByUserID(ctx, userID, limit, offset)
}

// GetUnreadCount fetches unread count.
func (s *NotificationService) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.GetUnreadCount(ctx, userID)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, notificationID uuid.UUID) error {
	return s.repo.MarkAsRead(ctx, notificationID)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}
