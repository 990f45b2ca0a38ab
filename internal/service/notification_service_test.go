package service

import (
	"context"
	"testing"
	"time"

	"github.com/maatalaayoub/L9ani-sub001/internal/model"
	"github.com/maatalaayoub/L9ani-sub001/internal/repository/memory"
	"github.com/maatalaayoub/L9ani-sub001/pkg/events"
	"github.com/maatalaayoub/L9ani-sub001/pkg/lostfound"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeNotifRepo struct {
	types map[string]*model.NotificationType
	saved []model.Notification
}

func newFakeNotifRepo() *fakeNotifRepo {
	types := make(map[string]*model.NotificationType)
	for _, t := range model.DefaultNotificationTypes() {
		registered := t
		types[t.Code] = &registered
	}
	return &fakeNotifRepo{types: types}
}

func (f *fakeNotifRepo) CreateNotification(_ context.Context, n *model.Notification) error {
	f.saved = append(f.saved, *n)
	return nil
}

func (f *fakeNotifRepo) GetNotificationsByUserID(_ context.Context, _ uuid.UUID, _, _ int) ([]model.Notification, int64, error) {
	return f.saved, int64(len(f.saved)), nil
}

func (f *fakeNotifRepo) GetUnreadCount(_ context.Context, _ uuid.UUID) (int64, error) {
	return int64(len(f.saved)), nil
}

func (f *fakeNotifRepo) MarkAsRead(_ context.Context, _ uuid.UUID) error { return nil }

func (f *fakeNotifRepo) MarkAllAsRead(_ context.Context, _ uuid.UUID) error { return nil }

func (f *fakeNotifRepo) GetNotificationTypeByCode(_ context.Context, code string) (*model.NotificationType, error) {
	t, ok := f.types[code]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

type fakeDelivery struct {
	sent       map[uuid.UUID][]model.Notification
	broadcasts []model.Notification
}

func newFakeDelivery() *fakeDelivery {
	return &fakeDelivery{sent: make(map[uuid.UUID][]model.Notification)}
}

func (f *fakeDelivery) Send(userID uuid.UUID, n model.Notification) {
	f.sent[userID] = append(f.sent[userID], n)
}

func (f *fakeDelivery) Broadcast(n model.Notification) {
	f.broadcasts = append(f.broadcasts, n)
}

type fakeMailer struct {
	to    string
	title string
	id    string
	calls int
}

func (f *fakeMailer) SendReportConfirmation(toEmail, reportTitle, reportID string) error {
	f.to, f.title, f.id = toEmail, reportTitle, reportID
	f.calls++
	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }

func reportCreatedEvent(userID uuid.UUID, extra map[string]interface{}) events.BaseEvent {
	data := map[string]interface{}{
		"report_id": uuid.New().String(),
		"user_id":   userID.String(),
		"type":      "pet",
		"title":     "Lost dog",
		"city":      "casablanca",
	}
	for k, v := range extra {
		data[k] = v
	}
	return events.BaseEvent{Type: "REPORT_CREATED", Data: data, OccurredAt: time.Now()}
}

func TestReportCreatedPersistsAndSendsEmail(t *testing.T) {
	repo := newFakeNotifRepo()
	delivery := newFakeDelivery()
	mail := &fakeMailer{}
	interests := memory.NewInterestRepository()
	svc := NewNotificationService(repo, nil, delivery, interests, mail, noopLogger{})

	reporter := uuid.New()
	evt := reportCreatedEvent(reporter, map[string]interface{}{"email": "sara@example.ma"})

	err := svc.handleEvent(context.Background(), evt)
	assert.NoError(t, err)

	if assert.Len(t, repo.saved, 1) {
		assert.Equal(t, reporter, repo.saved[0].UserID)
		assert.Contains(t, repo.saved[0].Message, "Lost dog")
	}
	assert.Len(t, delivery.sent[reporter], 1)

	assert.Equal(t, 1, mail.calls)
	assert.Equal(t, "sara@example.ma", mail.to)
	assert.Equal(t, "Lost dog", mail.title)
}

func TestReportCreatedWithoutEmailSkipsMailer(t *testing.T) {
	repo := newFakeNotifRepo()
	mail := &fakeMailer{}
	svc := NewNotificationService(repo, nil, newFakeDelivery(), memory.NewInterestRepository(), mail, noopLogger{})

	err := svc.handleEvent(context.Background(), reportCreatedEvent(uuid.New(), nil))
	assert.NoError(t, err)
	assert.Len(t, repo.saved, 1)
	assert.Equal(t, 0, mail.calls)
}

func TestReportCreatedNotifiesMatchingSearchers(t *testing.T) {
	repo := newFakeNotifRepo()
	delivery := newFakeDelivery()
	interests := memory.NewInterestRepository()
	svc := NewNotificationService(repo, nil, delivery, interests, &fakeMailer{}, noopLogger{})

	searcher := uuid.New()
	elsewhere := uuid.New()
	reporter := uuid.New()
	interests.Save(searcher, lostfound.SearchParams{Type: lostfound.TypePet, City: "casablanca"})
	interests.Save(elsewhere, lostfound.SearchParams{Type: lostfound.TypePet, City: "rabat"})
	interests.Save(reporter, lostfound.SearchParams{Type: lostfound.TypePet})

	err := svc.handleEvent(context.Background(), reportCreatedEvent(reporter, nil))
	assert.NoError(t, err)

	assert.Len(t, delivery.sent[searcher], 1, "matching searcher gets a push")
	assert.Empty(t, delivery.sent[elsewhere], "city mismatch gets nothing")

	// The reporter's own SELF notification, not an interest push.
	assert.Len(t, delivery.sent[reporter], 1)
	assert.Len(t, repo.saved, 1, "interest pushes are not persisted")
}

func TestUnregisteredEventIsDropped(t *testing.T) {
	repo := newFakeNotifRepo()
	delivery := newFakeDelivery()
	svc := NewNotificationService(repo, nil, delivery, memory.NewInterestRepository(), &fakeMailer{}, noopLogger{})

	evt := events.BaseEvent{Type: "SOMETHING_ELSE", Data: map[string]interface{}{}, OccurredAt: time.Now()}
	err := svc.handleEvent(context.Background(), evt)
	assert.NoError(t, err)
	assert.Empty(t, repo.saved)
	assert.Empty(t, delivery.sent)
}

func TestBroadcastIsPushOnly(t *testing.T) {
	repo := newFakeNotifRepo()
	delivery := newFakeDelivery()
	svc := NewNotificationService(repo, nil, delivery, memory.NewInterestRepository(), &fakeMailer{}, noopLogger{})

	evt := events.BaseEvent{
		Type:       "SYSTEM_BROADCAST",
		Data:       map[string]interface{}{"title": "Maintenance", "message": "Back at noon"},
		OccurredAt: time.Now(),
	}
	err := svc.handleEvent(context.Background(), evt)
	assert.NoError(t, err)
	assert.Len(t, delivery.broadcasts, 1)
	assert.Empty(t, repo.saved)
}

func TestDefaultRegistryCoversPublishedEvents(t *testing.T) {
	byCode := make(map[string]model.NotificationType)
	for _, t2 := range model.DefaultNotificationTypes() {
		byCode[t2.Code] = t2
	}

	// Every code the services publish must be registered and active.
	for _, code := range []string{"REPORT_CREATED", "REPORT_DRAFT_COMPLETED", "SYSTEM_BROADCAST"} {
		reg, ok := byCode[code]
		if assert.True(t, ok, code) {
			assert.True(t, reg.IsActive, code)
			assert.NotEmpty(t, reg.Template, code)
		}
	}
}
