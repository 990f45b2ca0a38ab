package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByReportType struct {
	Type string
}

func (s ByReportType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("type = ?", s.Type)
}

type ByCity struct {
	City string
}

func (s ByCity) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(city) = LOWER(?)", s.City)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type ReportOwnedByUser struct {
	UserID uuid.UUID
}

func (s ReportOwnedByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("reports.user_id = ?", s.UserID)
}

// KeywordLike matches any of the keywords against title or description,
// case-insensitively. No keywords means no constraint.
type KeywordLike struct {
	Keywords []string
}

func (s KeywordLike) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Keywords) == 0 {
		return db
	}
	conditions := db.Session(&gorm.Session{NewDB: true})
	for _, kw := range s.Keywords {
		pattern := "%" + kw + "%"
		conditions = conditions.Or("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	return db.Where(conditions)
}

type ByConversationID struct {
	ConversationID string
}

func (s ByConversationID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("conversation_id = ?", s.ConversationID)
}
