package entity

import (
	"time"

	"github.com/google/uuid"
)

type Report struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId      *uuid.UUID
	Type        string
	Title       string
	Description string
	City        string
	Status      string
	Language    string
	Fields      map[string]string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
	IsDeleted   bool
}
