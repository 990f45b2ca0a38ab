package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Report struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      *uuid.UUID     `gorm:"type:uuid;index"`
	Type        string         `gorm:"type:varchar(32);not null;index"`
	Title       string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text"`
	City        string         `gorm:"type:varchar(64);index"`
	Status      string         `gorm:"type:varchar(32);not null;default:'open';index"`
	Language    string         `gorm:"type:varchar(16)"`
	Fields      datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Report) TableName() string {
	return "reports"
}
