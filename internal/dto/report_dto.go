package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateReportRequest struct {
	Type        string            `json:"type" validate:"required"`
	Title       string            `json:"title" validate:"required"`
	Description string            `json:"description,omitempty"`
	City        string            `json:"city" validate:"required"`
	Language    string            `json:"language,omitempty"`
	Fields      map[string]string `json:"fields,omitempty"`
	// ContactEmail receives the publication confirmation when set.
	ContactEmail string `json:"contact_email,omitempty" validate:"omitempty,email"`
}

type CreateReportResponse struct {
	Id uuid.UUID `json:"id"`
}

type ReportResponse struct {
	Id          uuid.UUID         `json:"id"`
	Type        string            `json:"type"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	City        string            `json:"city"`
	Status      string            `json:"status"`
	Fields      map[string]string `json:"fields,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

type SearchReportsResponse struct {
	Total   int64            `json:"total"`
	Reports []ReportResponse `json:"reports"`
}
