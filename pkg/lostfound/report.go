package lostfound

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrUnknownReportType is returned when a category string is not one of
// the supported report types.
var ErrUnknownReportType = errors.New("unknown report type")

// ReportType identifies one of the supported report categories.
type ReportType string

const (
	TypePerson      ReportType = "person"
	TypePet         ReportType = "pet"
	TypeDocument    ReportType = "document"
	TypeElectronics ReportType = "electronics"
	TypeVehicle     ReportType = "vehicle"
	TypeOther       ReportType = "other"
)

// AllTypes lists every supported category in display order.
func AllTypes() []ReportType {
	return []ReportType{TypePerson, TypePet, TypeDocument, TypeElectronics, TypeVehicle, TypeOther}
}

func (t ReportType) Valid() bool {
	switch t {
	case TypePerson, TypePet, TypeDocument, TypeElectronics, TypeVehicle, TypeOther:
		return true
	}
	return false
}

// Report is the candidate record the engine ranks and formats.
// Persistence details live behind the report store; this is the
// read-side shape the search pipeline works with.
type Report struct {
	ID          uuid.UUID  `json:"id"`
	Type        ReportType `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	City        string     `json:"city"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

// SearchParams is the structured form of a free-text search query.
type SearchParams struct {
	Type     ReportType `json:"report_type,omitempty"`
	City     string     `json:"city,omitempty"`
	Keywords []string   `json:"keywords"`
}

// IsZero reports whether no filter at all was extracted.
func (p SearchParams) IsZero() bool {
	return p.Type == "" && p.City == "" && len(p.Keywords) == 0
}

// SearchResult pairs a candidate report with its relevance score.
type SearchResult struct {
	Report         Report  `json:"report"`
	RelevanceScore float32 `json:"relevance_score"`
}
