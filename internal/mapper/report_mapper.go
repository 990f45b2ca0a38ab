package mapper

import (
	"encoding/json"
	"time"

	"github.com/maatalaayoub/L9ani-sub001/internal/entity"
	"github.com/maatalaayoub/L9ani-sub001/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ReportMapper struct{}

func NewReportMapper() *ReportMapper {
	return &ReportMapper{}
}

func (m *ReportMapper) ToEntity(r *model.Report) *entity.Report {
	if r == nil {
		return nil
	}

	var deletedAt *time.Time
	if r.DeletedAt.Valid {
		t := r.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !r.UpdatedAt.IsZero() {
		t := r.UpdatedAt
		updatedAt = &t
	}

	fields := map[string]string{}
	if len(r.Fields) > 0 {
		// Corrupt JSON leaves the fields empty rather than failing the read.
		_ = json.Unmarshal(r.Fields, &fields)
	}

	return &entity.Report{
		Id:          r.Id,
		UserId:      r.UserId,
		Type:        r.Type,
		Title:       r.Title,
		Description: r.Description,
		City:        r.City,
		Status:      r.Status,
		Language:    r.Language,
		Fields:      fields,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
		IsDeleted:   r.DeletedAt.Valid,
	}
}

func (m *ReportMapper) ToModel(r *entity.Report) *model.Report {
	if r == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if r.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *r.DeletedAt, Valid: true}
	} else if r.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if r.UpdatedAt != nil {
		updatedAt = *r.UpdatedAt
	}

	var fields datatypes.JSON
	if len(r.Fields) > 0 {
		raw, _ := json.Marshal(r.Fields)
		fields = datatypes.JSON(raw)
	}

	return &model.Report{
		Id:          r.Id,
		UserId:      r.UserId,
		Type:        r.Type,
		Title:       r.Title,
		Description: r.Description,
		City:        r.City,
		Status:      r.Status,
		Language:    r.Language,
		Fields:      fields,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
	}
}

func (m *ReportMapper) ToEntities(reports []*model.Report) []*entity.Report {
	entities := make([]*entity.Report, len(reports))
	for i, r := range reports {
		entities[i] = m.ToEntity(r)
	}
	return entities
}

func (m *ReportMapper) ToModels(reports []*entity.Report) []*model.Report {
	models := make([]*model.Report, len(reports))
	for i, r := range reports {
		models[i] = m.ToModel(r)
	}
	return models
}
