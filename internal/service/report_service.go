package service

import (
	"context"
	"time"

	"github.com/maatalaayoub/L9ani-sub001/internal/dto"
	"github.com/maatalaayoub/L9ani-sub001/internal/entity"
	"github.com/maatalaayoub/L9ani-sub001/internal/pkg/logger"
	"github.com/maatalaayoub/L9ani-sub001/internal/repository/specification"
	"github.com/maatalaayoub/L9ani-sub001/internal/repository/unitofwork"
	"github.com/maatalaayoub/L9ani-sub001/pkg/events"
	"github.com/maatalaayoub/L9ani-sub001/pkg/lostfound"
	pktNats "github.com/maatalaayoub/L9ani-sub001/pkg/nats"

	"github.com/google/uuid"
)

type IReportService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateReportRequest) (*dto.CreateReportResponse, error)
	Search(ctx context.Context, params lostfound.SearchParams) ([]lostfound.Report, int64, error)
	ListByUser(ctx context.Context, userId uuid.UUID) ([]lostfound.Report, error)
	Mine(ctx context.Context, userId uuid.UUID) ([]*dto.ReportResponse, error)
}

type reportService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewReportService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IReportService {
	return &reportService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (c *reportService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateReportRequest) (*dto.CreateReportResponse, error) {
	if !lostfound.ReportType(req.Type).Valid() {
		return nil, lostfound.ErrUnknownReportType
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	report := entity.Report{
		Id:          uuid.New(),
		UserId:      &userId,
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		City:        req.City,
		Status:      "open",
		Language:    req.Language,
		Fields:      req.Fields,
		CreatedAt:   time.Now(),
	}

	if err := uow.ReportRepository().Create(ctx, &report); err != nil {
		c.logger.Error("ReportService", "Failed to create report", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	if c.eventPublisher != nil {
		data := map[string]interface{}{
			"report_id":   report.Id.String(),
			"user_id":     userId.String(),
			"type":        report.Type,
			"title":       report.Title,
			"city":        report.City,
			"entity_type": "report",
			"entity_id":   report.Id.String(),
		}
		if req.ContactEmail != "" {
			data["email"] = req.ContactEmail
		}
		evt := events.BaseEvent{
			Type:       "REPORT_CREATED",
			Data:       data,
			OccurredAt: time.Now(),
		}
		if err := c.eventPublisher.Publish(ctx, evt); err != nil {
			// The report is saved; a lost event only costs a notification.
			c.logger.Warn("ReportService", "Failed to publish REPORT_CREATED", map[string]interface{}{"error": err.Error()})
		}
	}

	return &dto.CreateReportResponse{Id: report.Id}, nil
}

// Search retrieves open reports matching the structured parameters,
// newest first. Relevance ordering happens upstream in the ranker.
func (c *reportService) Search(ctx context.Context, params lostfound.SearchParams) ([]lostfound.Report, int64, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.ByStatus{Status: "open"},
	}
	if params.Type != "" {
		specs = append(specs, specification.ByReportType{Type: string(params.Type)})
	}
	if params.City != "" {
		specs = append(specs, specification.ByCity{City: params.City})
	}
	if len(params.Keywords) > 0 {
		specs = append(specs, specification.KeywordLike{Keywords: params.Keywords})
	}

	total, err := uow.ReportRepository().Count(ctx, specs...)
	if err != nil {
		return nil, 0, err
	}

	specs = append(specs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: 50, Offset: 0},
	)
	found, err := uow.ReportRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, 0, err
	}

	return toDomainReports(found), total, nil
}

func (c *reportService) ListByUser(ctx context.Context, userId uuid.UUID) ([]lostfound.Report, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	found, err := uow.ReportRepository().FindAll(ctx,
		specification.ReportOwnedByUser{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return toDomainReports(found), nil
}

func (c *reportService) Mine(ctx context.Context, userId uuid.UUID) ([]*dto.ReportResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	found, err := uow.ReportRepository().FindAll(ctx,
		specification.ReportOwnedByUser{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ReportResponse, 0, len(found))
	for _, r := range found {
		res = append(res, &dto.ReportResponse{
			Id:          r.Id,
			Type:        r.Type,
			Title:       r.Title,
			Description: r.Description,
			City:        r.City,
			Status:      r.Status,
			Fields:      r.Fields,
			CreatedAt:   r.CreatedAt,
		})
	}
	return res, nil
}

func toDomainReports(found []*entity.Report) []lostfound.Report {
	reports := make([]lostfound.Report, 0, len(found))
	for _, r := range found {
		reports = append(reports, lostfound.Report{
			ID:          r.Id,
			Type:        lostfound.ReportType(r.Type),
			Title:       r.Title,
			Description: r.Description,
			City:        r.City,
			Status:      r.Status,
			CreatedAt:   r.CreatedAt,
		})
	}
	return reports
}
