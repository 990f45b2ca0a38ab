package controller

import (
	"strings"

	"github.com/maatalaayoub/L9ani-sub001/internal/dto"
	"github.com/maatalaayoub/L9ani-sub001/internal/pkg/serverutils"
	"github.com/maatalaayoub/L9ani-sub001/internal/service"
	"github.com/maatalaayoub/L9ani-sub001/pkg/lostfound"
	"github.com/maatalaayoub/L9ani-sub001/pkg/search"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IReportController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	Mine(ctx *fiber.Ctx) error
}

type reportController struct {
	reportService service.IReportService
}

func NewReportController(reportService service.IReportService) IReportController {
	return &reportController{
		reportService: reportService,
	}
}

func (c *reportController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/report/v1")
	h.Get("search", c.Search) // public: anyone can browse open reports
	h.Post("", serverutils.JwtMiddleware, c.Create)
	h.Get("mine", serverutils.JwtMiddleware, c.Mine)
}

func (c *reportController) Create(ctx *fiber.Ctx) error {
	userId, err := requireUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateReportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.reportService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create report", res))
}

func (c *reportController) Search(ctx *fiber.Ctx) error {
	var params lostfound.SearchParams
	if q := strings.TrimSpace(ctx.Query("q")); q != "" {
		// Free-text query, same pipeline the assistant uses.
		params = search.ParseQuery(q)
	} else {
		params = lostfound.SearchParams{
			Type: lostfound.ReportType(ctx.Query("type")),
			City: ctx.Query("city"),
		}
		if kw := strings.TrimSpace(ctx.Query("keywords")); kw != "" {
			params.Keywords = strings.Fields(strings.ToLower(kw))
		}
	}

	reports, total, err := c.reportService.Search(ctx.Context(), params)
	if err != nil {
		return err
	}

	res := dto.SearchReportsResponse{
		Total:   total,
		Reports: make([]dto.ReportResponse, 0, len(reports)),
	}
	for _, r := range reports {
		res.Reports = append(res.Reports, dto.ReportResponse{
			Id:          r.ID,
			Type:        string(r.Type),
			Title:       r.Title,
			Description: r.Description,
			City:        r.City,
			Status:      r.Status,
			CreatedAt:   r.CreatedAt,
		})
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search reports", res))
}

func (c *reportController) Mine(ctx *fiber.Ctx) error {
	userId, err := requireUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.reportService.Mine(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list reports", res))
}

// requireUserId reads the user id the JWT middleware set. A validly
// signed token may still carry a missing or malformed user_id claim.
func requireUserId(ctx *fiber.Ctx) (uuid.UUID, error) {
	userIdStr, ok := ctx.Locals("user_id").(string)
	if !ok {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID")
	}
	return userId, nil
}
