package controller

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/maatalaayoub/L9ani-sub001/internal/dto"
	"github.com/maatalaayoub/L9ani-sub001/pkg/lostfound"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeReportService struct {
	createdBy uuid.UUID
	createErr error
}

func (f *fakeReportService) Create(_ context.Context, userId uuid.UUID, _ *dto.CreateReportRequest) (*dto.CreateReportResponse, error) {
	f.createdBy = userId
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &dto.CreateReportResponse{Id: uuid.New()}, nil
}

func (f *fakeReportService) Search(_ context.Context, _ lostfound.SearchParams) ([]lostfound.Report, int64, error) {
	return nil, 0, nil
}

func (f *fakeReportService) ListByUser(_ context.Context, _ uuid.UUID) ([]lostfound.Report, error) {
	return nil, nil
}

func (f *fakeReportService) Mine(_ context.Context, _ uuid.UUID) ([]*dto.ReportResponse, error) {
	return []*dto.ReportResponse{}, nil
}

func newTestApp(svc *fakeReportService) *fiber.App {
	app := fiber.New()
	api := app.Group("/api")
	NewReportController(svc).RegisterRoutes(api)
	return app
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func postReport(app *fiber.App, token string) (int, error) {
	req := httptest.NewRequest("POST", "/api/report/v1", strings.NewReader(
		`{"type":"pet","title":"Lost dog","city":"rabat"}`,
	))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		return 0, err
	}
	return resp.StatusCode, nil
}

func TestCreateRejectsTokenWithoutUserIdClaim(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := &fakeReportService{}
	app := newTestApp(svc)

	token := signToken(t, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	code, err := postReport(app, token)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, code)
	assert.Equal(t, uuid.Nil, svc.createdBy, "no report must be created for a claimless token")
}

func TestCreateRejectsNonStringUserIdClaim(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := &fakeReportService{}
	app := newTestApp(svc)

	token := signToken(t, jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	code, err := postReport(app, token)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

func TestCreateRejectsMalformedUserIdClaim(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := &fakeReportService{}
	app := newTestApp(svc)

	token := signToken(t, jwt.MapClaims{
		"user_id": "not-a-uuid",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	code, err := postReport(app, token)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, code)
	assert.Equal(t, uuid.Nil, svc.createdBy, "no report must be owned by the zero UUID")
}

func TestCreateAcceptsValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := &fakeReportService{}
	app := newTestApp(svc)

	userId := uuid.New()
	token := signToken(t, jwt.MapClaims{
		"user_id": userId.String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	code, err := postReport(app, token)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, userId, svc.createdBy)
}

func TestMineRejectsTokenWithoutUserIdClaim(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newTestApp(&fakeReportService{})

	token := signToken(t, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/api/report/v1/mine", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestSearchStaysPublic(t *testing.T) {
	app := newTestApp(&fakeReportService{})

	req := httptest.NewRequest("GET", "/api/report/v1/search?q=lost+dog+casablanca", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
