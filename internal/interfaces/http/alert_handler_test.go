package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-alerts-api/internal/application/alerts"
	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
	"github.com/jhoicas/stock-alerts-api/internal/infrastructure/metrics"
	apphttp "github.com/jhoicas/stock-alerts-api/internal/interfaces/http"
)

type stubCompanyRepo struct {
	byID map[int64]*entity.Company
}

func (s *stubCompanyRepo) Create(_ context.Context, _ *entity.Company) error { return nil }

func (s *stubCompanyRepo) GetByID(_ context.Context, id int64) (*entity.Company, error) {
	return s.byID[id], nil
}

func (s *stubCompanyRepo) List(_ context.Context, _, _ int) ([]*entity.Company, error) {
	return nil, nil
}

type stubAlertRepo struct {
	candidates []repository.LowStockCandidate
}

func (s *stubAlertRepo) ListLowStockCandidates(_ context.Context, _ int64, _, _ time.Time) ([]repository.LowStockCandidate, error) {
	return s.candidates, nil
}

func buildAlertApp(candidates ...repository.LowStockCandidate) *fiber.App {
	companies := &stubCompanyRepo{byID: map[int64]*entity.Company{
		testCompanyID: {ID: testCompanyID, Name: "Acme"},
	}}
	uc := alerts.NewLowStockUseCase(companies, &stubAlertRepo{candidates: candidates})
	handler := apphttp.NewAlertHandler(uc, metrics.New(nil))

	app := fiber.New()
	app.Get("/api/companies/:company_id/alerts",
		apphttp.AuthMiddleware(testJWTSecret), handler.GetLowStockAlerts)
	app.Get("/api/companies/:company_id/alerts/export",
		apphttp.AuthMiddleware(testJWTSecret), handler.ExportLowStockAlerts)
	return app
}

func getAlerts(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", bearerToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestGetLowStockAlerts_RespuestaJSON(t *testing.T) {
	app := buildAlertApp(repository.LowStockCandidate{
		InventoryID: 1, ProductID: 5, ProductName: "Tornillo", SKU: "SCR-01",
		ReorderThreshold: 10, WarehouseID: 7, WarehouseName: "Central",
		Quantity: 5, TotalUsage: 15,
	})
	resp := getAlerts(t, app, "/api/companies/42/alerts")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.LowStockAlertsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.TotalAlerts)
	require.Len(t, body.Alerts, 1)
	assert.Equal(t, int64(5), body.Alerts[0].ProductID)
	require.NotNil(t, body.Alerts[0].DaysUntilStockout)
	assert.Equal(t, int64(10), *body.Alerts[0].DaysUntilStockout)
	assert.Nil(t, body.Alerts[0].Supplier)
}

func TestGetLowStockAlerts_SinAlertas(t *testing.T) {
	app := buildAlertApp()
	resp := getAlerts(t, app, "/api/companies/42/alerts")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.LowStockAlertsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 0, body.TotalAlerts)
	assert.NotNil(t, body.Alerts)
}

func TestGetLowStockAlerts_OtraEmpresa_Retorna403(t *testing.T) {
	// El token pertenece a la empresa 42; la 43 existe o no, da igual: el
	// tenant del path debe coincidir con el del token.
	app := buildAlertApp()
	resp := getAlerts(t, app, "/api/companies/43/alerts")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestGetLowStockAlerts_AsOfInvalido_Retorna400(t *testing.T) {
	app := buildAlertApp()
	resp := getAlerts(t, app, "/api/companies/42/alerts?as_of=ayer")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetLowStockAlerts_IDInvalido_Retorna400(t *testing.T) {
	app := buildAlertApp()
	resp := getAlerts(t, app, "/api/companies/abc/alerts")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetLowStockAlerts_SinToken_Retorna401(t *testing.T) {
	app := buildAlertApp()
	req := httptest.NewRequest(http.MethodGet, "/api/companies/42/alerts", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestExportLowStockAlerts_DevuelveXLSX(t *testing.T) {
	app := buildAlertApp(repository.LowStockCandidate{
		InventoryID: 1, ProductID: 5, ProductName: "Tornillo", SKU: "SCR-01",
		ReorderThreshold: 10, WarehouseID: 7, WarehouseName: "Central",
		Quantity: 5, TotalUsage: 15,
	})
	resp := getAlerts(t, app, "/api/companies/42/alerts/export")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), ".xlsx")
}
