package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-alerts-api/internal/application/alerts"
	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/infrastructure/excel"
	"github.com/jhoicas/stock-alerts-api/internal/infrastructure/metrics"
)

// AlertHandler expone el motor de alertas de stock bajo (protegido).
// El company_id del path debe coincidir con el del token: un usuario no
// consulta alertas de otra empresa aunque conozca el ID.
type AlertHandler struct {
	uc      *alerts.LowStockUseCase
	metrics *metrics.Metrics
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *alerts.LowStockUseCase, m *metrics.Metrics) *AlertHandler {
	return &AlertHandler{uc: uc, metrics: m}
}

func (h *AlertHandler) compute(c *fiber.Ctx) ([]alerts.AlertRecord, error) {
	companyID, err := strconv.ParseInt(c.Params("company_id"), 10, 64)
	if err != nil || companyID <= 0 {
		return nil, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "company_id debe ser un entero positivo"})
	}
	if companyID != GetCompanyID(c) {
		return nil, c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "alertas de otra empresa"})
	}
	asOf := time.Now().UTC()
	if raw := c.Query("as_of"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: "as_of debe ser RFC3339"})
		}
		asOf = parsed
	}
	records, err := h.uc.ComputeLowStockAlerts(c.UserContext(), companyID, asOf)
	if err != nil {
		h.metrics.IncAlertRun("error")
		return nil, mapDomainError(c, err)
	}
	h.metrics.IncAlertRun("ok")
	return records, nil
}

// GetLowStockAlerts godoc
// @Summary      Alertas de stock bajo de la empresa
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        company_id  path   int     true   "ID de la empresa"
// @Param        as_of       query  string  false  "Instante de evaluación (RFC3339)"
// @Success      200  {object}  dto.LowStockAlertsResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/alerts [get]
func (h *AlertHandler) GetLowStockAlerts(c *fiber.Ctx) error {
	records, err := h.compute(c)
	if records == nil {
		return err
	}
	return c.JSON(alerts.Project(records))
}

// ExportLowStockAlerts godoc
// @Summary      Exportar alertas de stock bajo a xlsx
// @Tags         alerts
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        company_id  path   int     true   "ID de la empresa"
// @Param        as_of       query  string  false  "Instante de evaluación (RFC3339)"
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/alerts/export [get]
func (h *AlertHandler) ExportLowStockAlerts(c *fiber.Ctx) error {
	records, err := h.compute(c)
	if records == nil {
		return err
	}
	data, exportErr := excel.ExportLowStockAlerts(records)
	if exportErr != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: "no se pudo generar el archivo"})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="alertas_stock_bajo.xlsx"`)
	return c.Send(data)
}
