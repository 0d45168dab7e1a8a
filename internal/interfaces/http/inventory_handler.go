package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/application/inventory"
	"github.com/jhoicas/stock-alerts-api/internal/infrastructure/metrics"
)

// InventoryHandler maneja los movimientos de stock (protegido).
type InventoryHandler struct {
	uc      *inventory.RegisterMovementUseCase
	metrics *metrics.Metrics
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.RegisterMovementUseCase, m *metrics.Metrics) *InventoryHandler {
	return &InventoryHandler{uc: uc, metrics: m}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de stock
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Movimiento (change_amount negativo = salida)"
// @Success      200   {object}  dto.RegisterMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegisterMovement(c.UserContext(), inventory.MovementInput{
		CompanyID:    GetCompanyID(c),
		ProductID:    in.ProductID,
		WarehouseID:  in.WarehouseID,
		ChangeAmount: in.ChangeAmount,
		Reason:       in.Reason,
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	h.metrics.IncMovement()
	return c.JSON(dto.RegisterMovementResponse{
		InventoryID:   out.InventoryID,
		Quantity:      out.Quantity,
		TransactionID: out.TransactionID,
	})
}
