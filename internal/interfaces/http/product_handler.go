package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/application/inventory"
	"github.com/jhoicas/stock-alerts-api/internal/application/usecase"
	"github.com/jhoicas/stock-alerts-api/internal/infrastructure/metrics"
)

// ProductHandler maneja las peticiones HTTP para productos (protegido).
// La creación delega en el caso de uso transaccional; las lecturas en el
// lado de consulta del catálogo.
type ProductHandler struct {
	createUC *inventory.CreateProductUseCase
	readUC   *usecase.ProductUseCase
	metrics  *metrics.Metrics
}

// NewProductHandler construye el handler.
func NewProductHandler(createUC *inventory.CreateProductUseCase, readUC *usecase.ProductUseCase, m *metrics.Metrics) *ProductHandler {
	return &ProductHandler{createUC: createUC, readUC: readUC, metrics: m}
}

// Create godoc
// @Summary      Crear producto con stock inicial opcional
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.CreateProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		// Un price no numérico cae aquí: entrada inválida, no error interno.
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: "cuerpo inválido"})
	}
	productID, err := h.createUC.CreateProductWithStock(c.UserContext(), inventory.CreateProductInput{
		Name:             in.Name,
		SKU:              in.SKU,
		Price:            in.Price,
		ReorderThreshold: in.ReorderThreshold,
		WarehouseID:      in.WarehouseID,
		InitialQuantity:  in.InitialQuantity,
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	h.metrics.IncProductCreated()
	return c.Status(fiber.StatusCreated).JSON(dto.CreateProductResponse{
		Message:   "Producto creado exitosamente",
		ProductID: productID,
	})
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero positivo"})
	}
	out, err := h.readUC.GetByID(c.UserContext(), id)
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.readUC.List(c.UserContext(), page)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}
