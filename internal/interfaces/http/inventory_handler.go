package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/pkg/logger"
)

// InventoryHandler maneja los ajustes de inventario.
type InventoryHandler struct {
	uc  StockAdjuster
	log *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc StockAdjuster, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, log: log}
}

// Adjust godoc
// @Summary      Ajustar stock
// @Description  Aplica quantity_change al inventario del producto en la bodega y lo registra en el historial.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "product_id, warehouse_id, quantity_change, reason (sale|restock|adjustment)"
// @Success      201   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjustments [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid JSON payload"})
	}

	out, err := h.uc.Adjust(c.UserContext(), in)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: verr.Message})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Inventory record not found"})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "Insufficient stock"})
		}
		h.log.Error().Err(err).Int64("product_id", in.ProductID).Msg("adjust stock")
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
