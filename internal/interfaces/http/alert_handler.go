package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/pkg/logger"
)

// AlertHandler expone las alertas de stock bajo.
type AlertHandler struct {
	uc  LowStockEvaluator
	log *logger.Logger
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc LowStockEvaluator, log *logger.Logger) *AlertHandler {
	return &AlertHandler{uc: uc, log: log}
}

// LowStock godoc
// @Summary      Alertas de stock bajo
// @Description  Productos en o bajo su umbral con ventas en los últimos 30 días, con días estimados hasta agotarse.
// @Tags         alerts
// @Produce      json
// @Param        companyId  path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.LowStockReport
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId}/alerts/low-stock [get]
func (h *AlertHandler) LowStock(c *fiber.Ctx) error {
	companyID, err := strconv.ParseInt(c.Params("companyId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid company id"})
	}

	report, err := h.uc.Evaluate(c.UserContext(), companyID)
	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Company not found"})
		}
		h.log.Error().Err(err).Int64("company_id", companyID).Msg("low-stock alerts")
		return internalError(c)
	}
	return c.JSON(report)
}
