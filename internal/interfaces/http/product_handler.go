package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/application/usecase"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/pkg/logger"
)

// ProductHandler maneja el alta de productos.
type ProductHandler struct {
	uc  ProductCreator
	log *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc ProductCreator, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear producto con inventario inicial
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "sku, name, warehouse_id, stock_level (obligatorios)"
// @Success      201   {object}  dto.CreateProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /product [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var raw map[string]json.RawMessage
	if err := c.BodyParser(&raw); err != nil || len(raw) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid JSON payload"})
	}
	if msg := checkProductBody(raw); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msg})
	}

	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid JSON payload"})
	}

	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: verr.Message})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: fmt.Sprintf("Product with SKU '%s' already exists.", *in.SKU),
			})
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: "Database integrity error. A product with this SKU may have just been created.",
			})
		}
		h.log.Error().Err(err).Msg("create product")
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

var requiredProductFields = []string{"sku", "name", "warehouse_id", "stock_level"}

// checkProductBody verifica presencia y tipos JSON sobre el cuerpo crudo. Un campo presente con null o con
// tipo incorrecto cuenta como presente: primero se reportan los ausentes, luego el primer campo inválido
// según usecase.ProductFieldOrder. Devuelve "" si el cuerpo es decodificable en CreateProductRequest.
func checkProductBody(raw map[string]json.RawMessage) string {
	var missing []string
	for _, field := range requiredProductFields {
		if _, ok := raw[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return "Missing required fields: " + strings.Join(missing, ", ")
	}

	for _, field := range usecase.ProductFieldOrder {
		value, present := raw[field]
		if !present {
			continue
		}
		var ok bool
		switch field {
		case "stock_level":
			n, isInt := jsonInt(value)
			ok = isInt && n >= 0
		case "warehouse_id":
			_, ok = jsonInt(value)
		case "sku", "name":
			ok = jsonString(value)
		case "description":
			ok = isJSONNull(value) || jsonString(value)
		default:
			_, isInt := jsonInt(value)
			ok = isJSONNull(value) || isInt
		}
		if !ok {
			return usecase.ProductFieldMessage(field)
		}
	}
	return ""
}

func jsonInt(v json.RawMessage) (int64, bool) {
	var n *int64
	if err := json.Unmarshal(v, &n); err != nil || n == nil {
		return 0, false
	}
	return *n, true
}

func jsonString(v json.RawMessage) bool {
	var s *string
	return json.Unmarshal(v, &s) == nil && s != nil
}

func isJSONNull(v json.RawMessage) bool {
	return string(bytes.TrimSpace(v)) == "null"
}
