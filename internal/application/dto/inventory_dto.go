package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
)

// AdjustStockRequest body para POST /api/inventory/adjustments.
// QuantityChange negativo registra una salida (venta/consumo), positivo una reposición.
type AdjustStockRequest struct {
	ProductID      int64  `json:"product_id"`
	WarehouseID    int64  `json:"warehouse_id"`
	QuantityChange int64  `json:"quantity_change"`
	Reason         string `json:"reason,omitempty"`
}

// Validate reglas de valor del ajuste.
func (r *AdjustStockRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ProductID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.WarehouseID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.QuantityChange, validation.Required),
		validation.Field(&r.Reason, validation.In(
			entity.ChangeReasonSale, entity.ChangeReasonRestock, entity.ChangeReasonAdjustment,
		)),
	)
}

// InventoryResponse estado del inventario tras un ajuste.
type InventoryResponse struct {
	ProductID    int64 `json:"product_id"`
	WarehouseID  int64 `json:"warehouse_id"`
	CurrentStock int64 `json:"current_stock"`
}
