package entity

import "time"

// Motivos de un cambio de inventario.
const (
	ChangeReasonSale       = "sale"
	ChangeReasonRestock    = "restock"
	ChangeReasonAdjustment = "adjustment"
)

// InventoryChange entrada inmutable del log de inventario (inventory_logs).
// QuantityChange negativo = salida/consumo, positivo = entrada/reposición.
type InventoryChange struct {
	ID             int64
	ProductID      int64
	WarehouseID    *int64
	QuantityChange int64
	Reason         string
	CreatedAt      time.Time
}
