package entity

import "time"

// InventoryRecord cantidad actual de un producto en una bodega. Hay un único registro por (producto, bodega)
// y CurrentStock nunca es negativo.
type InventoryRecord struct {
	ID           int64
	ProductID    int64
	WarehouseID  int64
	CurrentStock int64
	UpdatedAt    time.Time
}
