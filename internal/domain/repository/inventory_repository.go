package repository

import (
	"context"
	"time"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
)

// LowStockItem fila cruda del escaneo de stock bajo: inventario + producto + bodega + proveedor opcional.
type LowStockItem struct {
	Product   entity.Product
	Inventory entity.InventoryRecord
	Warehouse entity.Warehouse
	Supplier  *entity.Supplier // nil si el producto no tiene proveedor
}

// InventoryRepository define el puerto para el stock actual por producto y bodega (DIP).
type InventoryRepository interface {
	// ListLowStock devuelve cada registro de inventario en bodegas de la empresa con
	// current_stock <= low_stock_threshold, en orden estable (producto, bodega).
	ListLowStock(ctx context.Context, companyID int64) ([]LowStockItem, error)

	Create(ctx context.Context, record *entity.InventoryRecord) error

	// GetForUpdate bloquea la fila (SELECT ... FOR UPDATE); solo tiene sentido dentro de una transacción.
	// Devuelve nil, nil si no existe.
	GetForUpdate(ctx context.Context, productID, warehouseID int64) (*entity.InventoryRecord, error)

	UpdateStock(ctx context.Context, record *entity.InventoryRecord) error
}

// InventoryChangeRepository define el puerto del log append-only de cambios de inventario.
type InventoryChangeRepository interface {
	// RecentOutflow suma quantity_change < 0 con created_at >= since. Sin filas devuelve 0.
	RecentOutflow(ctx context.Context, productID int64, since time.Time) (int64, error)

	Append(ctx context.Context, change *entity.InventoryChange) error
}
