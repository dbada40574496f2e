package entity

import "time"

// DefaultLowStockThreshold punto de reorden asignado cuando el producto se crea sin umbral explícito.
const DefaultLowStockThreshold = 10

// Product representa un producto del catálogo. El SKU es único a nivel global.
// LowStockThreshold es inclusivo: hay stock bajo cuando current_stock <= LowStockThreshold.
type Product struct {
	ID                int64
	SKU               string
	Name              string
	Description       *string
	LowStockThreshold int64
	SupplierID        *int64 // nil = sin proveedor
	CreatedAt         time.Time
}
