package dto

// LowStockReport respuesta de GET /api/companies/{companyId}/alerts/low-stock.
type LowStockReport struct {
	CompanyID   int64           `json:"company_id"`
	Alerts      []LowStockAlert `json:"alerts"`
	TotalAlerts int             `json:"total_alerts"`
}

// LowStockAlert alerta derivada para un producto en una bodega. No se persiste.
type LowStockAlert struct {
	ProductID         int64            `json:"product_id"`
	ProductName       string           `json:"product_name"`
	SKU               string           `json:"sku"`
	CurrentStock      int64            `json:"current_stock"`
	WarehouseID       int64            `json:"warehouse_id"`
	WarehouseName     string           `json:"warehouse_name"`
	DaysUntilStockout *int64           `json:"days_until_stockout"` // null si no hay consumo promedio positivo
	Supplier          *SupplierSummary `json:"supplier"`            // null si el producto no tiene proveedor
}

// SupplierSummary bloque de proveedor embebido en la alerta.
type SupplierSummary struct {
	SupplierID   int64  `json:"supplier_id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}
