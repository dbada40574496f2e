package entity

// Warehouse representa una bodega de una empresa (multi-bodega).
type Warehouse struct {
	ID        int64
	CompanyID int64
	Name      string
}
