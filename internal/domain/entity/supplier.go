package entity

// Supplier proveedor opcional de un producto.
type Supplier struct {
	ID           int64
	Name         string
	ContactEmail string
}
