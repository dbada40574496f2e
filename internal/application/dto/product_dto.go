package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// CreateProductRequest body para POST /product.
// Los campos son punteros para distinguir "ausente" de "valor cero".
type CreateProductRequest struct {
	SKU               *string `json:"sku"`
	Name              *string `json:"name"`
	WarehouseID       *int64  `json:"warehouse_id"`
	StockLevel        *int64  `json:"stock_level"`
	Description       *string `json:"description"`
	LowStockThreshold *int64  `json:"low_stock_threshold"`
	SupplierID        *int64  `json:"supplier_id"`
}

// MissingFields devuelve los campos obligatorios ausentes, en orden fijo.
func (r *CreateProductRequest) MissingFields() []string {
	var missing []string
	if r.SKU == nil {
		missing = append(missing, "sku")
	}
	if r.Name == nil {
		missing = append(missing, "name")
	}
	if r.WarehouseID == nil {
		missing = append(missing, "warehouse_id")
	}
	if r.StockLevel == nil {
		missing = append(missing, "stock_level")
	}
	return missing
}

// Validate reglas de valor sobre los campos presentes.
func (r *CreateProductRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.SKU, validation.Required, validation.Length(1, 80)),
		validation.Field(&r.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&r.WarehouseID, validation.NotNil, validation.Min(int64(1))),
		validation.Field(&r.StockLevel, validation.NotNil, validation.Min(int64(0))),
		validation.Field(&r.LowStockThreshold, validation.Min(int64(0))),
		validation.Field(&r.SupplierID, validation.Min(int64(1))),
	)
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64   `json:"id"`
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CreateProductResponse respuesta 201 de POST /product.
type CreateProductResponse struct {
	Message string          `json:"message"`
	Product ProductResponse `json:"product"`
}
