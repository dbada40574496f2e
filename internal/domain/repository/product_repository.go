package repository

import (
	"context"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create inserta el producto y completa ID y CreatedAt.
	// Devuelve domain.ErrConflict si el SKU choca con el índice único.
	Create(ctx context.Context, product *entity.Product) error
	// GetBySKU devuelve nil, nil cuando no existe.
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
}
