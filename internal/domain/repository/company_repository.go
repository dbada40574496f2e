package repository

import (
	"context"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
)

// CompanyRepository define el puerto de lectura para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	// GetByID devuelve nil, nil cuando la empresa no existe.
	GetByID(ctx context.Context, id int64) (*entity.Company, error)
}
