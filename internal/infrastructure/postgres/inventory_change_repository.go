package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

var _ repository.InventoryChangeRepository = (*InventoryChangeRepo)(nil)

// InventoryChangeRepo log append-only inventory_logs sobre PostgreSQL (usable con pool o tx).
type InventoryChangeRepo struct {
	q Querier
}

// NewInventoryChangeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryChangeRepository(q Querier) *InventoryChangeRepo {
	return &InventoryChangeRepo{q: q}
}

// RecentOutflow suma las salidas (quantity_change < 0) del producto desde since.
// COALESCE garantiza 0 y no NULL cuando no hay filas.
func (r *InventoryChangeRepo) RecentOutflow(ctx context.Context, productID int64, since time.Time) (int64, error) {
	const query = `
		SELECT COALESCE(SUM(quantity_change), 0)::bigint
		FROM inventory_logs
		WHERE product_id = $1
		  AND quantity_change < 0
		  AND created_at >= $2`
	var total int64
	if err := r.q.QueryRow(ctx, query, productID, since).Scan(&total); err != nil {
		return 0, fmt.Errorf("recent outflow: %w", err)
	}
	return total, nil
}

// Append agrega un movimiento al log y completa su ID.
func (r *InventoryChangeRepo) Append(ctx context.Context, change *entity.InventoryChange) error {
	const query = `
		INSERT INTO inventory_logs (product_id, warehouse_id, quantity_change, reason, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		change.ProductID, change.WarehouseID, change.QuantityChange, change.Reason, change.CreatedAt,
	).Scan(&change.ID)
	if err != nil {
		return fmt.Errorf("append inventory change: %w", err)
	}
	return nil
}
