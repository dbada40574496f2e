package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Acepta pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// ListLowStock devuelve los registros de inventario de las bodegas de la empresa cuyo stock
// está en o bajo el umbral del producto. El proveedor es opcional (LEFT JOIN).
func (r *InventoryRepo) ListLowStock(ctx context.Context, companyID int64) ([]repository.LowStockItem, error) {
	const query = `
		SELECT
			p.id, p.sku, p.name, p.low_stock_threshold, p.supplier_id,
			i.id, i.current_stock, i.updated_at,
			w.id, w.name,
			s.id, s.name, s.contact_email
		FROM inventory i
		JOIN products p   ON p.id = i.product_id
		JOIN warehouses w ON w.id = i.warehouse_id
		LEFT JOIN suppliers s ON s.id = p.supplier_id
		WHERE w.company_id = $1
		  AND i.current_stock <= p.low_stock_threshold
		ORDER BY p.id, w.id`

	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()

	var items []repository.LowStockItem
	for rows.Next() {
		var (
			item          repository.LowStockItem
			supplierID    *int64
			supplierName  *string
			supplierEmail *string
		)
		if err := rows.Scan(
			&item.Product.ID, &item.Product.SKU, &item.Product.Name,
			&item.Product.LowStockThreshold, &item.Product.SupplierID,
			&item.Inventory.ID, &item.Inventory.CurrentStock, &item.Inventory.UpdatedAt,
			&item.Warehouse.ID, &item.Warehouse.Name,
			&supplierID, &supplierName, &supplierEmail,
		); err != nil {
			return nil, fmt.Errorf("scan low stock item: %w", err)
		}
		item.Inventory.ProductID = item.Product.ID
		item.Inventory.WarehouseID = item.Warehouse.ID
		item.Warehouse.CompanyID = companyID
		if supplierID != nil {
			item.Supplier = &entity.Supplier{ID: *supplierID}
			if supplierName != nil {
				item.Supplier.Name = *supplierName
			}
			if supplierEmail != nil {
				item.Supplier.ContactEmail = *supplierEmail
			}
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Create inserta el registro de inventario inicial de un producto en una bodega.
func (r *InventoryRepo) Create(ctx context.Context, record *entity.InventoryRecord) error {
	const query = `
		INSERT INTO inventory (product_id, warehouse_id, current_stock)
		VALUES ($1, $2, $3)
		RETURNING id, updated_at`
	err := r.q.QueryRow(ctx, query, record.ProductID, record.WarehouseID, record.CurrentStock).
		Scan(&record.ID, &record.UpdatedAt)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return errConflict(err)
		case isForeignKeyViolation(err):
			return errMissingReference("Warehouse does not exist.")
		case isCheckViolation(err):
			return errMissingReference("Field 'stock_level' must be a non-negative integer.")
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetForUpdate bloquea la fila en inventory (SELECT FOR UPDATE) para evitar condiciones de carrera.
func (r *InventoryRepo) GetForUpdate(ctx context.Context, productID, warehouseID int64) (*entity.InventoryRecord, error) {
	const query = `
		SELECT id, product_id, warehouse_id, current_stock, updated_at
		FROM inventory
		WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	var rec entity.InventoryRecord
	err := r.q.QueryRow(ctx, query, productID, warehouseID).Scan(
		&rec.ID, &rec.ProductID, &rec.WarehouseID, &rec.CurrentStock, &rec.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory for update: %w", err)
	}
	return &rec, nil
}

// UpdateStock persiste la nueva cantidad. El CHECK current_stock >= 0 se reporta como stock insuficiente.
func (r *InventoryRepo) UpdateStock(ctx context.Context, record *entity.InventoryRecord) error {
	const query = `UPDATE inventory SET current_stock = $2, updated_at = $3 WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, record.ID, record.CurrentStock, record.UpdatedAt)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInsufficientStock
		}
		return fmt.Errorf("update inventory: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
