package inventory

import (
	"context"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
	"github.com/jhoicas/stock-alerts-api/pkg/clock"
)

// AdjustStockUseCase aplica un cambio de stock y lo registra en el log de inventario, de forma transaccional.
// Es la operación que alimenta el historial de salidas usado por las alertas.
type AdjustStockUseCase struct {
	txRunner TxRunner
	clock    clock.Clock
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner TxRunner, clk clock.Clock) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner, clock: clk}
}

// Adjust bloquea la fila de inventario (SELECT FOR UPDATE), verifica que el stock no quede negativo,
// actualiza la cantidad y agrega el movimiento a inventory_logs. Commit o Rollback lo hace el TxRunner.
func (uc *AdjustStockUseCase) Adjust(ctx context.Context, in dto.AdjustStockRequest) (*dto.InventoryResponse, error) {
	if err := in.Validate(); err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			return nil, domain.NewValidationError("%s", verrs.Error())
		}
		return nil, err
	}
	reason := in.Reason
	if reason == "" {
		reason = entity.ChangeReasonAdjustment
	}

	var out *dto.InventoryResponse
	err := uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		changeRepo repository.InventoryChangeRepository,
	) error {
		record, err := inventoryRepo.GetForUpdate(ctx, in.ProductID, in.WarehouseID)
		if err != nil {
			return err
		}
		if record == nil {
			return domain.ErrNotFound
		}

		newStock := record.CurrentStock + in.QuantityChange
		if newStock < 0 {
			return domain.ErrInsufficientStock
		}

		now := uc.clock.Now()
		record.CurrentStock = newStock
		record.UpdatedAt = now
		if err := inventoryRepo.UpdateStock(ctx, record); err != nil {
			return err
		}

		warehouseID := in.WarehouseID
		change := &entity.InventoryChange{
			ProductID:      in.ProductID,
			WarehouseID:    &warehouseID,
			QuantityChange: in.QuantityChange,
			Reason:         reason,
			CreatedAt:      now,
		}
		if err := changeRepo.Append(ctx, change); err != nil {
			return err
		}

		out = &dto.InventoryResponse{
			ProductID:    record.ProductID,
			WarehouseID:  record.WarehouseID,
			CurrentStock: record.CurrentStock,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
