package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
	domaininv "github.com/jhoicas/stock-alerts-api/internal/domain/inventory"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
	"github.com/jhoicas/stock-alerts-api/pkg/clock"
	"github.com/jhoicas/stock-alerts-api/pkg/logger"
)

// LowStockAlertUseCase genera las alertas de stock bajo de una empresa con proyección de agotamiento.
// Es stateless: cada evaluación es una secuencia independiente de lecturas, sin transacción que la envuelva.
type LowStockAlertUseCase struct {
	companyRepo   repository.CompanyRepository
	inventoryRepo repository.InventoryRepository
	changeRepo    repository.InventoryChangeRepository
	clock         clock.Clock
	log           *logger.Logger
}

// NewLowStockAlertUseCase construye el caso de uso de alertas.
func NewLowStockAlertUseCase(
	companyRepo repository.CompanyRepository,
	inventoryRepo repository.InventoryRepository,
	changeRepo repository.InventoryChangeRepository,
	clk clock.Clock,
	log *logger.Logger,
) *LowStockAlertUseCase {
	return &LowStockAlertUseCase{
		companyRepo:   companyRepo,
		inventoryRepo: inventoryRepo,
		changeRepo:    changeRepo,
		clock:         clk,
		log:           log,
	}
}

// Evaluate devuelve las alertas de la empresa en el orden del escaneo de stock bajo.
// Productos bajo el umbral pero sin salidas en los últimos LookbackDays días se omiten.
// El único error esperable por el caller es domain.ErrCompanyNotFound.
func (uc *LowStockAlertUseCase) Evaluate(ctx context.Context, companyID int64) (*dto.LowStockReport, error) {
	// 1. Validar empresa
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}

	report := &dto.LowStockReport{
		CompanyID: companyID,
		Alerts:    []dto.LowStockAlert{},
	}

	// 2. Filas de inventario en o bajo el umbral
	items, err := uc.inventoryRepo.ListLowStock(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return report, nil
	}

	// 3. Un solo "now" por evaluación
	since := domaininv.WindowStart(uc.clock.Now())

	// 4. Una consulta agregada por fila (N+1). Aceptable a esta escala; un agregado agrupado por
	//    product_id debe devolver exactamente el mismo valor por producto.
	for _, item := range items {
		outflow, err := uc.changeRepo.RecentOutflow(ctx, item.Product.ID, since)
		if err != nil {
			return nil, fmt.Errorf("recent outflow for product %d: %w", item.Product.ID, err)
		}

		projection := domaininv.ProjectStockout(item.Inventory.CurrentStock, outflow)
		if !projection.HasDemand() {
			continue
		}

		report.Alerts = append(report.Alerts, toLowStockAlert(item, projection))
	}
	report.TotalAlerts = len(report.Alerts)

	uc.log.Debug().
		Int64("company_id", companyID).
		Int("low_stock_rows", len(items)).
		Int("alerts", report.TotalAlerts).
		Time("since", since).
		Msg("low-stock alerts evaluated")

	return report, nil
}

func toLowStockAlert(item repository.LowStockItem, p domaininv.StockoutProjection) dto.LowStockAlert {
	alert := dto.LowStockAlert{
		ProductID:         item.Product.ID,
		ProductName:       item.Product.Name,
		SKU:               item.Product.SKU,
		CurrentStock:      item.Inventory.CurrentStock,
		WarehouseID:       item.Warehouse.ID,
		WarehouseName:     item.Warehouse.Name,
		DaysUntilStockout: p.DaysUntilStockout,
	}
	if item.Supplier != nil {
		alert.Supplier = &dto.SupplierSummary{
			SupplierID:   item.Supplier.ID,
			Name:         item.Supplier.Name,
			ContactEmail: item.Supplier.ContactEmail,
		}
	}
	return alert
}
