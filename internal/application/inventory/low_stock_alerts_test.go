package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-alerts-api/internal/application/inventory"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
	"github.com/jhoicas/stock-alerts-api/pkg/clock"
	"github.com/jhoicas/stock-alerts-api/pkg/logger"
)

const testCompanyID = int64(7)

var testNow = time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func daysAgo(d int) time.Time {
	return testNow.Add(-time.Duration(d) * 24 * time.Hour)
}

func lowStockItem(productID int64, sku string, stock int64, warehouseID int64, supplier *entity.Supplier) repository.LowStockItem {
	item := repository.LowStockItem{
		Product: entity.Product{
			ID:                productID,
			SKU:               sku,
			Name:              "Producto " + sku,
			LowStockThreshold: 10,
		},
		Inventory: entity.InventoryRecord{ProductID: productID, WarehouseID: warehouseID, CurrentStock: stock},
		Warehouse: entity.Warehouse{ID: warehouseID, CompanyID: testCompanyID, Name: "Bodega Central"},
		Supplier:  supplier,
	}
	if supplier != nil {
		item.Product.SupplierID = &supplier.ID
	}
	return item
}

func sale(productID int64, qty int64, at time.Time) entity.InventoryChange {
	return entity.InventoryChange{ProductID: productID, QuantityChange: -qty, Reason: entity.ChangeReasonSale, CreatedAt: at}
}

type engineFixture struct {
	inventory *fakeInventory
	changes   *fakeChanges
	uc        *inventory.LowStockAlertUseCase
}

func newEngine(t *testing.T) *engineFixture {
	t.Helper()
	f := &engineFixture{
		inventory: newFakeInventory(),
		changes:   &fakeChanges{},
	}
	companies := fakeCompanies{testCompanyID: {ID: testCompanyID, Name: "Acme"}}
	f.uc = inventory.NewLowStockAlertUseCase(companies, f.inventory, f.changes, clock.Fixed(testNow), logger.NewNop())
	return f
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Evaluate
// ──────────────────────────────────────────────────────────────────────────────

func TestEvaluate_EmpresaInexistente(t *testing.T) {
	f := newEngine(t)

	report, err := f.uc.Evaluate(context.Background(), 999)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCompanyNotFound))
	assert.True(t, errors.Is(err, domain.ErrNotFound), "debe mapearse a not-found en el borde")
	assert.Nil(t, report, "no debe producirse lista de alertas")
}

func TestEvaluate_SinFilasDeStockBajo(t *testing.T) {
	f := newEngine(t)

	report, err := f.uc.Evaluate(context.Background(), testCompanyID)

	require.NoError(t, err)
	assert.Equal(t, testCompanyID, report.CompanyID)
	assert.NotNil(t, report.Alerts, "alerts debe serializarse como [] y no null")
	assert.Empty(t, report.Alerts)
	assert.Equal(t, 0, report.TotalAlerts)
	assert.Empty(t, f.changes.sinces, "sin filas no se consulta historial")
}

func TestEvaluate_EjemploDosProductos(t *testing.T) {
	f := newEngine(t)
	f.inventory.lowStock[testCompanyID] = []repository.LowStockItem{
		lowStockItem(1, "SKU-1", 4, 100, nil),
		lowStockItem(2, "SKU-2", 3, 100, nil),
	}
	f.changes.events = []entity.InventoryChange{
		sale(1, 20, daysAgo(1)),
		sale(1, 25, daysAgo(10)),
		sale(1, 15, daysAgo(20)),
		// Producto 2: solo reposiciones, sin salidas.
		{ProductID: 2, QuantityChange: 50, Reason: entity.ChangeReasonRestock, CreatedAt: daysAgo(2)},
	}

	report, err := f.uc.Evaluate(context.Background(), testCompanyID)

	require.NoError(t, err)
	require.Len(t, report.Alerts, 1, "el producto sin demanda se omite")
	assert.Equal(t, 1, report.TotalAlerts)

	alert := report.Alerts[0]
	assert.Equal(t, int64(1), alert.ProductID)
	assert.Equal(t, "SKU-1", alert.SKU)
	assert.Equal(t, "Producto SKU-1", alert.ProductName)
	assert.Equal(t, int64(4), alert.CurrentStock)
	assert.Equal(t, int64(100), alert.WarehouseID)
	assert.Equal(t, "Bodega Central", alert.WarehouseName)
	require.NotNil(t, alert.DaysUntilStockout)
	assert.Equal(t, int64(2), *alert.DaysUntilStockout)
	assert.Nil(t, alert.Supplier)
}

func TestEvaluate_BloqueProveedor(t *testing.T) {
	f := newEngine(t)
	supplier := &entity.Supplier{ID: 55, Name: "Distribuidora Norte", ContactEmail: "ventas@norte.example"}
	f.inventory.lowStock[testCompanyID] = []repository.LowStockItem{
		lowStockItem(1, "CON-PROV", 5, 100, supplier),
		lowStockItem(2, "SIN-PROV", 5, 100, nil),
	}
	f.changes.events = []entity.InventoryChange{sale(1, 30, daysAgo(3)), sale(2, 30, daysAgo(3))}

	report, err := f.uc.Evaluate(context.Background(), testCompanyID)

	require.NoError(t, err)
	require.Len(t, report.Alerts, 2)
	require.NotNil(t, report.Alerts[0].Supplier)
	assert.Equal(t, int64(55), report.Alerts[0].Supplier.SupplierID)
	assert.Equal(t, "Distribuidora Norte", report.Alerts[0].Supplier.Name)
	assert.Equal(t, "ventas@norte.example", report.Alerts[0].Supplier.ContactEmail)
	assert.Nil(t, report.Alerts[1].Supplier)
}

func TestEvaluate_RespetaOrdenDelStore(t *testing.T) {
	f := newEngine(t)
	f.inventory.lowStock[testCompanyID] = []repository.LowStockItem{
		lowStockItem(3, "C", 1, 200, nil),
		lowStockItem(1, "A", 9, 100, nil),
		lowStockItem(2, "B", 2, 100, nil),
		lowStockItem(1, "A", 0, 200, nil),
	}
	f.changes.events = []entity.InventoryChange{sale(1, 3, daysAgo(1)), sale(2, 3, daysAgo(1)), sale(3, 3, daysAgo(1))}

	report, err := f.uc.Evaluate(context.Background(), testCompanyID)

	require.NoError(t, err)
	require.Len(t, report.Alerts, 4)
	got := make([][2]int64, 0, len(report.Alerts))
	for _, a := range report.Alerts {
		got = append(got, [2]int64{a.ProductID, a.WarehouseID})
	}
	assert.Equal(t, [][2]int64{{3, 200}, {1, 100}, {2, 100}, {1, 200}}, got, "sin reordenar")
	assert.Equal(t, len(report.Alerts), report.TotalAlerts)
}

func TestEvaluate_VentanaDeTreintaDias(t *testing.T) {
	f := newEngine(t)
	f.inventory.lowStock[testCompanyID] = []repository.LowStockItem{
		lowStockItem(1, "DENTRO", 6, 100, nil),
		lowStockItem(2, "FUERA", 6, 100, nil),
	}
	f.changes.events = []entity.InventoryChange{
		sale(1, 30, daysAgo(29)),
		sale(1, 100, daysAgo(31)), // fuera de la ventana, no cuenta
		sale(2, 100, daysAgo(31)),
	}

	report, err := f.uc.Evaluate(context.Background(), testCompanyID)

	require.NoError(t, err)
	require.Len(t, report.Alerts, 1)
	assert.Equal(t, "DENTRO", report.Alerts[0].SKU)
	require.NotNil(t, report.Alerts[0].DaysUntilStockout)
	assert.Equal(t, int64(6), *report.Alerts[0].DaysUntilStockout, "30 unidades/30 días → 1/día")

	for _, since := range f.changes.sinces {
		assert.Equal(t, daysAgo(30), since, "un solo now por evaluación")
	}
}

func TestEvaluate_Idempotente(t *testing.T) {
	f := newEngine(t)
	f.inventory.lowStock[testCompanyID] = []repository.LowStockItem{
		lowStockItem(1, "SKU-1", 4, 100, &entity.Supplier{ID: 1, Name: "S", ContactEmail: "s@example.com"}),
		lowStockItem(2, "SKU-2", 8, 100, nil),
	}
	f.changes.events = []entity.InventoryChange{sale(1, 60, daysAgo(5)), sale(2, 7, daysAgo(12))}

	first, err := f.uc.Evaluate(context.Background(), testCompanyID)
	require.NoError(t, err)
	second, err := f.uc.Evaluate(context.Background(), testCompanyID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEvaluate_ErrorDelStoreSinResultadoParcial(t *testing.T) {
	f := newEngine(t)
	f.inventory.lowStock[testCompanyID] = []repository.LowStockItem{lowStockItem(1, "SKU-1", 4, 100, nil)}
	f.changes.err = errors.New("conexión cerrada")

	report, err := f.uc.Evaluate(context.Background(), testCompanyID)

	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrNotFound))
	assert.Nil(t, report)
}

func TestEvaluate_ErrorEnEscaneo(t *testing.T) {
	f := newEngine(t)
	f.inventory.err = errors.New("timeout")

	report, err := f.uc.Evaluate(context.Background(), testCompanyID)

	require.Error(t, err)
	assert.Nil(t, report)
}
