package inventory_test

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

// fakeCompanies CompanyRepository en memoria.
type fakeCompanies map[int64]*entity.Company

func (f fakeCompanies) GetByID(_ context.Context, id int64) (*entity.Company, error) {
	return f[id], nil
}

type recordKey struct{ productID, warehouseID int64 }

// fakeInventory InventoryRepository en memoria.
type fakeInventory struct {
	lowStock map[int64][]repository.LowStockItem
	records  map[recordKey]*entity.InventoryRecord
	err      error
}

func newFakeInventory() *fakeInventory {
	return &fakeInventory{
		lowStock: map[int64][]repository.LowStockItem{},
		records:  map[recordKey]*entity.InventoryRecord{},
	}
}

func (f *fakeInventory) ListLowStock(_ context.Context, companyID int64) ([]repository.LowStockItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.lowStock[companyID], nil
}

func (f *fakeInventory) Create(_ context.Context, r *entity.InventoryRecord) error {
	f.records[recordKey{r.ProductID, r.WarehouseID}] = r
	return nil
}

func (f *fakeInventory) GetForUpdate(_ context.Context, productID, warehouseID int64) (*entity.InventoryRecord, error) {
	r, ok := f.records[recordKey{productID, warehouseID}]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeInventory) UpdateStock(_ context.Context, r *entity.InventoryRecord) error {
	cp := *r
	f.records[recordKey{r.ProductID, r.WarehouseID}] = &cp
	return nil
}

// fakeChanges InventoryChangeRepository en memoria; registra los "since" recibidos.
type fakeChanges struct {
	mu     sync.Mutex
	events []entity.InventoryChange
	sinces []time.Time
	err    error
}

func (f *fakeChanges) RecentOutflow(_ context.Context, productID int64, since time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sinces = append(f.sinces, since)
	if f.err != nil {
		return 0, f.err
	}
	var sum int64
	for _, e := range f.events {
		if e.ProductID == productID && e.QuantityChange < 0 && !e.CreatedAt.Before(since) {
			sum += e.QuantityChange
		}
	}
	return sum, nil
}

func (f *fakeChanges) Append(_ context.Context, c *entity.InventoryChange) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c.ID = int64(len(f.events) + 1)
	f.events = append(f.events, *c)
	return nil
}

// fakeTxRunner ejecuta fn con los repos en memoria y cuenta commits.
type fakeTxRunner struct {
	products  repository.ProductRepository
	inventory *fakeInventory
	changes   *fakeChanges
	commits   int
	rollbacks int
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
	changeRepo repository.InventoryChangeRepository,
) error) error {
	if err := fn(r.products, r.inventory, r.changes); err != nil {
		r.rollbacks++
		return err
	}
	r.commits++
	return nil
}
