package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/application/inventory"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

// ProductFieldOrder orden en que se reportan los campos inválidos: stock_level antes que warehouse_id.
var ProductFieldOrder = []string{"stock_level", "warehouse_id", "sku", "name", "description", "low_stock_threshold", "supplier_id"}

// ProductFieldMessage mensaje de cliente para un campo de CreateProductRequest con tipo JSON incorrecto.
func ProductFieldMessage(field string) string {
	switch field {
	case "sku":
		return "Field 'sku' must be a non-empty string of at most 80 characters."
	case "name":
		return "Field 'name' must be a non-empty string of at most 120 characters."
	case "warehouse_id":
		return "Field 'warehouse_id' must be an integer."
	case "stock_level":
		return "Field 'stock_level' must be a non-negative integer."
	case "low_stock_threshold":
		return "Field 'low_stock_threshold' must be a non-negative integer."
	case "supplier_id":
		return "Field 'supplier_id' must be an integer."
	case "description":
		return "Field 'description' must be a string."
	}
	return fmt.Sprintf("Field '%s' is invalid.", field)
}

// productRangeMessage mensaje para un campo con el tipo correcto pero fuera de rango.
func productRangeMessage(field string) string {
	switch field {
	case "warehouse_id", "supplier_id":
		return fmt.Sprintf("Field '%s' must be a positive integer.", field)
	}
	return ProductFieldMessage(field)
}

// ProductUseCase alta de productos con su inventario inicial.
type ProductUseCase struct {
	txRunner inventory.TxRunner
	repo     repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(txRunner inventory.TxRunner, repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, repo: repo}
}

// Create valida la entrada, rechaza SKUs existentes y crea producto + registro de inventario inicial
// en una sola transacción.
// Errores: *domain.ValidationError, domain.ErrDuplicate (SKU ya existe),
// domain.ErrConflict (SKU creado por otra petición entre la verificación y el commit).
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.CreateProductResponse, error) {
	if missing := in.MissingFields(); len(missing) > 0 {
		return nil, domain.NewValidationError("Missing required fields: %s", strings.Join(missing, ", "))
	}
	if err := in.Validate(); err != nil {
		return nil, productValidationError(err)
	}

	existing, err := uc.repo.GetBySKU(ctx, *in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	threshold := int64(entity.DefaultLowStockThreshold)
	if in.LowStockThreshold != nil {
		threshold = *in.LowStockThreshold
	}
	product := &entity.Product{
		SKU:               *in.SKU,
		Name:              *in.Name,
		Description:       in.Description,
		LowStockThreshold: threshold,
		SupplierID:        in.SupplierID,
	}

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		_ repository.InventoryChangeRepository,
	) error {
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		return inventoryRepo.Create(ctx, &entity.InventoryRecord{
			ProductID:    product.ID,
			WarehouseID:  *in.WarehouseID,
			CurrentStock: *in.StockLevel,
		})
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateProductResponse{
		Message: "Product created successfully.",
		Product: dto.ProductResponse{
			ID:          product.ID,
			SKU:         product.SKU,
			Name:        product.Name,
			Description: product.Description,
		},
	}, nil
}

func productValidationError(err error) error {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, field := range ProductFieldOrder {
		if _, ok := verrs[field]; ok {
			return domain.NewValidationError("%s", productRangeMessage(field))
		}
	}
	return domain.NewValidationError("%s", verrs.Error())
}
