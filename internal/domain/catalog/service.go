package catalog

import (
	"context"
	"strings"

	"pdv/internal/core/apperror"
	"pdv/internal/core/id"
	"pdv/internal/core/types"
	"pdv/internal/domain"
	"pdv/pkg/logger"
	"pdv/pkg/numerator"
)

// Service provides business operations for the product catalog.
type Service struct {
	repo      Repository
	numerator *numerator.Service
}

// NewService creates a catalog service.
func NewService(repo Repository, num *numerator.Service) *Service {
	return &Service{repo: repo, numerator: num}
}

// Create validates and stores a new product, generating a code when absent.
func (s *Service) Create(ctx context.Context, product *Product) error {
	if err := product.Validate(ctx); err != nil {
		return err
	}

	if product.Code == "" {
		cfg := numerator.DefaultConfig("PRD")
		cfg.IncludeYear = false
		cfg.ResetPeriod = "never"
		code, err := s.numerator.NextNumber(ctx, cfg, product.CreatedAt)
		if err != nil {
			return apperror.NewInternal(err).WithDetail("op", "generate product code")
		}
		product.Code = code
	} else if existing, err := s.repo.GetByCode(ctx, product.Code); err == nil && existing != nil {
		return apperror.NewConflict("product code already in use").
			WithDetail("codigo", product.Code)
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return err
	}

	logger.Info(ctx, "product created", "id", product.ID, "codigo", product.Code)
	return nil
}

// GetByID retrieves a product.
func (s *Service) GetByID(ctx context.Context, productID id.ID) (*Product, error) {
	product, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	return product, nil
}

// GetByCode retrieves a product by its catalog code.
func (s *Service) GetByCode(ctx context.Context, code string) (*Product, error) {
	return s.repo.GetByCode(ctx, code)
}

// UpdateFields holds the mutable product fields for partial updates.
// Nil pointers leave the current value untouched.
type UpdateFields struct {
	Name      *string
	Category  *string
	Unit      *string
	CostPrice *types.Money
	SalePrice *types.Money
	MinStock  *types.Quantity
	Active    *bool
}

// Update applies a partial update and stamps the product.
func (s *Service) Update(ctx context.Context, productID id.ID, fields UpdateFields) (*Product, error) {
	product, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if fields.Name != nil {
		product.Name = strings.TrimSpace(*fields.Name)
	}
	if fields.Category != nil {
		product.Category = *fields.Category
	}
	if fields.Unit != nil {
		product.Unit = *fields.Unit
	}
	if fields.CostPrice != nil {
		product.CostPrice = *fields.CostPrice
	}
	if fields.SalePrice != nil {
		product.SalePrice = *fields.SalePrice
	}
	if fields.MinStock != nil {
		product.MinStock = *fields.MinStock
	}
	if fields.Active != nil {
		product.Active = *fields.Active
	}

	if err := product.Validate(ctx); err != nil {
		return nil, err
	}

	product.Touch()
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Remove deactivates a product. Historical sales keep referencing it,
// so products are never hard-deleted.
func (s *Service) Remove(ctx context.Context, productID id.ID) error {
	product, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return err
	}

	product.Active = false
	product.Touch()
	return s.repo.Update(ctx, product)
}

// AdjustStock applies a stock delta in the given direction.
// The catalog performs no bounds check; callers own business validation.
func (s *Service) AdjustStock(ctx context.Context, productID id.ID, quantity types.Quantity, direction StockDirection) (*Product, error) {
	if quantity.IsNegative() {
		return nil, apperror.NewValidation("quantity must not be negative").
			WithDetail("field", "quantidade")
	}

	product, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	product.AdjustStock(quantity, direction)
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	logger.Debug(ctx, "stock adjusted",
		"product_id", productID,
		"direction", direction,
		"quantity", quantity,
		"stock", product.Stock,
	)
	return product, nil
}

// List retrieves products with filtering and pagination.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Product], error) {
	return s.repo.List(ctx, filter)
}
