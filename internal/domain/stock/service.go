package stock

import (
	"context"

	"pdv/internal/core/apperror"
	"pdv/internal/core/id"
	"pdv/internal/core/types"
	"pdv/internal/domain"
	"pdv/internal/domain/catalog"
	"pdv/pkg/logger"
)

// Service provides business operations for the stock journal.
// Entry and exit movements update the catalog's stock level as a side
// effect; the exit path is where the stock >= 0 invariant is enforced,
// since the catalog itself performs no bounds check.
type Service struct {
	repo    Repository
	catalog *catalog.Service
}

// NewService creates a stock service.
func NewService(repo Repository, catalogService *catalog.Service) *Service {
	return &Service{repo: repo, catalog: catalogService}
}

// Record validates and appends a movement, applying the stock side
// effect for entry/exit types.
func (s *Service) Record(ctx context.Context, movement *Movement) error {
	if err := movement.Validate(ctx); err != nil {
		return err
	}

	product, err := s.catalog.GetByID(ctx, movement.ProductID)
	if err != nil {
		return err
	}

	switch movement.Type {
	case TypeEntry:
		if _, err := s.catalog.AdjustStock(ctx, product.ID, movement.Quantity, catalog.StockIncrease); err != nil {
			return err
		}

	case TypeExit:
		if product.Stock.LessThan(movement.Quantity) {
			return apperror.NewInsufficientStock(
				product.ID.String(),
				movement.Quantity.String(),
				product.Stock.String(),
			)
		}
		if _, err := s.catalog.AdjustStock(ctx, product.ID, movement.Quantity, catalog.StockDecrease); err != nil {
			return err
		}

	case TypeAdjustment:
		// Snapshot only; the stock field itself is untouched.
		before := product.Stock
		movement.QuantityBefore = &before
		after := movement.Quantity
		movement.QuantityAfter = &after

	case TypeTransfer:
		// Quantity moves between named locations; total stock unchanged.
	}

	if err := s.repo.Create(ctx, movement); err != nil {
		return err
	}

	logger.Info(ctx, "stock movement recorded",
		"id", movement.ID,
		"product_id", movement.ProductID,
		"tipo", movement.Type,
		"quantidade", movement.Quantity,
	)
	return nil
}

// GetByID retrieves a movement.
func (s *Service) GetByID(ctx context.Context, movementID id.ID) (*Movement, error) {
	return s.repo.GetByID(ctx, movementID)
}

// List retrieves movements with filtering and pagination.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Movement], error) {
	return s.repo.List(ctx, filter)
}

// ListByProduct retrieves all movements for one product.
func (s *Service) ListByProduct(ctx context.Context, productID id.ID) (domain.ListResult[*Movement], error) {
	filter := ListFilter{ListFilter: domain.DefaultListFilter()}
	filter.Limit = 0
	filter.ProductID = &productID
	return s.repo.List(ctx, filter)
}

// LowStockItem is one row of the low-stock report.
type LowStockItem struct {
	ProductID    id.ID          `json:"produtoId"`
	Code         string         `json:"codigo"`
	Name         string         `json:"nome"`
	CurrentStock types.Quantity `json:"estoqueAtual"`
	MinStock     types.Quantity `json:"estoqueMinimo"`
}

// LowStockReport lists active products whose stock is strictly below
// the minimum threshold.
func (s *Service) LowStockReport(ctx context.Context) ([]LowStockItem, error) {
	products, err := s.listProducts(ctx)
	if err != nil {
		return nil, err
	}

	report := make([]LowStockItem, 0)
	for _, p := range products {
		if !p.BelowMinimum() {
			continue
		}
		report = append(report, LowStockItem{
			ProductID:    p.ID,
			Code:         p.Code,
			Name:         p.Name,
			CurrentStock: p.Stock,
			MinStock:     p.MinStock,
		})
	}
	return report, nil
}

// ZeroStockReport lists active products with exactly zero stock.
func (s *Service) ZeroStockReport(ctx context.Context) ([]LowStockItem, error) {
	products, err := s.listProducts(ctx)
	if err != nil {
		return nil, err
	}

	report := make([]LowStockItem, 0)
	for _, p := range products {
		if !p.Stock.IsZero() {
			continue
		}
		report = append(report, LowStockItem{
			ProductID:    p.ID,
			Code:         p.Code,
			Name:         p.Name,
			CurrentStock: p.Stock,
			MinStock:     p.MinStock,
		})
	}
	return report, nil
}

func (s *Service) listProducts(ctx context.Context) ([]*catalog.Product, error) {
	filter := catalog.ListFilter{ListFilter: domain.DefaultListFilter()}
	filter.Limit = 0
	result, err := s.catalog.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return result.Items, nil
}
