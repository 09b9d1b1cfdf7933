package sale

import (
	"context"

	"pdv/internal/core/apperror"
	"pdv/internal/core/id"
	"pdv/internal/domain"
	"pdv/internal/domain/catalog"
	"pdv/internal/domain/customer"
	"pdv/pkg/logger"
	"pdv/pkg/numerator"
)

// Service provides business operations for sales documents.
// Confirming a sale (stock and ledger side effects) lives in the
// application flow, not here: creation only records the document.
type Service struct {
	repo      Repository
	catalog   *catalog.Service
	customers *customer.Service
	numerator *numerator.Service
}

// NewService creates a sale service.
func NewService(repo Repository, catalogService *catalog.Service, customerService *customer.Service, num *numerator.Service) *Service {
	return &Service{
		repo:      repo,
		catalog:   catalogService,
		customers: customerService,
		numerator: num,
	}
}

// Create validates and stores a new pending sale.
// Items with a zero unit price get the catalog sale price snapshotted
// in; product code and description snapshots are always taken here so
// the sale stays readable after catalog edits.
func (s *Service) Create(ctx context.Context, doc *Sale) error {
	if _, err := s.customers.GetByID(ctx, doc.CustomerID); err != nil {
		return err
	}

	for i := range doc.Items {
		product, err := s.catalog.GetByID(ctx, doc.Items[i].ProductID)
		if err != nil {
			return err
		}
		if doc.Items[i].UnitPrice.IsZero() {
			doc.Items[i].UnitPrice = product.SalePrice
		}
		doc.Items[i].ProductCode = product.Code
		if doc.Items[i].Description == "" {
			doc.Items[i].Description = product.Name
		}
	}
	doc.RecomputeTotals()

	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if doc.Number == "" {
		number, err := s.numerator.Next(ctx, "VND")
		if err != nil {
			return apperror.NewInternal(err).WithDetail("op", "generate sale number")
		}
		doc.Number = number
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		return err
	}

	logger.Info(ctx, "sale created",
		"id", doc.ID,
		"numero", doc.Number,
		"total", doc.Total,
		"itens", len(doc.Items),
	)
	return nil
}

// GetByID retrieves a sale.
func (s *Service) GetByID(ctx context.Context, saleID id.ID) (*Sale, error) {
	return s.repo.GetByID(ctx, saleID)
}

// MarkCompleted transitions a pending sale to completed.
func (s *Service) MarkCompleted(ctx context.Context, saleID id.ID) (*Sale, error) {
	doc, err := s.repo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	if err := doc.CanTransition(StatusCompleted); err != nil {
		return nil, err
	}

	doc.Status = StatusCompleted
	doc.AmountPaid = doc.Total
	doc.Touch()
	if err := s.repo.Update(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Cancel transitions a sale to cancelled. This is a pure status
// transition: stock and ledger effects already applied to a completed
// sale are not reversed here (the application flow owns any reversal
// policy). Cancelling twice is a no-op.
func (s *Service) Cancel(ctx context.Context, saleID id.ID) (*Sale, error) {
	doc, err := s.repo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	if doc.Status == StatusCancelled {
		return doc, nil
	}

	doc.Status = StatusCancelled
	doc.Touch()
	if err := s.repo.Update(ctx, doc); err != nil {
		return nil, err
	}

	logger.Info(ctx, "sale cancelled", "id", doc.ID, "numero", doc.Number)
	return doc, nil
}

// List retrieves sales with filtering and pagination.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Sale], error) {
	return s.repo.List(ctx, filter)
}
