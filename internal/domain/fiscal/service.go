package fiscal

import (
	"context"

	"pdv/internal/core/apperror"
	"pdv/internal/core/id"
	"pdv/internal/domain"
	"pdv/internal/domain/customer"
	"pdv/internal/domain/sale"
	"pdv/pkg/logger"
	"pdv/pkg/numerator"
)

// Service provides business operations for cupons fiscais.
type Service struct {
	repo      Repository
	customers *customer.Service
	numerator *numerator.Service
}

// NewService creates a fiscal service.
func NewService(repo Repository, customerService *customer.Service, num *numerator.Service) *Service {
	return &Service{
		repo:      repo,
		customers: customerService,
		numerator: num,
	}
}

// SnapshotFromCustomer maps a registered customer to the embedded
// cupom snapshot.
func SnapshotFromCustomer(c *customer.Customer) CustomerSnapshot {
	return CustomerSnapshot{
		Name:    c.Name,
		TaxID:   c.TaxID,
		Address: c.Address,
	}
}

// ItemFromSaleItem maps one sale line to a fiscal line. The discount
// is folded into the line total so the cupom total matches the sale.
func ItemFromSaleItem(item sale.Item) Item {
	return Item{
		Code:        item.ProductCode,
		Description: item.Description,
		Quantity:    item.Quantity,
		UnitValue:   item.UnitPrice,
		TotalValue:  item.LineTotal(),
	}
}

// Issue validates, numbers and stores a pending cupom.
func (s *Service) Issue(ctx context.Context, cupom *CupomFiscal) error {
	cupom.RecomputeTotal()

	if err := cupom.Validate(ctx); err != nil {
		return err
	}

	if cupom.Number == "" {
		number, err := s.numerator.Next(ctx, "CF")
		if err != nil {
			return apperror.NewInternal(err).WithDetail("op", "generate cupom number")
		}
		cupom.Number = number
	}

	if err := s.repo.Create(ctx, cupom); err != nil {
		return err
	}

	logger.Info(ctx, "cupom issued",
		"id", cupom.ID,
		"numero", cupom.Number,
		"total", cupom.Total,
	)
	return nil
}

// IssueFromSale builds a cupom from a completed sale and stores it.
// Customer data and item values are copied at this moment; later sale
// or registry edits do not propagate to the cupom.
func (s *Service) IssueFromSale(ctx context.Context, doc *sale.Sale) (*CupomFiscal, error) {
	if doc.Status != sale.StatusCompleted {
		return nil, apperror.NewBusinessRule(apperror.CodeBusinessRule, "only completed sales generate a cupom fiscal").
			WithDetail("vendaId", doc.ID).
			WithDetail("status", string(doc.Status))
	}

	buyer, err := s.customers.GetByID(ctx, doc.CustomerID)
	if err != nil {
		return nil, err
	}

	cupom := NewCupom(SnapshotFromCustomer(buyer), doc.PaymentMethod)
	cupom.EmissionDate = doc.Date
	saleID := doc.ID
	cupom.SaleID = &saleID
	for _, item := range doc.Items {
		cupom.AddItem(ItemFromSaleItem(item))
	}

	if err := s.Issue(ctx, cupom); err != nil {
		return nil, err
	}
	return cupom, nil
}

// GetByID retrieves a cupom.
func (s *Service) GetByID(ctx context.Context, cupomID id.ID) (*CupomFiscal, error) {
	return s.repo.GetByID(ctx, cupomID)
}

// Emit transitions a pending cupom to emitted.
func (s *Service) Emit(ctx context.Context, cupomID id.ID) (*CupomFiscal, error) {
	cupom, err := s.repo.GetByID(ctx, cupomID)
	if err != nil {
		return nil, err
	}

	if cupom.Status != StatusPending {
		return nil, apperror.NewInvalidStatus("cupom", string(cupom.Status), string(StatusEmitted))
	}

	cupom.Status = StatusEmitted
	cupom.Touch()
	if err := s.repo.Update(ctx, cupom); err != nil {
		return nil, err
	}

	logger.Info(ctx, "cupom emitted", "id", cupom.ID, "numero", cupom.Number)
	return cupom, nil
}

// Cancel transitions a cupom to cancelled. Cancelling twice is a no-op.
func (s *Service) Cancel(ctx context.Context, cupomID id.ID) (*CupomFiscal, error) {
	cupom, err := s.repo.GetByID(ctx, cupomID)
	if err != nil {
		return nil, err
	}

	if cupom.Status == StatusCancelled {
		return cupom, nil
	}

	cupom.Status = StatusCancelled
	cupom.Touch()
	if err := s.repo.Update(ctx, cupom); err != nil {
		return nil, err
	}

	logger.Info(ctx, "cupom cancelled", "id", cupom.ID, "numero", cupom.Number)
	return cupom, nil
}

// List retrieves cupons with filtering and pagination.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*CupomFiscal], error) {
	return s.repo.List(ctx, filter)
}
