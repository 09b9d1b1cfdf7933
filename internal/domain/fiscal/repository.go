package fiscal

import (
	"context"

	"pdv/internal/core/id"
	"pdv/internal/domain"
)

// ListFilter filters cupom listings.
type ListFilter struct {
	domain.ListFilter

	Status Status
	SaleID *id.ID
}

// Repository defines storage operations for cupons fiscais.
type Repository interface {
	Create(ctx context.Context, cupom *CupomFiscal) error
	GetByID(ctx context.Context, cupomID id.ID) (*CupomFiscal, error)
	Update(ctx context.Context, cupom *CupomFiscal) error
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*CupomFiscal], error)
}
