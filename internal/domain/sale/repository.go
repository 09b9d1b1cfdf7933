package sale

import (
	"context"

	"pdv/internal/core/id"
	"pdv/internal/domain"
)

// ListFilter filters sale listings.
type ListFilter struct {
	domain.ListFilter

	CustomerID *id.ID
	Status     Status
}

// Repository defines storage operations for sales.
type Repository interface {
	Create(ctx context.Context, sale *Sale) error
	GetByID(ctx context.Context, saleID id.ID) (*Sale, error)
	Update(ctx context.Context, sale *Sale) error
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Sale], error)
}
