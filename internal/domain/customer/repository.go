package customer

import (
	"context"

	"pdv/internal/core/id"
	"pdv/internal/domain"
)

// Repository defines storage operations for customers.
type Repository interface {
	Create(ctx context.Context, customer *Customer) error
	GetByID(ctx context.Context, customerID id.ID) (*Customer, error)
	Update(ctx context.Context, customer *Customer) error
	List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*Customer], error)
}
