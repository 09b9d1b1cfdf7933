package catalog

import (
	"context"

	"pdv/internal/core/id"
	"pdv/internal/domain"
)

// ListFilter filters product listings.
type ListFilter struct {
	domain.ListFilter

	Category string
}

// Repository defines storage operations for products.
type Repository interface {
	Create(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, productID id.ID) (*Product, error)
	GetByCode(ctx context.Context, code string) (*Product, error)
	Update(ctx context.Context, product *Product) error
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Product], error)

	// ListAll returns every active product, used by stock reports.
	ListAll(ctx context.Context) ([]*Product, error)
}
