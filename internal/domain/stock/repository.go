package stock

import (
	"context"

	"pdv/internal/core/id"
	"pdv/internal/domain"
)

// ListFilter filters movement listings.
type ListFilter struct {
	domain.ListFilter

	ProductID *id.ID
	Type      MovementType
}

// Repository defines storage operations for stock movements.
// Movements are append-only; there is no update or delete.
type Repository interface {
	Create(ctx context.Context, movement *Movement) error
	GetByID(ctx context.Context, movementID id.ID) (*Movement, error)
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Movement], error)
}
