package ledger

import (
	"context"

	"pdv/internal/core/id"
	"pdv/internal/domain"
)

// ListFilter filters ledger listings.
type ListFilter struct {
	domain.ListFilter

	Type     TransactionType
	Status   Status
	Category string
}

// Repository defines storage operations for financial transactions.
type Repository interface {
	Create(ctx context.Context, tx *Transaction) error
	GetByID(ctx context.Context, txID id.ID) (*Transaction, error)
	Update(ctx context.Context, tx *Transaction) error
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Transaction], error)

	// ListAll returns every transaction, used by balance computation.
	ListAll(ctx context.Context) ([]*Transaction, error)
}
