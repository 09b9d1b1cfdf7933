package ledger

import (
	"context"
	"sort"
	"time"

	"pdv/internal/core/apperror"
	"pdv/internal/core/id"
	"pdv/internal/core/types"
	"pdv/internal/domain"
	"pdv/pkg/logger"
)

// Service provides business operations for the financial ledger.
type Service struct {
	repo Repository
}

// NewService creates a ledger service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record validates and appends a transaction.
// Status defaults to pending unless the caller marked it otherwise.
func (s *Service) Record(ctx context.Context, tx *Transaction) error {
	if tx.Status == "" {
		tx.Status = StatusPending
	}

	if err := tx.Validate(ctx); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, tx); err != nil {
		return err
	}

	logger.Info(ctx, "transaction recorded",
		"id", tx.ID,
		"tipo", tx.Type,
		"valor", tx.Amount,
		"status", tx.Status,
	)
	return nil
}

// GetByID retrieves a transaction.
func (s *Service) GetByID(ctx context.Context, txID id.ID) (*Transaction, error) {
	return s.repo.GetByID(ctx, txID)
}

// UpdateFields holds the mutable transaction fields for partial updates.
type UpdateFields struct {
	Category      *string
	Description   *string
	Amount        *types.Money
	PaymentMethod *types.PaymentMethod
	DueDate       *time.Time
	Status        *Status
}

// Update applies a partial update. Cancelled entries are immutable.
func (s *Service) Update(ctx context.Context, txID id.ID, fields UpdateFields) (*Transaction, error) {
	tx, err := s.repo.GetByID(ctx, txID)
	if err != nil {
		return nil, err
	}

	if tx.Status == StatusCancelled {
		return nil, apperror.NewInvalidStatus("transaction", string(tx.Status), "updated")
	}

	if fields.Category != nil {
		tx.Category = *fields.Category
	}
	if fields.Description != nil {
		tx.Description = *fields.Description
	}
	if fields.Amount != nil {
		tx.Amount = *fields.Amount
	}
	if fields.PaymentMethod != nil {
		tx.PaymentMethod = *fields.PaymentMethod
	}
	if fields.DueDate != nil {
		tx.DueDate = fields.DueDate
	}
	if fields.Status != nil {
		if *fields.Status != StatusPending && *fields.Status != StatusCompleted {
			return nil, apperror.NewValidation("status must be pendente or concluida; use the cancel operation instead").
				WithDetail("field", "status")
		}
		tx.Status = *fields.Status
	}

	if err := tx.Validate(ctx); err != nil {
		return nil, err
	}

	tx.Touch()
	if err := s.repo.Update(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// Complete marks a pending transaction as completed.
func (s *Service) Complete(ctx context.Context, txID id.ID) (*Transaction, error) {
	tx, err := s.repo.GetByID(ctx, txID)
	if err != nil {
		return nil, err
	}

	if tx.Status == StatusCancelled {
		return nil, apperror.NewInvalidStatus("transaction", string(tx.Status), string(StatusCompleted))
	}

	tx.Status = StatusCompleted
	tx.Touch()
	if err := s.repo.Update(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// Cancel sets status to cancelled, removing the entry from balance
// computation but keeping it in the historical record.
// Cancelling an already-cancelled entry is a no-op.
func (s *Service) Cancel(ctx context.Context, txID id.ID) (*Transaction, error) {
	tx, err := s.repo.GetByID(ctx, txID)
	if err != nil {
		return nil, err
	}

	if tx.Status == StatusCancelled {
		return tx, nil
	}

	tx.Status = StatusCancelled
	tx.Touch()
	if err := s.repo.Update(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info(ctx, "transaction cancelled", "id", tx.ID)
	return tx, nil
}

// Balance computes Σ income − Σ expense over non-cancelled entries.
// Recomputed on every call; there is no cached value to invalidate.
func (s *Service) Balance(ctx context.Context) (types.Money, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return types.Zero(), err
	}

	balance := types.Zero()
	for _, tx := range all {
		if !tx.CountsForBalance() {
			continue
		}
		balance = balance.Add(tx.SignedAmount())
	}
	return balance, nil
}

// CategorySummary aggregates non-cancelled entries for one category.
type CategorySummary struct {
	Category string      `json:"categoria"`
	Income   types.Money `json:"receitas"`
	Expense  types.Money `json:"despesas"`
}

// SummaryByCategory aggregates income and expense per category,
// excluding cancelled entries, sorted by category name.
func (s *Service) SummaryByCategory(ctx context.Context) ([]CategorySummary, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string]*CategorySummary)
	for _, tx := range all {
		if !tx.CountsForBalance() {
			continue
		}
		entry := byCategory[tx.Category]
		if entry == nil {
			entry = &CategorySummary{
				Category: tx.Category,
				Income:   types.Zero(),
				Expense:  types.Zero(),
			}
			byCategory[tx.Category] = entry
		}
		if tx.Type == TypeIncome {
			entry.Income = entry.Income.Add(tx.Amount)
		} else {
			entry.Expense = entry.Expense.Add(tx.Amount)
		}
	}

	result := make([]CategorySummary, 0, len(byCategory))
	for _, entry := range byCategory {
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Category < result[j].Category
	})
	return result, nil
}

// List retrieves transactions with filtering and pagination.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Transaction], error) {
	return s.repo.List(ctx, filter)
}
