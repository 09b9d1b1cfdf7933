package memory

import (
	"context"
	"sort"
	"sync"

	"pdv/internal/core/apperror"
	"pdv/internal/core/id"
	"pdv/internal/domain"
	"pdv/internal/domain/ledger"
)

// TransactionStore is an in-memory ledger.Repository.
type TransactionStore struct {
	mu    sync.RWMutex
	items map[id.ID]*ledger.Transaction
}

// NewTransactionStore creates an empty transaction store.
func NewTransactionStore() *TransactionStore {
	return &TransactionStore{items: make(map[id.ID]*ledger.Transaction)}
}

func cloneTransaction(tx *ledger.Transaction) *ledger.Transaction {
	cp := *tx
	if tx.DueDate != nil {
		due := *tx.DueDate
		cp.DueDate = &due
	}
	return &cp
}

// Create stores a new transaction.
func (s *TransactionStore) Create(ctx context.Context, tx *ledger.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[tx.ID]; ok {
		return apperror.NewConflict("transaction already exists").WithDetail("id", tx.ID)
	}
	s.items[tx.ID] = cloneTransaction(tx)
	return nil
}

// GetByID retrieves a transaction by ID.
func (s *TransactionStore) GetByID(ctx context.Context, txID id.ID) (*ledger.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, ok := s.items[txID]
	if !ok {
		return nil, apperror.NewNotFound("transaction", txID)
	}
	return cloneTransaction(tx), nil
}

// Update replaces a stored transaction.
func (s *TransactionStore) Update(ctx context.Context, tx *ledger.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[tx.ID]; !ok {
		return apperror.NewNotFound("transaction", tx.ID)
	}
	s.items[tx.ID] = cloneTransaction(tx)
	return nil
}

// List retrieves transactions matching the filter, newest first.
func (s *TransactionStore) List(ctx context.Context, filter ledger.ListFilter) (domain.ListResult[*ledger.Transaction], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*ledger.Transaction, 0, len(s.items))
	for _, tx := range s.items {
		if filter.Type != "" && tx.Type != filter.Type {
			continue
		}
		if filter.Status != "" && tx.Status != filter.Status {
			continue
		}
		if filter.Category != "" && tx.Category != filter.Category {
			continue
		}
		if !filter.InPeriod(tx.Date) {
			continue
		}
		if filter.Search != "" && !matchesSearch(filter.Search, tx.Description, tx.Category) {
			continue
		}
		matched = append(matched, cloneTransaction(tx))
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})
	return domain.Paginate(matched, filter.ListFilter), nil
}

// ListAll returns every transaction.
func (s *TransactionStore) ListAll(ctx context.Context) ([]*ledger.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*ledger.Transaction, 0, len(s.items))
	for _, tx := range s.items {
		all = append(all, cloneTransaction(tx))
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Date.Before(all[j].Date)
	})
	return all, nil
}
