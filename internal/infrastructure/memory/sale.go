package memory

import (
	"context"
	"sort"
	"sync"

	"pdv/internal/core/apperror"
	"pdv/internal/core/id"
	"pdv/internal/domain"
	"pdv/internal/domain/sale"
)

// SaleStore is an in-memory sale.Repository.
type SaleStore struct {
	mu    sync.RWMutex
	items map[id.ID]*sale.Sale
}

// NewSaleStore creates an empty sale store.
func NewSaleStore() *SaleStore {
	return &SaleStore{items: make(map[id.ID]*sale.Sale)}
}

func cloneSale(doc *sale.Sale) *sale.Sale {
	cp := *doc
	cp.Items = make([]sale.Item, len(doc.Items))
	copy(cp.Items, doc.Items)
	return &cp
}

// Create stores a new sale.
func (s *SaleStore) Create(ctx context.Context, doc *sale.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[doc.ID]; ok {
		return apperror.NewConflict("sale already exists").WithDetail("id", doc.ID)
	}
	s.items[doc.ID] = cloneSale(doc)
	return nil
}

// GetByID retrieves a sale by ID.
func (s *SaleStore) GetByID(ctx context.Context, saleID id.ID) (*sale.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.items[saleID]
	if !ok {
		return nil, apperror.NewNotFound("sale", saleID)
	}
	return cloneSale(doc), nil
}

// Update replaces a stored sale.
func (s *SaleStore) Update(ctx context.Context, doc *sale.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[doc.ID]; !ok {
		return apperror.NewNotFound("sale", doc.ID)
	}
	s.items[doc.ID] = cloneSale(doc)
	return nil
}

// List retrieves sales matching the filter, newest first.
func (s *SaleStore) List(ctx context.Context, filter sale.ListFilter) (domain.ListResult[*sale.Sale], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*sale.Sale, 0, len(s.items))
	for _, doc := range s.items {
		if filter.CustomerID != nil && doc.CustomerID != *filter.CustomerID {
			continue
		}
		if filter.Status != "" && doc.Status != filter.Status {
			continue
		}
		if !filter.InPeriod(doc.Date) {
			continue
		}
		if filter.Search != "" && !matchesSearch(filter.Search, doc.Number) {
			continue
		}
		matched = append(matched, cloneSale(doc))
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})
	return domain.Paginate(matched, filter.ListFilter), nil
}
