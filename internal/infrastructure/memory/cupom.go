package memory

import (
	"context"
	"sort"
	"sync"

	"pdv/internal/core/apperror"
	"pdv/internal/core/id"
	"pdv/internal/domain"
	"pdv/internal/domain/fiscal"
)

// CupomStore is an in-memory fiscal.Repository.
type CupomStore struct {
	mu    sync.RWMutex
	items map[id.ID]*fiscal.CupomFiscal
}

// NewCupomStore creates an empty cupom store.
func NewCupomStore() *CupomStore {
	return &CupomStore{items: make(map[id.ID]*fiscal.CupomFiscal)}
}

func cloneCupom(c *fiscal.CupomFiscal) *fiscal.CupomFiscal {
	cp := *c
	cp.Items = make([]fiscal.Item, len(c.Items))
	copy(cp.Items, c.Items)
	if c.SaleID != nil {
		saleID := *c.SaleID
		cp.SaleID = &saleID
	}
	return &cp
}

// Create stores a new cupom.
func (s *CupomStore) Create(ctx context.Context, cupom *fiscal.CupomFiscal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[cupom.ID]; ok {
		return apperror.NewConflict("cupom already exists").WithDetail("id", cupom.ID)
	}
	s.items[cupom.ID] = cloneCupom(cupom)
	return nil
}

// GetByID retrieves a cupom by ID.
func (s *CupomStore) GetByID(ctx context.Context, cupomID id.ID) (*fiscal.CupomFiscal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cupom, ok := s.items[cupomID]
	if !ok {
		return nil, apperror.NewNotFound("cupom", cupomID)
	}
	return cloneCupom(cupom), nil
}

// Update replaces a stored cupom.
func (s *CupomStore) Update(ctx context.Context, cupom *fiscal.CupomFiscal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[cupom.ID]; !ok {
		return apperror.NewNotFound("cupom", cupom.ID)
	}
	s.items[cupom.ID] = cloneCupom(cupom)
	return nil
}

// List retrieves cupons matching the filter, newest first.
func (s *CupomStore) List(ctx context.Context, filter fiscal.ListFilter) (domain.ListResult[*fiscal.CupomFiscal], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*fiscal.CupomFiscal, 0, len(s.items))
	for _, cupom := range s.items {
		if filter.Status != "" && cupom.Status != filter.Status {
			continue
		}
		if filter.SaleID != nil && (cupom.SaleID == nil || *cupom.SaleID != *filter.SaleID) {
			continue
		}
		if !filter.InPeriod(cupom.EmissionDate) {
			continue
		}
		if filter.Search != "" && !matchesSearch(filter.Search, cupom.Number, cupom.Customer.Name) {
			continue
		}
		matched = append(matched, cloneCupom(cupom))
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].EmissionDate.After(matched[j].EmissionDate)
	})
	return domain.Paginate(matched, filter.ListFilter), nil
}
