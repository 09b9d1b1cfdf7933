package memory

import (
	"context"
	"sort"
	"sync"

	"pdv/internal/core/apperror"
	"pdv/internal/core/id"
	"pdv/internal/domain"
	"pdv/internal/domain/customer"
)

// CustomerStore is an in-memory customer.Repository.
type CustomerStore struct {
	mu    sync.RWMutex
	items map[id.ID]*customer.Customer
}

// NewCustomerStore creates an empty customer store.
func NewCustomerStore() *CustomerStore {
	return &CustomerStore{items: make(map[id.ID]*customer.Customer)}
}

func cloneCustomer(c *customer.Customer) *customer.Customer {
	cc := *c
	return &cc
}

// Create stores a new customer.
func (s *CustomerStore) Create(ctx context.Context, c *customer.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[c.ID]; ok {
		return apperror.NewConflict("customer already exists").WithDetail("id", c.ID)
	}
	s.items[c.ID] = cloneCustomer(c)
	return nil
}

// GetByID retrieves a customer by ID.
func (s *CustomerStore) GetByID(ctx context.Context, customerID id.ID) (*customer.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.items[customerID]
	if !ok {
		return nil, apperror.NewNotFound("customer", customerID)
	}
	return cloneCustomer(c), nil
}

// Update replaces a stored customer.
func (s *CustomerStore) Update(ctx context.Context, c *customer.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[c.ID]; !ok {
		return apperror.NewNotFound("customer", c.ID)
	}
	s.items[c.ID] = cloneCustomer(c)
	return nil
}

// List retrieves customers matching the filter, sorted by name.
func (s *CustomerStore) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*customer.Customer], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*customer.Customer, 0, len(s.items))
	for _, c := range s.items {
		if !filter.IncludeInactive && !c.Active {
			continue
		}
		if filter.Search != "" && !matchesSearch(filter.Search, c.Code, c.Name, c.TaxID, c.Email) {
			continue
		}
		matched = append(matched, cloneCustomer(c))
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Name < matched[j].Name
	})
	return domain.Paginate(matched, filter), nil
}
