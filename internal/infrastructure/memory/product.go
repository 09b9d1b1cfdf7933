// Package memory provides the in-process storage backend. Each store
// guards a map with a RWMutex and hands out clones, so callers never
// share mutable state with the store.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"pdv/internal/core/apperror"
	"pdv/internal/core/id"
	"pdv/internal/domain"
	"pdv/internal/domain/catalog"
)

// ProductStore is an in-memory catalog.Repository.
type ProductStore struct {
	mu    sync.RWMutex
	items map[id.ID]*catalog.Product
}

// NewProductStore creates an empty product store.
func NewProductStore() *ProductStore {
	return &ProductStore{items: make(map[id.ID]*catalog.Product)}
}

func cloneProduct(p *catalog.Product) *catalog.Product {
	cp := *p
	return &cp
}

// Create stores a new product.
func (s *ProductStore) Create(ctx context.Context, product *catalog.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[product.ID]; ok {
		return apperror.NewConflict("product already exists").WithDetail("id", product.ID)
	}
	s.items[product.ID] = cloneProduct(product)
	return nil
}

// GetByID retrieves a product by ID.
func (s *ProductStore) GetByID(ctx context.Context, productID id.ID) (*catalog.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.items[productID]
	if !ok {
		return nil, apperror.NewNotFound("product", productID)
	}
	return cloneProduct(product), nil
}

// GetByCode retrieves a product by its code.
func (s *ProductStore) GetByCode(ctx context.Context, code string) (*catalog.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, product := range s.items {
		if product.Code == code {
			return cloneProduct(product), nil
		}
	}
	return nil, apperror.NewNotFound("product", code)
}

// Update replaces a stored product.
func (s *ProductStore) Update(ctx context.Context, product *catalog.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[product.ID]; !ok {
		return apperror.NewNotFound("product", product.ID)
	}
	s.items[product.ID] = cloneProduct(product)
	return nil
}

// List retrieves products matching the filter, sorted by name.
func (s *ProductStore) List(ctx context.Context, filter catalog.ListFilter) (domain.ListResult[*catalog.Product], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*catalog.Product, 0, len(s.items))
	for _, product := range s.items {
		if !filter.IncludeInactive && !product.Active {
			continue
		}
		if filter.Category != "" && !strings.EqualFold(product.Category, filter.Category) {
			continue
		}
		if filter.Search != "" && !matchesSearch(filter.Search, product.Code, product.Name, product.Category) {
			continue
		}
		matched = append(matched, cloneProduct(product))
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Name < matched[j].Name
	})
	return domain.Paginate(matched, filter.ListFilter), nil
}

// ListAll returns every active product.
func (s *ProductStore) ListAll(ctx context.Context) ([]*catalog.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*catalog.Product, 0, len(s.items))
	for _, product := range s.items {
		if !product.Active {
			continue
		}
		all = append(all, cloneProduct(product))
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Name < all[j].Name
	})
	return all, nil
}

// matchesSearch reports whether any field contains the term,
// case-insensitive.
func matchesSearch(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
