package memory

import (
	"context"
	"sort"
	"sync"

	"pdv/internal/core/apperror"
	"pdv/internal/core/id"
	"pdv/internal/domain"
	"pdv/internal/domain/stock"
)

// MovementStore is an in-memory stock.Repository. Movements are
// append-only, so there is no update path.
type MovementStore struct {
	mu    sync.RWMutex
	items map[id.ID]*stock.Movement
}

// NewMovementStore creates an empty movement store.
func NewMovementStore() *MovementStore {
	return &MovementStore{items: make(map[id.ID]*stock.Movement)}
}

func cloneMovement(m *stock.Movement) *stock.Movement {
	cp := *m
	if m.QuantityBefore != nil {
		before := *m.QuantityBefore
		cp.QuantityBefore = &before
	}
	if m.QuantityAfter != nil {
		after := *m.QuantityAfter
		cp.QuantityAfter = &after
	}
	return &cp
}

// Create stores a new movement.
func (s *MovementStore) Create(ctx context.Context, movement *stock.Movement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[movement.ID]; ok {
		return apperror.NewConflict("movement already exists").WithDetail("id", movement.ID)
	}
	s.items[movement.ID] = cloneMovement(movement)
	return nil
}

// GetByID retrieves a movement by ID.
func (s *MovementStore) GetByID(ctx context.Context, movementID id.ID) (*stock.Movement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	movement, ok := s.items[movementID]
	if !ok {
		return nil, apperror.NewNotFound("movement", movementID)
	}
	return cloneMovement(movement), nil
}

// List retrieves movements matching the filter, newest first.
func (s *MovementStore) List(ctx context.Context, filter stock.ListFilter) (domain.ListResult[*stock.Movement], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*stock.Movement, 0, len(s.items))
	for _, movement := range s.items {
		if filter.ProductID != nil && movement.ProductID != *filter.ProductID {
			continue
		}
		if filter.Type != "" && movement.Type != filter.Type {
			continue
		}
		if !filter.InPeriod(movement.CreatedAt) {
			continue
		}
		if filter.Search != "" && !matchesSearch(filter.Search, movement.DocumentRef, movement.Reason) {
			continue
		}
		matched = append(matched, cloneMovement(movement))
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return domain.Paginate(matched, filter.ListFilter), nil
}
