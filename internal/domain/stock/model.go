// Package stock provides the inventory movement journal: immutable
// records of entries, exits, adjustments, and transfers, plus the
// reports derived from catalog stock levels.
package stock

import (
	"context"
	"strings"
	"time"

	"pdv/internal/core/apperror"
	"pdv/internal/core/id"
	"pdv/internal/core/types"
)

// MovementType classifies a stock movement.
type MovementType string

const (
	TypeEntry      MovementType = "entrada"
	TypeExit       MovementType = "saida"
	TypeAdjustment MovementType = "ajuste"
	TypeTransfer   MovementType = "transferencia"
)

// Movement is one recorded stock change. Movements are append-only:
// they are never updated after being recorded.
//
// Only entry and exit mutate the product's stock level. An adjustment
// stores the before/after snapshot, and a transfer moves quantity
// between free-text locations; neither touches the stock field.
type Movement struct {
	ID        id.ID          `json:"id"`
	ProductID id.ID          `json:"produtoId"`
	Type      MovementType   `json:"tipo"`
	Quantity  types.Quantity `json:"quantidade"`

	// Adjustment snapshot
	QuantityBefore *types.Quantity `json:"quantidadeAnterior,omitempty"`
	QuantityAfter  *types.Quantity `json:"quantidadeNova,omitempty"`

	// Transfer locations (free text, not validated against a registry)
	Origin      string `json:"origem,omitempty"`
	Destination string `json:"destino,omitempty"`

	DocumentRef     string    `json:"documento,omitempty"`
	Reason          string    `json:"motivo"`
	ResponsibleUser string    `json:"responsavel"`
	CreatedAt       time.Time `json:"criadoEm"`
}

// NewMovement creates a movement record stamped now.
func NewMovement(productID id.ID, movType MovementType, quantity types.Quantity) *Movement {
	return &Movement{
		ID:        id.New(),
		ProductID: productID,
		Type:      movType,
		Quantity:  quantity,
		CreatedAt: time.Now().UTC(),
	}
}

// MutatesStock reports whether this movement type changes the
// product's stock level.
func (m *Movement) MutatesStock() bool {
	return m.Type == TypeEntry || m.Type == TypeExit
}

// Validate checks movement invariants.
func (m *Movement) Validate(ctx context.Context) error {
	if id.IsNil(m.ProductID) {
		return apperror.NewValidation("product is required").
			WithDetail("field", "produtoId")
	}

	switch m.Type {
	case TypeEntry, TypeExit, TypeAdjustment, TypeTransfer:
	default:
		return apperror.NewValidation("invalid movement type").
			WithDetail("field", "tipo").
			WithDetail("value", string(m.Type))
	}

	if !m.Quantity.IsPositive() {
		return apperror.NewValidation("quantity must be positive").
			WithDetail("field", "quantidade")
	}

	if m.Type == TypeTransfer {
		if strings.TrimSpace(m.Origin) == "" || strings.TrimSpace(m.Destination) == "" {
			return apperror.NewValidation("transfer requires origin and destination").
				WithDetail("field", "origem/destino")
		}
	}

	return nil
}
