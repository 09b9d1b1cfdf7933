// Package sale provides the sales document: ordered line items
// referencing catalog products, with totals always recomputed from
// the items.
package sale

import (
	"context"
	"time"

	"pdv/internal/core/apperror"
	"pdv/internal/core/id"
	"pdv/internal/core/types"
)

// Status is the lifecycle state of a sale.
// pending → completed | cancelled; both end states are terminal.
type Status string

const (
	StatusPending   Status = "pendente"
	StatusCompleted Status = "concluida"
	StatusCancelled Status = "cancelada"
)

// Item is one line of a sale. UnitPrice is a snapshot taken at sale
// time; later catalog price changes do not affect recorded sales.
type Item struct {
	ProductID   id.ID          `json:"produtoId"`
	ProductCode string         `json:"codigoProduto"`
	Description string         `json:"descricao"`
	Quantity    types.Quantity `json:"quantidade"`
	UnitPrice   types.Money    `json:"precoUnitario"`
	Discount    types.Money    `json:"desconto"`
	Total       types.Money    `json:"total"`
}

// LineTotal computes quantity × unit price − discount.
func (i Item) LineTotal() types.Money {
	return i.Quantity.Mul(i.UnitPrice).Sub(i.Discount)
}

// Sale is a sales document.
type Sale struct {
	ID            id.ID               `json:"id"`
	Number        string              `json:"numero"`
	Date          time.Time           `json:"data"`
	CustomerID    id.ID               `json:"clienteId"`
	Items         []Item              `json:"itens"`
	Subtotal      types.Money         `json:"subtotal"`
	Total         types.Money         `json:"total"`
	PaymentMethod types.PaymentMethod `json:"formaPagamento"`
	Status        Status              `json:"status"`
	AmountPaid    types.Money         `json:"valorPago"`
	CreatedAt     time.Time           `json:"criadoEm"`
	UpdatedAt     time.Time           `json:"atualizadoEm"`
}

// NewSale creates a pending sale dated now.
func NewSale(customerID id.ID, paymentMethod types.PaymentMethod) *Sale {
	now := time.Now().UTC()
	return &Sale{
		ID:            id.New(),
		Date:          now,
		CustomerID:    customerID,
		Items:         make([]Item, 0),
		Subtotal:      types.Zero(),
		Total:         types.Zero(),
		PaymentMethod: paymentMethod,
		Status:        StatusPending,
		AmountPaid:    types.Zero(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Touch stamps the last-updated timestamp.
func (s *Sale) Touch() {
	s.UpdatedAt = time.Now().UTC()
}

// AddItem appends a line and recomputes totals.
func (s *Sale) AddItem(item Item) {
	item.Total = item.LineTotal()
	s.Items = append(s.Items, item)
	s.RecomputeTotals()
}

// RecomputeTotals derives subtotal and total from the line items.
// Total equals subtotal: there is no tax or document-level discount.
func (s *Sale) RecomputeTotals() {
	subtotal := types.Zero()
	for i := range s.Items {
		s.Items[i].Total = s.Items[i].LineTotal()
		subtotal = subtotal.Add(s.Items[i].Total)
	}
	s.Subtotal = subtotal
	s.Total = subtotal
}

// Validate checks sale invariants.
func (s *Sale) Validate(ctx context.Context) error {
	if id.IsNil(s.CustomerID) {
		return apperror.NewValidation("customer is required").
			WithDetail("field", "clienteId")
	}

	if err := types.ValidatePaymentMethod(s.PaymentMethod); err != nil {
		return err
	}

	if len(s.Items) == 0 {
		return apperror.NewValidation("at least one item is required").
			WithDetail("field", "itens")
	}

	for i, item := range s.Items {
		if id.IsNil(item.ProductID) {
			return apperror.NewValidation("product is required").
				WithDetail("field", "itens").
				WithDetail("item", i+1)
		}
		if !item.Quantity.IsPositive() {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("field", "itens").
				WithDetail("item", i+1)
		}
		if item.Discount.IsNegative() {
			return apperror.NewValidation("discount must not be negative").
				WithDetail("field", "itens").
				WithDetail("item", i+1)
		}
		if item.Discount.GreaterThan(item.Quantity.Mul(item.UnitPrice)) {
			return apperror.NewValidation("discount must not exceed the line amount").
				WithDetail("field", "itens").
				WithDetail("item", i+1)
		}
	}

	return nil
}

// CanTransition reports whether the sale may move to the given status.
func (s *Sale) CanTransition(to Status) error {
	if s.Status == to {
		return apperror.NewInvalidStatus("sale", string(s.Status), string(to))
	}
	if s.Status != StatusPending {
		return apperror.NewInvalidStatus("sale", string(s.Status), string(to))
	}
	return nil
}
