// Package fiscal provides the cupom fiscal: the retail fiscal receipt
// document, either standalone or derived from a sale.
//
// A cupom carries value copies only. The customer is an embedded
// snapshot and the items duplicate the sale's lines at generation
// time; later edits to the sale do not propagate.
package fiscal

import (
	"context"
	"strings"
	"time"

	"pdv/internal/core/apperror"
	"pdv/internal/core/id"
	"pdv/internal/core/types"
)

// Status is the lifecycle state of a cupom fiscal.
type Status string

const (
	StatusPending   Status = "pendente"
	StatusEmitted   Status = "emitido"
	StatusCancelled Status = "cancelado"
)

// CustomerSnapshot is the embedded customer data on a cupom.
// It is a flat value copy, not a reference to the registry.
type CustomerSnapshot struct {
	Name    string `json:"nome"`
	TaxID   string `json:"cpfCnpj"`
	Address string `json:"endereco"`
}

// Item is one fiscal line.
type Item struct {
	Code        string         `json:"codigo"`
	Description string         `json:"descricao"`
	Quantity    types.Quantity `json:"quantidade"`
	UnitValue   types.Money    `json:"valorUnitario"`
	TotalValue  types.Money    `json:"valorTotal"`
}

// LineTotal computes quantity × unit value.
func (i Item) LineTotal() types.Money {
	return i.Quantity.Mul(i.UnitValue)
}

// CupomFiscal is a fiscal receipt document.
type CupomFiscal struct {
	ID            id.ID               `json:"id"`
	Number        string              `json:"numero"`
	EmissionDate  time.Time           `json:"dataEmissao"`
	Customer      CustomerSnapshot    `json:"cliente"`
	Items         []Item              `json:"itens"`
	Total         types.Money         `json:"total"`
	PaymentMethod types.PaymentMethod `json:"formaPagamento"`
	Status        Status              `json:"status"`

	// SaleID links back to the originating sale when derived from one.
	// Informational only: totals are point-in-time copies, never
	// re-validated against the sale.
	SaleID *id.ID `json:"vendaId,omitempty"`

	CreatedAt time.Time `json:"criadoEm"`
	UpdatedAt time.Time `json:"atualizadoEm"`
}

// NewCupom creates a pending cupom dated now.
func NewCupom(customer CustomerSnapshot, paymentMethod types.PaymentMethod) *CupomFiscal {
	now := time.Now().UTC()
	return &CupomFiscal{
		ID:            id.New(),
		EmissionDate:  now,
		Customer:      customer,
		Items:         make([]Item, 0),
		Total:         types.Zero(),
		PaymentMethod: paymentMethod,
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Touch stamps the last-updated timestamp.
func (c *CupomFiscal) Touch() {
	c.UpdatedAt = time.Now().UTC()
}

// AddItem appends a fiscal line and recomputes the total. A line
// arriving with a zero total gets quantity × unit value; a non-zero
// total is kept as given (sale lines carry discounts folded in).
func (c *CupomFiscal) AddItem(item Item) {
	if item.TotalValue.IsZero() {
		item.TotalValue = item.LineTotal()
	}
	c.Items = append(c.Items, item)
	c.RecomputeTotal()
}

// RecomputeTotal derives the document total from the stored line
// totals. Line totals are values of record, never recomputed here.
func (c *CupomFiscal) RecomputeTotal() {
	total := types.Zero()
	for i := range c.Items {
		total = total.Add(c.Items[i].TotalValue)
	}
	c.Total = total
}

// Validate checks cupom invariants.
func (c *CupomFiscal) Validate(ctx context.Context) error {
	if strings.TrimSpace(c.Customer.Name) == "" {
		return apperror.NewValidation("customer name is required").
			WithDetail("field", "cliente.nome")
	}

	if err := types.ValidatePaymentMethod(c.PaymentMethod); err != nil {
		return err
	}

	if len(c.Items) == 0 {
		return apperror.NewValidation("at least one item is required").
			WithDetail("field", "itens")
	}

	for i, item := range c.Items {
		if !item.Quantity.IsPositive() {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("field", "itens").
				WithDetail("item", i+1)
		}
		if item.UnitValue.IsNegative() {
			return apperror.NewValidation("unit value must not be negative").
				WithDetail("field", "itens").
				WithDetail("item", i+1)
		}
	}

	return nil
}
