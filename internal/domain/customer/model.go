// Package customer provides the customer registry.
package customer

import (
	"context"
	"strings"
	"time"

	"pdv/internal/core/apperror"
	"pdv/internal/core/id"
)

// Customer is a registered buyer. TaxID holds CPF or CNPJ as entered.
type Customer struct {
	ID        id.ID     `json:"id"`
	Code      string    `json:"codigo"`
	Name      string    `json:"nome"`
	TaxID     string    `json:"cpfCnpj"`
	Email     string    `json:"email"`
	Phone     string    `json:"telefone"`
	Address   string    `json:"endereco"`
	Active    bool      `json:"ativo"`
	CreatedAt time.Time `json:"criadoEm"`
	UpdatedAt time.Time `json:"atualizadoEm"`
}

// NewCustomer creates an active customer with generated ID and timestamps.
func NewCustomer(name string) *Customer {
	now := time.Now().UTC()
	return &Customer{
		ID:        id.New(),
		Name:      name,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch stamps the last-updated timestamp.
func (c *Customer) Touch() {
	c.UpdatedAt = time.Now().UTC()
}

// Validate checks customer invariants.
func (c *Customer) Validate(ctx context.Context) error {
	if strings.TrimSpace(c.Name) == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "nome")
	}
	return nil
}
