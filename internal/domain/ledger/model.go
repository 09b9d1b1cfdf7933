// Package ledger provides the financial transaction record set:
// income and expense entries and the derived balance.
package ledger

import (
	"context"
	"strings"
	"time"

	"pdv/internal/core/apperror"
	"pdv/internal/core/id"
	"pdv/internal/core/types"
)

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	TypeIncome  TransactionType = "receita"
	TypeExpense TransactionType = "despesa"
)

// Status is the lifecycle state of a transaction.
type Status string

const (
	StatusPending   Status = "pendente"
	StatusCompleted Status = "concluida"
	StatusCancelled Status = "cancelada"
)

// Transaction is a single financial entry.
// Cancelled entries stay in the historical record but are excluded
// from the balance computation.
type Transaction struct {
	ID              id.ID               `json:"id"`
	Date            time.Time           `json:"data"`
	Type            TransactionType     `json:"tipo"`
	Category        string              `json:"categoria"`
	Description     string              `json:"descricao"`
	Amount          types.Money         `json:"valor"`
	PaymentMethod   types.PaymentMethod `json:"formaPagamento"`
	Status          Status              `json:"status"`
	DueDate         *time.Time          `json:"vencimento,omitempty"`
	ResponsibleUser string              `json:"responsavel"`
	CreatedAt       time.Time           `json:"criadoEm"`
	UpdatedAt       time.Time           `json:"atualizadoEm"`
}

// NewTransaction creates a pending entry dated now.
func NewTransaction(txType TransactionType, amount types.Money) *Transaction {
	now := time.Now().UTC()
	return &Transaction{
		ID:        id.New(),
		Date:      now,
		Type:      txType,
		Amount:    amount,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch stamps the last-updated timestamp.
func (t *Transaction) Touch() {
	t.UpdatedAt = time.Now().UTC()
}

// SignedAmount returns the amount with sign by type.
// Income is positive, expense negative.
func (t *Transaction) SignedAmount() types.Money {
	if t.Type == TypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// CountsForBalance reports whether the entry participates in the balance.
func (t *Transaction) CountsForBalance() bool {
	return t.Status != StatusCancelled
}

// Validate checks transaction invariants.
func (t *Transaction) Validate(ctx context.Context) error {
	if t.Type != TypeIncome && t.Type != TypeExpense {
		return apperror.NewValidation("type must be receita or despesa").
			WithDetail("field", "tipo")
	}

	if !t.Amount.IsPositive() {
		return apperror.NewValidation("amount must be positive").
			WithDetail("field", "valor")
	}

	if strings.TrimSpace(t.Description) == "" {
		return apperror.NewValidation("description is required").
			WithDetail("field", "descricao")
	}

	if t.PaymentMethod != "" {
		if err := types.ValidatePaymentMethod(t.PaymentMethod); err != nil {
			return err
		}
	}

	return nil
}
