package dto

import (
	"time"

	"pdv/internal/core/types"
	"pdv/internal/domain/ledger"
)

// CreateTransactionRequest for recording a ledger entry.
type CreateTransactionRequest struct {
	Type          ledger.TransactionType `json:"tipo" binding:"required"`
	Category      string                 `json:"categoria"`
	Description   string                 `json:"descricao" binding:"required"`
	Amount        types.Money            `json:"valor" binding:"required"`
	PaymentMethod types.PaymentMethod    `json:"formaPagamento"`
	Status        ledger.Status          `json:"status"`
	DueDate       *time.Time             `json:"vencimento"`
}

// ToEntity maps the request to a new transaction.
func (r CreateTransactionRequest) ToEntity() *ledger.Transaction {
	tx := ledger.NewTransaction(r.Type, r.Amount)
	tx.Category = r.Category
	tx.Description = r.Description
	tx.PaymentMethod = r.PaymentMethod
	if r.Status != "" {
		tx.Status = r.Status
	}
	tx.DueDate = r.DueDate
	return tx
}

// UpdateTransactionRequest for partial ledger entry updates.
type UpdateTransactionRequest struct {
	Category      *string              `json:"categoria"`
	Description   *string              `json:"descricao"`
	Amount        *types.Money         `json:"valor"`
	PaymentMethod *types.PaymentMethod `json:"formaPagamento"`
	DueDate       *time.Time           `json:"vencimento"`
	Status        *ledger.Status       `json:"status"`
}

// ToFields maps the request to ledger update fields.
func (r UpdateTransactionRequest) ToFields() ledger.UpdateFields {
	return ledger.UpdateFields{
		Category:      r.Category,
		Description:   r.Description,
		Amount:        r.Amount,
		PaymentMethod: r.PaymentMethod,
		DueDate:       r.DueDate,
		Status:        r.Status,
	}
}

// BalanceResponse carries the current ledger balance.
type BalanceResponse struct {
	Balance types.Money `json:"saldo"`
}
