// Package types provides shared value types for the domain.
package types

import (
	"github.com/shopspring/decimal"

	"pdv/internal/core/apperror"
)

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point drift on currency math.
type Money = decimal.Decimal

// Quantity represents a stock or line-item quantity.
// Decimal rather than int so fractional units (kg, liters) work.
type Quantity = decimal.Decimal

// NewMoney creates a Money value from a float.
// Prefer NewMoneyFromString for exact values.
func NewMoney(f float64) Money {
	return decimal.NewFromFloat(f)
}

// NewMoneyFromString creates a Money value from a string.
// This is the preferred constructor for monetary values.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants and tests.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NewQuantity creates a Quantity from an integer count.
func NewQuantity(n int64) Quantity {
	return decimal.NewFromInt(n)
}

// Zero returns the zero decimal value.
func Zero() decimal.Decimal {
	return decimal.Zero
}

// PaymentMethod enumerates the accepted payment methods.
// Shared by sales, ledger entries, and fiscal receipts.
type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "dinheiro"
	PaymentCreditCard PaymentMethod = "cartao_credito"
	PaymentDebitCard  PaymentMethod = "cartao_debito"
	PaymentPix        PaymentMethod = "pix"
)

// Valid reports whether the payment method is one of the known values.
func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCash, PaymentCreditCard, PaymentDebitCard, PaymentPix:
		return true
	}
	return false
}

// ValidatePaymentMethod returns a validation error for unknown methods.
func ValidatePaymentMethod(p PaymentMethod) error {
	if !p.Valid() {
		return apperror.NewValidation("invalid payment method").
			WithDetail("field", "formaPagamento").
			WithDetail("value", string(p))
	}
	return nil
}
