// Package catalog provides the product catalog: the registry of sellable
// items with prices and current stock levels.
package catalog

import (
	"context"
	"strings"
	"time"

	"pdv/internal/core/apperror"
	"pdv/internal/core/id"
	"pdv/internal/core/types"
)

// StockDirection selects how AdjustStock applies a quantity.
type StockDirection string

const (
	StockIncrease StockDirection = "increase"
	StockDecrease StockDirection = "decrease"
)

// Product is a catalog item.
// Stock is mutated only through AdjustStock so UpdatedAt stays accurate.
type Product struct {
	ID        id.ID          `json:"id"`
	Code      string         `json:"codigo"`
	Name      string         `json:"nome"`
	Category  string         `json:"categoria"`
	Unit      string         `json:"unidade"`
	CostPrice types.Money    `json:"precoCusto"`
	SalePrice types.Money    `json:"precoVenda"`
	Stock     types.Quantity `json:"estoque"`
	MinStock  types.Quantity `json:"estoqueMinimo"`
	Active    bool           `json:"ativo"`
	CreatedAt time.Time      `json:"criadoEm"`
	UpdatedAt time.Time      `json:"atualizadoEm"`
}

// NewProduct creates an active product with generated ID and timestamps.
func NewProduct(name string) *Product {
	now := time.Now().UTC()
	return &Product{
		ID:        id.New(),
		Name:      name,
		Unit:      "UN",
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch stamps the last-updated timestamp. Called on every mutation.
func (p *Product) Touch() {
	p.UpdatedAt = time.Now().UTC()
}

// AdjustStock adds or subtracts quantity from the stock level.
// No bounds check against zero here: business validation (refusing exits
// that would go negative) belongs to the stock movement layer.
func (p *Product) AdjustStock(quantity types.Quantity, direction StockDirection) {
	if direction == StockDecrease {
		p.Stock = p.Stock.Sub(quantity)
	} else {
		p.Stock = p.Stock.Add(quantity)
	}
	p.Touch()
}

// BelowMinimum reports whether current stock is under the minimum threshold.
func (p *Product) BelowMinimum() bool {
	return p.Stock.LessThan(p.MinStock)
}

// Validate checks product invariants.
func (p *Product) Validate(ctx context.Context) error {
	if strings.TrimSpace(p.Name) == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "nome")
	}

	if p.SalePrice.IsNegative() {
		return apperror.NewValidation("sale price must not be negative").
			WithDetail("field", "precoVenda")
	}

	if p.CostPrice.IsNegative() {
		return apperror.NewValidation("cost price must not be negative").
			WithDetail("field", "precoCusto")
	}

	if p.MinStock.IsNegative() {
		return apperror.NewValidation("minimum stock must not be negative").
			WithDetail("field", "estoqueMinimo")
	}

	return nil
}
