package dto

import (
	"pdv/internal/core/types"
	"pdv/internal/domain/catalog"
)

// CreateProductRequest for registering a catalog product.
type CreateProductRequest struct {
	Code     string          `json:"codigo"`
	Name     string          `json:"nome" binding:"required"`
	Category string          `json:"categoria"`
	Unit     string          `json:"unidade"`
	Cost     *types.Money    `json:"precoCusto"`
	Price    *types.Money    `json:"precoVenda"`
	Stock    *types.Quantity `json:"estoque"`
	MinStock *types.Quantity `json:"estoqueMinimo"`
}

// ToEntity maps the request to a new product.
func (r CreateProductRequest) ToEntity() *catalog.Product {
	product := catalog.NewProduct(r.Name)
	product.Code = r.Code
	product.Category = r.Category
	if r.Unit != "" {
		product.Unit = r.Unit
	}
	if r.Cost != nil {
		product.CostPrice = *r.Cost
	}
	if r.Price != nil {
		product.SalePrice = *r.Price
	}
	if r.Stock != nil {
		product.Stock = *r.Stock
	}
	if r.MinStock != nil {
		product.MinStock = *r.MinStock
	}
	return product
}

// UpdateProductRequest for partial product updates.
type UpdateProductRequest struct {
	Name     *string         `json:"nome"`
	Category *string         `json:"categoria"`
	Unit     *string         `json:"unidade"`
	Cost     *types.Money    `json:"precoCusto"`
	Price    *types.Money    `json:"precoVenda"`
	MinStock *types.Quantity `json:"estoqueMinimo"`
	Active   *bool           `json:"ativo"`
}

// ToFields maps the request to catalog update fields.
func (r UpdateProductRequest) ToFields() catalog.UpdateFields {
	return catalog.UpdateFields{
		Name:      r.Name,
		Category:  r.Category,
		Unit:      r.Unit,
		CostPrice: r.Cost,
		SalePrice: r.Price,
		MinStock:  r.MinStock,
		Active:    r.Active,
	}
}
