package dto

import (
	"pdv/internal/core/apperror"
	"pdv/internal/core/id"
	"pdv/internal/core/types"
	"pdv/internal/domain/sale"
)

// SaleItemRequest is one inbound sale line.
type SaleItemRequest struct {
	ProductID   string          `json:"produtoId" binding:"required"`
	Description string          `json:"descricao"`
	Quantity    types.Quantity  `json:"quantidade" binding:"required"`
	UnitPrice   *types.Money    `json:"precoUnitario"`
	Discount    *types.Money    `json:"desconto"`
}

// CreateSaleRequest for opening a sale.
type CreateSaleRequest struct {
	CustomerID    string              `json:"clienteId" binding:"required"`
	PaymentMethod types.PaymentMethod `json:"formaPagamento" binding:"required"`
	Items         []SaleItemRequest   `json:"itens" binding:"required"`
}

// ToEntity maps the request to a new pending sale.
func (r CreateSaleRequest) ToEntity() (*sale.Sale, error) {
	customerID, err := id.Parse(r.CustomerID)
	if err != nil {
		return nil, apperror.NewValidation("invalid customer id").
			WithDetail("field", "clienteId")
	}

	doc := sale.NewSale(customerID, r.PaymentMethod)
	for _, item := range r.Items {
		productID, err := id.Parse(item.ProductID)
		if err != nil {
			return nil, apperror.NewValidation("invalid product id").
				WithDetail("field", "itens.produtoId")
		}

		line := sale.Item{
			ProductID:   productID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   types.Zero(),
			Discount:    types.Zero(),
		}
		if item.UnitPrice != nil {
			line.UnitPrice = *item.UnitPrice
		}
		if item.Discount != nil {
			line.Discount = *item.Discount
		}
		doc.AddItem(line)
	}
	return doc, nil
}
