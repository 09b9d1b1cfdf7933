package dto

import (
	"pdv/internal/core/types"
	"pdv/internal/domain/fiscal"
)

// CupomItemRequest is one inbound fiscal line.
type CupomItemRequest struct {
	Code        string         `json:"codigo"`
	Description string         `json:"descricao" binding:"required"`
	Quantity    types.Quantity `json:"quantidade" binding:"required"`
	UnitValue   types.Money    `json:"valorUnitario" binding:"required"`
}

// CreateCupomRequest for issuing a standalone cupom fiscal.
type CreateCupomRequest struct {
	Customer      fiscal.CustomerSnapshot `json:"cliente" binding:"required"`
	PaymentMethod types.PaymentMethod     `json:"formaPagamento" binding:"required"`
	Items         []CupomItemRequest      `json:"itens" binding:"required"`
}

// ToEntity maps the request to a new pending cupom.
func (r CreateCupomRequest) ToEntity() *fiscal.CupomFiscal {
	cupom := fiscal.NewCupom(r.Customer, r.PaymentMethod)
	for _, item := range r.Items {
		cupom.AddItem(fiscal.Item{
			Code:        item.Code,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitValue:   item.UnitValue,
		})
	}
	return cupom
}
