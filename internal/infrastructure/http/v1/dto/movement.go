package dto

import (
	"pdv/internal/core/apperror"
	"pdv/internal/core/id"
	"pdv/internal/core/types"
	"pdv/internal/domain/stock"
)

// CreateMovementRequest for recording a stock movement.
type CreateMovementRequest struct {
	ProductID   string             `json:"produtoId" binding:"required"`
	Type        stock.MovementType `json:"tipo" binding:"required"`
	Quantity    types.Quantity     `json:"quantidade" binding:"required"`
	Origin      string             `json:"origem"`
	Destination string             `json:"destino"`
	DocumentRef string             `json:"documento"`
	Reason      string             `json:"motivo"`
}

// ToEntity maps the request to a new movement.
func (r CreateMovementRequest) ToEntity() (*stock.Movement, error) {
	productID, err := id.Parse(r.ProductID)
	if err != nil {
		return nil, apperror.NewValidation("invalid product id").
			WithDetail("field", "produtoId")
	}

	movement := stock.NewMovement(productID, r.Type, r.Quantity)
	movement.Origin = r.Origin
	movement.Destination = r.Destination
	movement.DocumentRef = r.DocumentRef
	movement.Reason = r.Reason
	return movement, nil
}
