package dto

import (
	"pdv/internal/domain/customer"
)

// CreateCustomerRequest for registering a customer.
type CreateCustomerRequest struct {
	Code    string `json:"codigo"`
	Name    string `json:"nome" binding:"required"`
	TaxID   string `json:"cpfCnpj"`
	Email   string `json:"email"`
	Phone   string `json:"telefone"`
	Address string `json:"endereco"`
}

// ToEntity maps the request to a new customer.
func (r CreateCustomerRequest) ToEntity() *customer.Customer {
	c := customer.NewCustomer(r.Name)
	c.Code = r.Code
	c.TaxID = r.TaxID
	c.Email = r.Email
	c.Phone = r.Phone
	c.Address = r.Address
	return c
}

// UpdateCustomerRequest for partial customer updates.
type UpdateCustomerRequest struct {
	Name    *string `json:"nome"`
	TaxID   *string `json:"cpfCnpj"`
	Email   *string `json:"email"`
	Phone   *string `json:"telefone"`
	Address *string `json:"endereco"`
	Active  *bool   `json:"ativo"`
}

// ToFields maps the request to customer update fields.
func (r UpdateCustomerRequest) ToFields() customer.UpdateFields {
	return customer.UpdateFields{
		Name:    r.Name,
		TaxID:   r.TaxID,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
		Active:  r.Active,
	}
}
