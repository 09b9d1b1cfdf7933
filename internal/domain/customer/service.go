package customer

import (
	"context"
	"strings"

	"pdv/internal/core/apperror"
	"pdv/internal/core/id"
	"pdv/internal/domain"
	"pdv/pkg/logger"
	"pdv/pkg/numerator"
)

// Service provides business operations for the customer registry.
type Service struct {
	repo      Repository
	numerator *numerator.Service
}

// NewService creates a customer service.
func NewService(repo Repository, num *numerator.Service) *Service {
	return &Service{repo: repo, numerator: num}
}

// Create validates and stores a new customer, generating a code when absent.
func (s *Service) Create(ctx context.Context, c *Customer) error {
	if err := c.Validate(ctx); err != nil {
		return err
	}

	if c.Code == "" {
		cfg := numerator.DefaultConfig("CLI")
		cfg.IncludeYear = false
		cfg.ResetPeriod = "never"
		code, err := s.numerator.NextNumber(ctx, cfg, c.CreatedAt)
		if err != nil {
			return apperror.NewInternal(err).WithDetail("op", "generate customer code")
		}
		c.Code = code
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return err
	}

	logger.Info(ctx, "customer created", "id", c.ID, "codigo", c.Code)
	return nil
}

// GetByID retrieves a customer.
func (s *Service) GetByID(ctx context.Context, customerID id.ID) (*Customer, error) {
	return s.repo.GetByID(ctx, customerID)
}

// UpdateFields holds the mutable customer fields for partial updates.
type UpdateFields struct {
	Name    *string
	TaxID   *string
	Email   *string
	Phone   *string
	Address *string
	Active  *bool
}

// Update applies a partial update.
func (s *Service) Update(ctx context.Context, customerID id.ID, fields UpdateFields) (*Customer, error) {
	c, err := s.repo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if fields.Name != nil {
		c.Name = strings.TrimSpace(*fields.Name)
	}
	if fields.TaxID != nil {
		c.TaxID = *fields.TaxID
	}
	if fields.Email != nil {
		c.Email = *fields.Email
	}
	if fields.Phone != nil {
		c.Phone = *fields.Phone
	}
	if fields.Address != nil {
		c.Address = *fields.Address
	}
	if fields.Active != nil {
		c.Active = *fields.Active
	}

	if err := c.Validate(ctx); err != nil {
		return nil, err
	}

	c.Touch()
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Remove deactivates a customer.
func (s *Service) Remove(ctx context.Context, customerID id.ID) error {
	c, err := s.repo.GetByID(ctx, customerID)
	if err != nil {
		return err
	}

	c.Active = false
	c.Touch()
	return s.repo.Update(ctx, c)
}

// List retrieves customers with filtering and pagination.
func (s *Service) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*Customer], error) {
	return s.repo.List(ctx, filter)
}
