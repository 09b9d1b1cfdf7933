// Package dto provides request and response shapes for the HTTP API.
// Domain entities carry their own JSON tags and are returned directly;
// the DTOs here cover inbound payloads and query binding.
package dto

import (
	"time"

	"pdv/internal/core/id"
	"pdv/internal/domain"
)

// ListQuery binds common list query parameters.
type ListQuery struct {
	Search          string     `form:"busca"`
	IncludeInactive bool       `form:"incluirInativos"`
	DateFrom        *time.Time `form:"de" time_format:"2006-01-02"`
	DateTo          *time.Time `form:"ate" time_format:"2006-01-02"`
	Limit           int        `form:"limit"`
	Offset          int        `form:"offset"`
}

// ToFilter converts the query to a domain list filter.
func (q ListQuery) ToFilter() domain.ListFilter {
	filter := domain.DefaultListFilter()
	filter.Search = q.Search
	filter.IncludeInactive = q.IncludeInactive
	filter.DateFrom = q.DateFrom
	filter.DateTo = q.DateTo
	if q.Limit > 0 {
		filter.Limit = q.Limit
	}
	filter.Offset = q.Offset
	return filter
}

// IDResponse for create operations.
type IDResponse struct {
	ID string `json:"id"`
}

// NewIDResponse creates an ID response.
func NewIDResponse(i id.ID) IDResponse {
	return IDResponse{ID: i.String()}
}

// SuccessResponse for operations without data.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
