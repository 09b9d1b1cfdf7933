// Package domain provides shared list/pagination types for the domain layer.
package domain

import "time"

// ListFilter contains common filtering options for list operations.
type ListFilter struct {
	// Search matches name/code/description fields, case-insensitive
	Search string

	// IncludeInactive includes soft-deleted (inactive) records
	IncludeInactive bool

	// Period bounds (inclusive from, exclusive to)
	DateFrom *time.Time
	DateTo   *time.Time

	// Pagination
	Limit  int
	Offset int
}

// DefaultListFilter returns sensible defaults.
func DefaultListFilter() ListFilter {
	return ListFilter{Limit: 50}
}

// InPeriod reports whether t falls inside the filter's date bounds.
func (f ListFilter) InPeriod(t time.Time) bool {
	if f.DateFrom != nil && t.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && !t.Before(*f.DateTo) {
		return false
	}
	return true
}

// ListResult contains paginated results.
type ListResult[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
}

// Paginate applies limit/offset to a full result slice and wraps it.
func Paginate[T any](items []T, f ListFilter) ListResult[T] {
	total := int64(len(items))

	offset := f.Offset
	if offset > len(items) {
		offset = len(items)
	}
	items = items[offset:]

	if f.Limit > 0 && len(items) > f.Limit {
		items = items[:f.Limit]
	}

	return ListResult[T]{
		Items:      items,
		TotalCount: total,
		Limit:      f.Limit,
		Offset:     f.Offset,
	}
}
