// Package id generates entity identifiers.
// Identifiers are UUIDv7, so listing by id follows creation order.
package id

import (
	"github.com/google/uuid"
)

// ID identifies every stored entity.
type ID = uuid.UUID

// New generates a time-ordered id.
func New() ID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return v7
}

// Parse converts a string to an ID with validation.
func Parse(s string) (ID, error) {
	return uuid.Parse(s)
}

// Nil returns the zero-value id.
func Nil() ID {
	return uuid.Nil
}

// IsNil reports whether id is the zero value.
func IsNil(id ID) bool {
	return id == uuid.Nil
}
