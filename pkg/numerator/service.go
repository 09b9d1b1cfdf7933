// Package numerator provides sequential document numbering.
// Numbers are unique per prefix and reset period; the backing store
// defines durability (the in-memory store is process-lifetime only).
package numerator

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SequenceStore allocates the next value for a named sequence.
// Implementations must be safe for concurrent use.
type SequenceStore interface {
	// Next increments and returns the counter for key.
	// The first call for a key returns 1.
	Next(ctx context.Context, key string) (int64, error)

	// Set forces the counter for key (used when importing legacy data).
	Set(ctx context.Context, key string, value int64) error
}

// Config holds numbering configuration.
type Config struct {
	// Prefix added to all numbers (e.g., "VND", "CF")
	Prefix string

	// IncludeYear adds the year to the number
	IncludeYear bool

	// PadWidth is the minimum number width (default 5)
	PadWidth int

	// ResetPeriod: "year", "month", "never"
	ResetPeriod string
}

// DefaultConfig returns sensible defaults.
func DefaultConfig(prefix string) Config {
	return Config{
		Prefix:      prefix,
		IncludeYear: true,
		PadWidth:    5,
		ResetPeriod: "year",
	}
}

// Service generates formatted document numbers.
type Service struct {
	store SequenceStore
}

// New creates a numerator service over the given store.
func New(store SequenceStore) *Service {
	return &Service{store: store}
}

// NextNumber generates the next document number for the period.
// Pattern: PREFIX-YEAR-NNNNN (e.g., VND-2026-00001).
func (s *Service) NextNumber(ctx context.Context, cfg Config, period time.Time) (string, error) {
	if s == nil || s.store == nil {
		return "", fmt.Errorf("numerator service is not initialized")
	}

	key := buildKey(cfg, period)
	num, err := s.store.Next(ctx, key)
	if err != nil {
		return "", fmt.Errorf("next number for %s: %w", key, err)
	}

	return formatNumber(cfg, period, num), nil
}

// Next generates the next number using the default config for prefix.
func (s *Service) Next(ctx context.Context, prefix string) (string, error) {
	return s.NextNumber(ctx, DefaultConfig(prefix), time.Now())
}

// SetNextNumber forces the sequence so the next generated number is value+1.
func (s *Service) SetNextNumber(ctx context.Context, cfg Config, period time.Time, value int64) error {
	return s.store.Set(ctx, buildKey(cfg, period), value)
}

func buildKey(cfg Config, period time.Time) string {
	switch cfg.ResetPeriod {
	case "month":
		return fmt.Sprintf("%s_%s", cfg.Prefix, period.Format("2006_01"))
	case "year":
		return fmt.Sprintf("%s_%s", cfg.Prefix, period.Format("2006"))
	default:
		return cfg.Prefix
	}
}

func formatNumber(cfg Config, period time.Time, num int64) string {
	padWidth := cfg.PadWidth
	if padWidth == 0 {
		padWidth = 5
	}

	if cfg.IncludeYear {
		return fmt.Sprintf("%s-%s-%0*d", cfg.Prefix, period.Format("2006"), padWidth, num)
	}
	return fmt.Sprintf("%s-%0*d", cfg.Prefix, padWidth, num)
}

// ParseNumber extracts the numeric part from a formatted number.
// The counter is always the last dash-separated segment, with or
// without a year segment. Returns -1 if parsing fails.
func ParseNumber(formatted string) int64 {
	parts := strings.Split(formatted, "-")
	if len(parts) < 2 {
		return -1
	}

	num, err := strconv.ParseInt(parts[len(parts)-1], 10, 64)
	if err != nil {
		return -1
	}
	return num
}
