package numerator

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapStore struct {
	mu       sync.Mutex
	counters map[string]int64
}

func newMapStore() *mapStore {
	return &mapStore{counters: make(map[string]int64)}
}

func (s *mapStore) Next(ctx context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[key]++
	return s.counters[key], nil
}

func (s *mapStore) Set(ctx context.Context, key string, value int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[key] = value
	return nil
}

func TestNextNumberFormatsAndIncrements(t *testing.T) {
	svc := New(newMapStore())
	ctx := context.Background()
	cfg := DefaultConfig("VND")
	period := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	num, err := svc.NextNumber(ctx, cfg, period)
	require.NoError(t, err)
	assert.Equal(t, "VND-2026-00001", num)

	num, err = svc.NextNumber(ctx, cfg, period)
	require.NoError(t, err)
	assert.Equal(t, "VND-2026-00002", num)
}

func TestSequencesAreIndependentPerPrefix(t *testing.T) {
	svc := New(newMapStore())
	ctx := context.Background()
	period := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	sales, err := svc.NextNumber(ctx, DefaultConfig("VND"), period)
	require.NoError(t, err)
	cupom, err := svc.NextNumber(ctx, DefaultConfig("CF"), period)
	require.NoError(t, err)

	assert.Equal(t, "VND-2026-00001", sales)
	assert.Equal(t, "CF-2026-00001", cupom)
}

func TestYearlyResetUsesSeparateKeys(t *testing.T) {
	svc := New(newMapStore())
	ctx := context.Background()
	cfg := DefaultConfig("VND")

	y1 := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	y2 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	num, err := svc.NextNumber(ctx, cfg, y1)
	require.NoError(t, err)
	assert.Equal(t, "VND-2025-00001", num)

	num, err = svc.NextNumber(ctx, cfg, y2)
	require.NoError(t, err)
	assert.Equal(t, "VND-2026-00001", num)
}

func TestNoYearFormat(t *testing.T) {
	svc := New(newMapStore())
	ctx := context.Background()

	cfg := DefaultConfig("PRD")
	cfg.IncludeYear = false
	cfg.ResetPeriod = "never"

	num, err := svc.NextNumber(ctx, cfg, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "PRD-00001", num)
}

func TestSetNextNumber(t *testing.T) {
	svc := New(newMapStore())
	ctx := context.Background()
	cfg := DefaultConfig("VND")
	period := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, svc.SetNextNumber(ctx, cfg, period, 100))

	num, err := svc.NextNumber(ctx, cfg, period)
	require.NoError(t, err)
	assert.Equal(t, "VND-2026-00101", num)
}

func TestParseNumber(t *testing.T) {
	assert.Equal(t, int64(42), ParseNumber("VND-2026-00042"))
	assert.Equal(t, int64(7), ParseNumber("PRD-00007"))
	assert.Equal(t, int64(-1), ParseNumber("garbage"))
	assert.Equal(t, int64(-1), ParseNumber("VND-2026-abc"))
	assert.Equal(t, int64(-1), ParseNumber("00042"))
}
