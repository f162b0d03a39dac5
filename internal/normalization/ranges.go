package normalization

import (
	"fmt"
	"sync"

	"studentpulse/pkg/contracts/domain"
)

// DefaultRanges returns the built-in (min,max) bounds per normalizable
// field.
func DefaultRanges() map[domain.FactKind]domain.ScoreRange {
	return map[domain.FactKind]domain.ScoreRange{
		domain.KindMoral:          {Min: 12, Max: 15},
		domain.KindIntellectual:   {Min: 0, Max: 105},
		domain.KindPhysicalScore:  {Min: 0, Max: 120},
		domain.KindBonus:          {Min: -1, Max: 10},
		domain.KindCompositeTotal: {Min: 0, Max: 110},
	}
}

// RangeStore holds the mutable normalization configuration. It outlives
// dataset and student changes within a session and is read on every
// normalization call, so writes are visible immediately. Guarded by a
// RWMutex because HTTP requests read it concurrently.
type RangeStore struct {
	mu     sync.RWMutex
	ranges map[domain.FactKind]domain.ScoreRange
}

// NewRangeStore creates a store seeded with the defaults.
func NewRangeStore() *RangeStore {
	return &RangeStore{ranges: DefaultRanges()}
}

// Range returns the current bounds for a field.
func (s *RangeStore) Range(kind domain.FactKind) (domain.ScoreRange, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.ranges[kind]
	return r, ok
}

// Set replaces the bounds for a field. Degenerate ranges (max <= min)
// are rejected here so a division fault can never reach Normalize.
func (s *RangeStore) Set(kind domain.FactKind, r domain.ScoreRange) error {
	if !r.IsValid() {
		return fmt.Errorf("range for %s: max (%v) must be greater than min (%v)",
			kind.Label(), r.Max, r.Min)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ranges[kind] = r
	return nil
}

// Snapshot returns a copy of the current configuration.
func (s *RangeStore) Snapshot() map[domain.FactKind]domain.ScoreRange {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[domain.FactKind]domain.ScoreRange, len(s.ranges))
	for k, r := range s.ranges {
		out[k] = r
	}
	return out
}
