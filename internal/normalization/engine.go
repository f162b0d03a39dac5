package normalization

import (
	"studentpulse/internal/extraction"
	"studentpulse/pkg/contracts/domain"
)

// fallbackRange applies to fields with no configured entry.
var fallbackRange = domain.ScoreRange{Min: 0, Max: 100}

// Engine maps raw field values onto the 0-100 scale using the live
// range configuration.
type Engine struct {
	ranges *RangeStore
}

// NewEngine creates an engine bound to the given store.
func NewEngine(ranges *RangeStore) *Engine {
	return &Engine{ranges: ranges}
}

// Normalize scales a raw value into [0,100] using the field's current
// bounds, read fresh on every call. Absent or unparseable values score
// 0: a missing field counts as zero on the radar rather than dropping
// the axis. A degenerate range also yields 0 instead of a division
// fault (the store rejects such writes, but config files bypass it).
func (e *Engine) Normalize(value interface{}, kind domain.FactKind) float64 {
	v, ok := extraction.Float(value)
	if !ok {
		return 0
	}
	r, found := e.ranges.Range(kind)
	if !found {
		r = fallbackRange
	}
	span := r.Span()
	if span == 0 {
		return 0
	}
	scaled := (v - r.Min) / span * 100
	if scaled < 0 {
		return 0
	}
	if scaled > 100 {
		return 100
	}
	return scaled
}
