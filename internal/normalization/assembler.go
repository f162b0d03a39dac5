package normalization

import (
	"studentpulse/internal/extraction"
	"studentpulse/pkg/contracts/domain"
)

// radarOrder is the canonical category order of the composite radar,
// regardless of input column order.
var radarOrder = []domain.FactKind{
	domain.KindMoral,
	domain.KindIntellectual,
	domain.KindPhysicalScore,
	domain.KindBonus,
	domain.KindCompositeTotal,
}

// Assembler turns a year bundle into its chart-ready radar series.
type Assembler struct {
	engine *Engine
}

// NewAssembler creates an assembler using the given engine.
func NewAssembler(engine *Engine) *Assembler {
	return &Assembler{engine: engine}
}

// Assemble builds the radar series for one academic year, or nil when
// the year yields no chart. Gating rule: a year without a coercible
// composite total produces no output at all, even when every other
// field is valid. Fields absent from the bundle are left out; present
// fields contribute their normalized value and their raw value (0 when
// not coercible).
func (a *Assembler) Assemble(bundle domain.YearBundle) *domain.RadarSeries {
	if _, ok := extraction.Float(bundle.Facts[domain.KindCompositeTotal]); !ok {
		return nil
	}

	series := &domain.RadarSeries{Year: bundle.Label}
	for _, kind := range radarOrder {
		raw, present := bundle.Facts[kind]
		if !present {
			continue
		}
		rawValue, _ := extraction.Float(raw)
		series.Categories = append(series.Categories, kind.Label())
		series.Normalized = append(series.Normalized, a.engine.Normalize(raw, kind))
		series.Raw = append(series.Raw, rawValue)
	}
	if len(series.Categories) == 0 {
		return nil
	}

	if rating, ok := bundle.Facts[domain.KindPhysicalRating]; ok {
		if display := extraction.DisplayString(rating); display != extraction.Absent {
			series.PhysicalRating = display
		}
	}
	return series
}
