package extraction

import (
	"sort"

	"studentpulse/pkg/contracts/domain"
)

// Extract collects every column of the record matching the given kind,
// ordered ascending by period index with column encounter order
// breaking ties. For numeric kinds a value that fails coercion is
// silently skipped; for the other kinds the raw cell value is kept
// as-is and coerced to a display string downstream.
func Extract(rec *domain.Record, kind domain.FactKind) []domain.Fact {
	var facts []domain.Fact
	for _, column := range rec.Columns() {
		m, ok := MatchColumn(column)
		if !ok || m.Kind != kind {
			continue
		}
		raw := rec.Value(column)
		fact := domain.Fact{
			Kind:        kind,
			PeriodIndex: OrderKey(m.Numeral),
			PeriodLabel: m.Label(),
			Raw:         raw,
		}
		if kind.IsNumeric() {
			value, valid := Float(raw)
			if !valid {
				continue
			}
			fact.Value = value
		}
		facts = append(facts, fact)
	}
	sort.SliceStable(facts, func(i, j int) bool {
		return facts[i].PeriodIndex < facts[j].PeriodIndex
	})
	return facts
}

// CollectYears groups the record's columns of the given kinds into
// per-year bundles, keyed by the year numeral exactly as written (so
// "三" and "3" stay distinct bundles). Bundles keep raw cell values;
// coercion happens at scoring/display time. Sorted by period order,
// stable on ties.
func CollectYears(rec *domain.Record, kinds ...domain.FactKind) []domain.YearBundle {
	wanted := make(map[domain.FactKind]bool, len(kinds))
	for _, k := range kinds {
		wanted[k] = true
	}

	byNumeral := make(map[string]*domain.YearBundle)
	var order []string
	for _, column := range rec.Columns() {
		m, ok := MatchColumn(column)
		if !ok || m.Unit != UnitYear || !wanted[m.Kind] {
			continue
		}
		bundle, exists := byNumeral[m.Numeral]
		if !exists {
			bundle = &domain.YearBundle{
				Label: m.Label(),
				Index: OrderKey(m.Numeral),
				Facts: make(map[domain.FactKind]interface{}),
			}
			byNumeral[m.Numeral] = bundle
			order = append(order, m.Numeral)
		}
		// Later columns of the same kind overwrite earlier ones.
		bundle.Facts[m.Kind] = rec.Value(column)
	}

	bundles := make([]domain.YearBundle, 0, len(order))
	for _, numeral := range order {
		bundles = append(bundles, *byNumeral[numeral])
	}
	sort.SliceStable(bundles, func(i, j int) bool {
		return bundles[i].Index < bundles[j].Index
	})
	return bundles
}

// CompositeKinds are the fields grouped into a year bundle before
// composite scoring, physical rating included.
func CompositeKinds() []domain.FactKind {
	return []domain.FactKind{
		domain.KindMoral,
		domain.KindIntellectual,
		domain.KindPhysicalScore,
		domain.KindPhysicalRating,
		domain.KindBonus,
		domain.KindCompositeTotal,
	}
}

// ScholarshipKinds are the yearly scholarship fields in resolution
// priority order.
func ScholarshipKinds() []domain.FactKind {
	return []domain.FactKind{
		domain.KindPeopleScholarship,
		domain.KindAidScholarship,
		domain.KindGrantAid,
		domain.KindAward,
	}
}
