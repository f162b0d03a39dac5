package domain

// FactKind identifies a category of repeating, period-indexed column
// (semester GPA, yearly moral score, yearly scholarship, ...).
type FactKind string

const (
	KindSemesterGPA    FactKind = "semester_gpa"
	KindMoral          FactKind = "moral"
	KindIntellectual   FactKind = "intellectual"
	KindPhysicalScore  FactKind = "physical_score"
	KindPhysicalRating FactKind = "physical_rating"
	KindBonus          FactKind = "bonus"
	KindCompositeTotal FactKind = "composite_total"
	KindPovertyLevel   FactKind = "poverty_level"
	KindPsychLevel     FactKind = "psych_level"

	// Scholarship kinds, in resolution priority order.
	KindPeopleScholarship FactKind = "people_scholarship"
	KindAidScholarship    FactKind = "aid_scholarship"
	KindGrantAid          FactKind = "grant_aid"
	KindAward             FactKind = "award"
)

// factLabels maps each kind to the field vocabulary used in column
// names and chart categories.
var factLabels = map[FactKind]string{
	KindSemesterGPA:       "绩点",
	KindMoral:             "德育",
	KindIntellectual:      "智育",
	KindPhysicalScore:     "体测成绩",
	KindPhysicalRating:    "体测评级",
	KindBonus:             "附加分",
	KindCompositeTotal:    "综测总分",
	KindPovertyLevel:      "困难等级",
	KindPsychLevel:        "心理评测等级",
	KindPeopleScholarship: "人民奖学金",
	KindAidScholarship:    "助学奖学金",
	KindGrantAid:          "助学金",
	KindAward:             "获得奖项",
}

// Label returns the display vocabulary for the kind.
func (k FactKind) Label() string {
	if l, ok := factLabels[k]; ok {
		return l
	}
	return string(k)
}

// IsNumeric reports whether values of this kind carry a numeric score.
// Non-numeric kinds (levels, ratings, scholarships) keep their raw cell
// value through extraction and are coerced to display strings downstream.
func (k FactKind) IsNumeric() bool {
	switch k {
	case KindSemesterGPA, KindMoral, KindIntellectual, KindPhysicalScore,
		KindBonus, KindCompositeTotal:
		return true
	}
	return false
}

// NormalizableKinds returns the kinds that carry a configurable
// normalization range, in canonical radar order.
func NormalizableKinds() []FactKind {
	return []FactKind{KindMoral, KindIntellectual, KindPhysicalScore,
		KindBonus, KindCompositeTotal}
}

// KindByLabel resolves a field vocabulary label back to its kind.
func KindByLabel(label string) (FactKind, bool) {
	for k, l := range factLabels {
		if l == label {
			return k, true
		}
	}
	return "", false
}

// Fact is one extracted (kind, period, value) triple. Value holds the
// coerced float for numeric kinds; Raw always holds the original cell.
type Fact struct {
	Kind        FactKind    `json:"kind"`
	PeriodIndex int         `json:"period_index"`
	PeriodLabel string      `json:"period_label"`
	Value       float64     `json:"value,omitempty"`
	Raw         interface{} `json:"raw,omitempty"`
}

// YearBundle groups all facts of one academic year by kind, keyed by
// the raw cell values. A bundle without a coercible composite total
// produces no radar output.
type YearBundle struct {
	Label string                   `json:"label"`
	Index int                      `json:"index"`
	Facts map[FactKind]interface{} `json:"-"`
}

// ScoreRange is a configurable (min,max) pair mapping a raw field value
// onto the 0-100 radar scale.
type ScoreRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Span returns max-min.
func (r ScoreRange) Span() float64 {
	return r.Max - r.Min
}

// IsValid reports whether the range can normalize without a division
// fault: max must be strictly greater than min.
func (r ScoreRange) IsValid() bool {
	return r.Max > r.Min
}
