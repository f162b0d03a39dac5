package extraction

import (
	"strings"

	"studentpulse/pkg/contracts/domain"
)

const (
	periodPrefix = "第"
	UnitSemester = "学期"
	UnitYear     = "学年"
)

// Match is a resolved column name: the fact kind, the raw period
// numeral and the period unit it was indexed by.
type Match struct {
	Kind    domain.FactKind
	Numeral string
	Unit    string
}

// Label reconstructs the full period label, e.g. "第三学期".
func (m Match) Label() string {
	return periodPrefix + m.Numeral + m.Unit
}

// rule is one entry of the table-driven matcher. A column's suffix (the
// text after the period unit) matches either one of the exact
// alternatives or, for scholarship kinds, by keyword containment.
type rule struct {
	kind    domain.FactKind
	unit    string
	exact   []string
	keyword string
}

// matchRules is evaluated in order and the first hit wins. The
// scholarship keyword rules sit last and their relative order is the
// resolution priority when a column name contains several keywords.
var matchRules = []rule{
	{kind: domain.KindSemesterGPA, unit: UnitSemester, exact: []string{"绩点"}},
	{kind: domain.KindMoral, unit: UnitYear, exact: []string{"德育"}},
	{kind: domain.KindIntellectual, unit: UnitYear, exact: []string{"智育"}},
	{kind: domain.KindPhysicalScore, unit: UnitYear, exact: []string{"体测成绩"}},
	{kind: domain.KindPhysicalRating, unit: UnitYear, exact: []string{"体测评级"}},
	{kind: domain.KindBonus, unit: UnitYear, exact: []string{"附加分"}},
	{kind: domain.KindCompositeTotal, unit: UnitYear, exact: []string{"综测总分"}},
	{kind: domain.KindPovertyLevel, unit: UnitYear, exact: []string{"困难等级"}},
	{kind: domain.KindPsychLevel, unit: UnitYear, exact: []string{"心理评测等级", "心理等级"}},
	{kind: domain.KindPeopleScholarship, unit: UnitYear, keyword: "人民奖学金"},
	{kind: domain.KindAidScholarship, unit: UnitYear, keyword: "助学奖学金"},
	{kind: domain.KindGrantAid, unit: UnitYear, keyword: "助学金"},
	{kind: domain.KindAward, unit: UnitYear, keyword: "奖项"},
}

// MatchColumn classifies a column name. Matching is anchored at the
// start of the name: literal 第, a run of CJK or ASCII numerals, the
// period unit, then the fact suffix. Pure function; unmatched columns
// report ok=false.
func MatchColumn(column string) (Match, bool) {
	numeral, unit, suffix, ok := splitPeriod(column)
	if !ok {
		return Match{}, false
	}
	for _, r := range matchRules {
		if r.unit != unit {
			continue
		}
		if r.keyword != "" {
			if strings.Contains(suffix, r.keyword) {
				return Match{Kind: r.kind, Numeral: numeral, Unit: unit}, true
			}
			continue
		}
		for _, alt := range r.exact {
			if suffix == alt {
				return Match{Kind: r.kind, Numeral: numeral, Unit: unit}, true
			}
		}
	}
	return Match{}, false
}

// splitPeriod peels 第 + numeral run + unit off the front of a column
// name and returns the remaining suffix.
func splitPeriod(column string) (numeral, unit, suffix string, ok bool) {
	rest, found := strings.CutPrefix(column, periodPrefix)
	if !found {
		return "", "", "", false
	}
	runes := []rune(rest)
	i := 0
	for i < len(runes) && isPeriodNumeral(runes[i]) {
		i++
	}
	if i == 0 {
		return "", "", "", false
	}
	numeral = string(runes[:i])
	tail := string(runes[i:])
	for _, u := range []string{UnitSemester, UnitYear} {
		if s, found := strings.CutPrefix(tail, u); found {
			return numeral, u, s, true
		}
	}
	return "", "", "", false
}

func isPeriodNumeral(r rune) bool {
	if r >= '0' && r <= '9' {
		return true
	}
	return strings.ContainsRune("一二三四五六七八九十", r)
}
