package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studentpulse/pkg/contracts/domain"
)

func TestMatchColumn(t *testing.T) {
	tests := []struct {
		name        string
		column      string
		wantKind    domain.FactKind
		wantNumeral string
		wantLabel   string
		wantOK      bool
	}{
		{
			name:        "semester gpa CJK",
			column:      "第一学期绩点",
			wantKind:    domain.KindSemesterGPA,
			wantNumeral: "一",
			wantLabel:   "第一学期",
			wantOK:      true,
		},
		{
			name:        "semester gpa ascii",
			column:      "第3学期绩点",
			wantKind:    domain.KindSemesterGPA,
			wantNumeral: "3",
			wantLabel:   "第3学期",
			wantOK:      true,
		},
		{
			name:        "moral score",
			column:      "第二学年德育",
			wantKind:    domain.KindMoral,
			wantNumeral: "二",
			wantLabel:   "第二学年",
			wantOK:      true,
		},
		{
			name:        "intellectual score",
			column:      "第一学年智育",
			wantKind:    domain.KindIntellectual,
			wantNumeral: "一",
			wantLabel:   "第一学年",
			wantOK:      true,
		},
		{
			name:        "physical score",
			column:      "第一学年体测成绩",
			wantKind:    domain.KindPhysicalScore,
			wantNumeral: "一",
			wantLabel:   "第一学年",
			wantOK:      true,
		},
		{
			name:        "physical rating",
			column:      "第一学年体测评级",
			wantKind:    domain.KindPhysicalRating,
			wantNumeral: "一",
			wantLabel:   "第一学年",
			wantOK:      true,
		},
		{
			name:        "bonus",
			column:      "第四学年附加分",
			wantKind:    domain.KindBonus,
			wantNumeral: "四",
			wantLabel:   "第四学年",
			wantOK:      true,
		},
		{
			name:        "composite total",
			column:      "第一学年综测总分",
			wantKind:    domain.KindCompositeTotal,
			wantNumeral: "一",
			wantLabel:   "第一学年",
			wantOK:      true,
		},
		{
			name:        "poverty level",
			column:      "第二学年困难等级",
			wantKind:    domain.KindPovertyLevel,
			wantNumeral: "二",
			wantLabel:   "第二学年",
			wantOK:      true,
		},
		{
			name:        "psych level long form",
			column:      "第一学年心理评测等级",
			wantKind:    domain.KindPsychLevel,
			wantNumeral: "一",
			wantLabel:   "第一学年",
			wantOK:      true,
		},
		{
			name:        "psych level short form",
			column:      "第一学年心理等级",
			wantKind:    domain.KindPsychLevel,
			wantNumeral: "一",
			wantLabel:   "第一学年",
			wantOK:      true,
		},
		{
			name:        "people scholarship",
			column:      "第一学年人民奖学金",
			wantKind:    domain.KindPeopleScholarship,
			wantNumeral: "一",
			wantLabel:   "第一学年",
			wantOK:      true,
		},
		{
			name:        "scholarship keyword inside longer suffix",
			column:      "第二学年获得奖项情况",
			wantKind:    domain.KindAward,
			wantNumeral: "二",
			wantLabel:   "第二学年",
			wantOK:      true,
		},
		{
			name:        "grant aid",
			column:      "第一学年助学金",
			wantKind:    domain.KindGrantAid,
			wantNumeral: "一",
			wantLabel:   "第一学年",
			wantOK:      true,
		},
		{name: "not anchored", column: "备注第一学期绩点", wantOK: false},
		{name: "no numeral", column: "第学期绩点", wantOK: false},
		{name: "no unit", column: "第一绩点", wantOK: false},
		{name: "unknown suffix", column: "第一学年出勤率", wantOK: false},
		{name: "unit mismatch for gpa", column: "第一学年绩点", wantOK: false},
		{name: "plain column", column: "姓名", wantOK: false},
		{name: "suffix must be exact", column: "第一学年德育备注", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := MatchColumn(tt.column)
			require.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.wantKind, m.Kind)
			assert.Equal(t, tt.wantNumeral, m.Numeral)
			assert.Equal(t, tt.wantLabel, m.Label())
		})
	}
}

// When several scholarship keywords appear in one suffix, the first
// rule in priority order wins.
func TestMatchColumnScholarshipPriority(t *testing.T) {
	m, ok := MatchColumn("第一学年人民奖学金及奖项")
	require.True(t, ok)
	assert.Equal(t, domain.KindPeopleScholarship, m.Kind)

	// 助学奖学金 outranks the bare 奖项 keyword.
	m, ok = MatchColumn("第一学年助学奖学金奖项")
	require.True(t, ok)
	assert.Equal(t, domain.KindAidScholarship, m.Kind)
}
