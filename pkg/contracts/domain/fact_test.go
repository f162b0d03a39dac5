package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactKindLabelRoundTrip(t *testing.T) {
	kinds := []FactKind{
		KindSemesterGPA, KindMoral, KindIntellectual, KindPhysicalScore,
		KindPhysicalRating, KindBonus, KindCompositeTotal,
		KindPovertyLevel, KindPsychLevel,
		KindPeopleScholarship, KindAidScholarship, KindGrantAid, KindAward,
	}
	for _, k := range kinds {
		got, ok := KindByLabel(k.Label())
		require.True(t, ok, "kind %s", k)
		assert.Equal(t, k, got)
	}

	_, ok := KindByLabel("出勤率")
	assert.False(t, ok)
}

func TestNormalizableKindsAreNumeric(t *testing.T) {
	for _, k := range NormalizableKinds() {
		assert.True(t, k.IsNumeric(), "kind %s", k)
	}
	assert.False(t, KindPhysicalRating.IsNumeric())
	assert.False(t, KindPovertyLevel.IsNumeric())
	assert.True(t, KindSemesterGPA.IsNumeric())
}

func TestScoreRangeValidity(t *testing.T) {
	assert.True(t, ScoreRange{Min: 0, Max: 100}.IsValid())
	assert.True(t, ScoreRange{Min: -1, Max: 10}.IsValid())
	assert.False(t, ScoreRange{Min: 5, Max: 5}.IsValid())
	assert.False(t, ScoreRange{Min: 10, Max: 5}.IsValid())
}

func TestRecordOrderAndOverwrite(t *testing.T) {
	rec := NewRecord()
	rec.Set("b", 1)
	rec.Set("a", 2)
	rec.Set("b", 3)

	assert.Equal(t, []string{"b", "a"}, rec.Columns())
	assert.Equal(t, 2, rec.Len())
	assert.Equal(t, 3, rec.Value("b"))

	_, ok := rec.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, rec.Value("missing"))
}
