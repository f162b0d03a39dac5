package domain

import (
	"time"
)

// DatasetMeta describes the currently loaded spreadsheet.
type DatasetMeta struct {
	ID         string    `json:"id"`
	Source     string    `json:"source"`
	UploadedAt time.Time `json:"uploaded_at"`
	Students   int       `json:"students"`
	Columns    int       `json:"columns"`
}

// StudentSummary is one row of the student selector list. Index is the
// position in the full dataset and stays valid across search filtering.
type StudentSummary struct {
	Index     int    `json:"index"`
	Name      string `json:"name"`
	StudentID string `json:"student_id"`
	Class     string `json:"class"`
}

// LabeledValue is a display label paired with its coerced display string.
type LabeledValue struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// GPAPoint is one semester on the GPA trend line.
type GPAPoint struct {
	Period string  `json:"period"`
	GPA    float64 `json:"gpa"`
}

// GPAStats summarizes the trend. Overall prefers the spreadsheet's own
// 总绩点/平均学分绩点 column and falls back to the computed mean, with
// OverallLabel recording which source was used.
type GPAStats struct {
	OverallLabel string  `json:"overall_label"`
	Overall      float64 `json:"overall"`
	Highest      float64 `json:"highest"`
	Lowest       float64 `json:"lowest"`
	Semesters    int     `json:"semesters"`
}

// RadarSeries is the chart-ready composite score for one academic year:
// parallel category/normalized/raw arrays in canonical field order, plus
// the physical rating carried alongside as a display string.
type RadarSeries struct {
	Year           string    `json:"year"`
	Categories     []string  `json:"categories"`
	Normalized     []float64 `json:"normalized"`
	Raw            []float64 `json:"raw"`
	PhysicalRating string    `json:"physical_rating,omitempty"`
}

// ScholarshipYear holds one year's scholarship display rows. Year is
// empty for the general-column fallback block.
type ScholarshipYear struct {
	Year  string         `json:"year,omitempty"`
	Items []LabeledValue `json:"items"`
}

// LevelRow is a per-period display string (poverty level, psych level).
type LevelRow struct {
	Period string `json:"period"`
	Level  string `json:"level"`
}

// StudentProfile is the complete per-student view consumed by the
// rendering layer.
type StudentProfile struct {
	Summary       StudentSummary    `json:"summary"`
	Info          []LabeledValue    `json:"info"`
	HelpNeeded    bool              `json:"help_needed"`
	HelpDetail    string            `json:"help_detail,omitempty"`
	GPATrend      []GPAPoint        `json:"gpa_trend"`
	GPAStats      *GPAStats         `json:"gpa_stats,omitempty"`
	Radar         []RadarSeries     `json:"radar"`
	Scholarships  []ScholarshipYear `json:"scholarships"`
	PovertyLevels []LevelRow        `json:"poverty_levels"`
	PsychLevels   []LevelRow        `json:"psych_levels"`
}
