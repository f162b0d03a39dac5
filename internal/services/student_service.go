package services

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"studentpulse/internal/extraction"
	"studentpulse/internal/normalization"
	"studentpulse/internal/spreadsheet"
	"studentpulse/pkg/contracts/domain"
)

// Column vocabularies of the source spreadsheets. Class appears under
// several historical names; candidates are tried in fixed order.
var (
	searchClassColumns = []string{"班级", "新班级", "原班级", "班级_基本信息", "班 级", "班 级_基本信息"}
	newClassColumns    = []string{"新班级", "班级_基本信息", "班 级_基本信息", "班级", "班 级"}
	oldClassColumns    = []string{"原班级", "班级"}
)

const helpColumn = "有无需要学院协助解决的困难"

// infoField describes one row of the personal info card: a display
// label and its column candidates in fallback order.
type infoField struct {
	label   string
	columns []string
}

var infoFields = []infoField{
	{label: "姓名", columns: []string{"姓名"}},
	{label: "学号", columns: []string{"学号"}},
	{label: "分流专业", columns: []string{"分流专业"}},
	{label: "原专业", columns: []string{"原专业"}},
	{label: "新班级", columns: newClassColumns},
	{label: "原班级", columns: oldClassColumns},
	{label: "辅导员", columns: []string{"辅导员"}},
	{label: "政治面貌", columns: []string{"政治面貌"}},
	{label: "民族", columns: []string{"民族"}},
	{label: "性别", columns: []string{"性别"}},
	{label: "是否积极分子", columns: []string{"是否积极分子"}},
	{label: "是否递交入党申请书", columns: []string{"是否递交入党申请书"}},
}

// fallbackScholarshipFields are the general (non year-indexed) columns
// shown when no yearly scholarship column has displayable content.
// 助学金 keeps 助学金.1 as a distinct second candidate.
var fallbackScholarshipFields = []infoField{
	{label: "人民奖学金", columns: []string{"人民奖学金"}},
	{label: "助学奖学金", columns: []string{"助学奖学金"}},
	{label: "助学金", columns: []string{"助学金", "助学金.1"}},
	{label: "获得奖项", columns: []string{"奖项"}},
}

// dataset is the session state: the records of the current upload.
type dataset struct {
	id         string
	source     string
	uploadedAt time.Time
	headers    []string
	records    []*domain.Record
}

// StudentService loads uploaded spreadsheets and assembles per-student
// views. One dataset at a time; a new upload replaces it, a failed
// upload clears it.
type StudentService struct {
	mu        sync.RWMutex
	logger    *slog.Logger
	engine    *normalization.Engine
	assembler *normalization.Assembler
	dataset   *dataset
}

// NewStudentService creates the service on top of the live range store.
func NewStudentService(logger *slog.Logger, ranges *normalization.RangeStore) *StudentService {
	engine := normalization.NewEngine(ranges)
	return &StudentService{
		logger:    logger.With(slog.String("component", "student_service")),
		engine:    engine,
		assembler: normalization.NewAssembler(engine),
	}
}

// Load decodes an uploaded workbook and swaps it in as the current
// dataset. On decode failure the previous dataset is cleared so the
// session never shows stale data next to an error message.
func (s *StudentService) Load(r io.Reader, source string) (*domain.DatasetMeta, error) {
	records, headers, err := spreadsheet.LoadReader(r)
	if err != nil {
		s.mu.Lock()
		s.dataset = nil
		s.mu.Unlock()
		s.logger.Error("upload failed", slog.String("source", source), slog.String("error", err.Error()))
		return nil, fmt.Errorf("decode %s: %w", source, err)
	}

	ds := &dataset{
		id:         uuid.NewString(),
		source:     source,
		uploadedAt: time.Now(),
		headers:    headers,
		records:    records,
	}

	s.mu.Lock()
	s.dataset = ds
	s.mu.Unlock()

	s.logger.Info("dataset loaded",
		slog.String("dataset_id", ds.id),
		slog.String("source", source),
		slog.Int("students", len(records)),
		slog.Int("columns", len(headers)))

	return metaOf(ds), nil
}

// Meta returns metadata for the current dataset.
func (s *StudentService) Meta() (*domain.DatasetMeta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dataset == nil {
		return nil, ErrNoDataset
	}
	return metaOf(s.dataset), nil
}

func metaOf(ds *dataset) *domain.DatasetMeta {
	return &domain.DatasetMeta{
		ID:         ds.id,
		Source:     ds.source,
		UploadedAt: ds.uploadedAt,
		Students:   len(ds.records),
		Columns:    len(ds.headers),
	}
}

// Students lists summaries, optionally filtered by a case-insensitive
// substring query over name, student id and the class column
// candidates. Indices refer to the full dataset, so they stay valid
// regardless of the filter.
func (s *StudentService) Students(query string) ([]domain.StudentSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dataset == nil {
		return nil, ErrNoDataset
	}

	query = strings.ToLower(strings.TrimSpace(query))
	summaries := make([]domain.StudentSummary, 0, len(s.dataset.records))
	for i, rec := range s.dataset.records {
		summary := summarize(i, rec)
		if query != "" && !matchesQuery(rec, summary, query) {
			continue
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func summarize(index int, rec *domain.Record) domain.StudentSummary {
	return domain.StudentSummary{
		Index:     index,
		Name:      extraction.DisplayString(rec.Value("姓名")),
		StudentID: extraction.DisplayString(rec.Value("学号")),
		Class:     firstPresent(rec, searchClassColumns),
	}
}

func matchesQuery(rec *domain.Record, summary domain.StudentSummary, query string) bool {
	candidates := []string{summary.Name, summary.StudentID}
	for _, col := range searchClassColumns {
		candidates = append(candidates, extraction.DisplayString(rec.Value(col)))
	}
	for _, c := range candidates {
		if c == extraction.Absent {
			continue
		}
		if strings.Contains(strings.ToLower(c), query) {
			return true
		}
	}
	return false
}

// firstPresent walks the column candidates and returns the first
// displayable value, or the absent sentinel.
func firstPresent(rec *domain.Record, columns []string) string {
	for _, col := range columns {
		if v := extraction.DisplayString(rec.Value(col)); v != extraction.Absent {
			return v
		}
	}
	return extraction.Absent
}

// Profile assembles the complete view for one student.
func (s *StudentService) Profile(index int) (*domain.StudentProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dataset == nil {
		return nil, ErrNoDataset
	}
	if index < 0 || index >= len(s.dataset.records) {
		return nil, fmt.Errorf("index %d: %w", index, ErrStudentNotFound)
	}
	rec := s.dataset.records[index]

	profile := &domain.StudentProfile{
		Summary:       summarize(index, rec),
		Info:          s.infoCard(rec),
		GPATrend:      s.gpaTrend(rec),
		Radar:         s.radar(rec),
		Scholarships:  s.scholarships(rec),
		PovertyLevels: levelRows(rec, domain.KindPovertyLevel),
		PsychLevels:   levelRows(rec, domain.KindPsychLevel),
	}
	profile.GPAStats = gpaStats(rec, profile.GPATrend)

	if detail := extraction.DisplayString(rec.Value(helpColumn)); detail != extraction.Absent {
		profile.HelpNeeded = true
		profile.HelpDetail = detail
	}
	return profile, nil
}

func (s *StudentService) infoCard(rec *domain.Record) []domain.LabeledValue {
	info := make([]domain.LabeledValue, 0, len(infoFields))
	for _, f := range infoFields {
		info = append(info, domain.LabeledValue{
			Label: f.label,
			Value: firstPresent(rec, f.columns),
		})
	}
	return info
}

func (s *StudentService) gpaTrend(rec *domain.Record) []domain.GPAPoint {
	facts := extraction.Extract(rec, domain.KindSemesterGPA)
	trend := make([]domain.GPAPoint, 0, len(facts))
	for _, f := range facts {
		trend = append(trend, domain.GPAPoint{Period: f.PeriodLabel, GPA: f.Value})
	}
	return trend
}

// gpaStats prefers the spreadsheet's own overall-GPA column and falls
// back to the computed mean of the trend.
func gpaStats(rec *domain.Record, trend []domain.GPAPoint) *domain.GPAStats {
	if len(trend) == 0 {
		return nil
	}
	stats := &domain.GPAStats{
		Semesters: len(trend),
		Highest:   trend[0].GPA,
		Lowest:    trend[0].GPA,
	}
	sum := 0.0
	for _, p := range trend {
		if p.GPA > stats.Highest {
			stats.Highest = p.GPA
		}
		if p.GPA < stats.Lowest {
			stats.Lowest = p.GPA
		}
		sum += p.GPA
	}
	mean := sum / float64(len(trend))

	overall := rec.Value("总绩点")
	if overall == nil {
		overall = rec.Value("平均学分绩点")
	}
	if v, ok := extraction.Float(overall); ok {
		stats.OverallLabel = "总绩点"
		stats.Overall = v
	} else {
		stats.OverallLabel = "总绩点 (计算均值)"
		stats.Overall = mean
	}
	return stats
}

func (s *StudentService) radar(rec *domain.Record) []domain.RadarSeries {
	bundles := extraction.CollectYears(rec, extraction.CompositeKinds()...)
	series := make([]domain.RadarSeries, 0, len(bundles))
	for _, bundle := range bundles {
		if r := s.assembler.Assemble(bundle); r != nil {
			series = append(series, *r)
		}
	}
	return series
}

// scholarships returns the yearly rows when any year has displayable
// content, otherwise the general-column fallback block (with an empty
// year label). Years with nothing to show are dropped.
func (s *StudentService) scholarships(rec *domain.Record) []domain.ScholarshipYear {
	displayOrder := []struct {
		label string
		kind  domain.FactKind
	}{
		{"人民奖学金", domain.KindPeopleScholarship},
		{"助学奖学金", domain.KindAidScholarship},
		{"助学金", domain.KindGrantAid},
		{"获得奖项", domain.KindAward},
	}

	var years []domain.ScholarshipYear
	for _, bundle := range extraction.CollectYears(rec, extraction.ScholarshipKinds()...) {
		items := make([]domain.LabeledValue, 0, len(displayOrder))
		hasContent := false
		for _, d := range displayOrder {
			value := extraction.DisplayString(bundle.Facts[d.kind])
			if value != extraction.Absent {
				hasContent = true
			}
			items = append(items, domain.LabeledValue{Label: d.label, Value: value})
		}
		if hasContent {
			years = append(years, domain.ScholarshipYear{Year: bundle.Label, Items: items})
		}
	}
	if len(years) > 0 {
		return years
	}

	// Fallback: the general columns without a year prefix.
	items := make([]domain.LabeledValue, 0, len(fallbackScholarshipFields))
	hasContent := false
	for _, f := range fallbackScholarshipFields {
		value := firstPresent(rec, f.columns)
		if value != extraction.Absent {
			hasContent = true
		}
		items = append(items, domain.LabeledValue{Label: f.label, Value: value})
	}
	if !hasContent {
		return nil
	}
	return []domain.ScholarshipYear{{Items: items}}
}

func levelRows(rec *domain.Record, kind domain.FactKind) []domain.LevelRow {
	facts := extraction.Extract(rec, kind)
	rows := make([]domain.LevelRow, 0, len(facts))
	for _, f := range facts {
		rows = append(rows, domain.LevelRow{
			Period: f.PeriodLabel,
			Level:  extraction.DisplayString(f.Raw),
		})
	}
	return rows
}
