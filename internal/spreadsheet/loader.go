// Package spreadsheet decodes an uploaded Excel workbook into student
// records: first sheet, first row as headers, one record per data row.
package spreadsheet

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"studentpulse/pkg/contracts/domain"
)

// Load opens a workbook from disk and decodes it.
func Load(path string) ([]*domain.Record, []string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return decode(f)
}

// LoadReader decodes a workbook from a stream (the upload path).
func LoadReader(r io.Reader) ([]*domain.Record, []string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return decode(f)
}

func decode(f *excelize.File) ([]*domain.Record, []string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("workbook has no sheets")
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	headers := mangleHeaders(rows[0])
	if len(headers) == 0 {
		return nil, nil, fmt.Errorf("sheet %q has no header row", sheet)
	}

	var records []*domain.Record
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		rec := domain.NewRecord()
		for i, header := range headers {
			var value interface{}
			if i < len(row) {
				if cell := strings.TrimSpace(row[i]); cell != "" {
					value = cell
				}
			}
			rec.Set(header, value)
		}
		records = append(records, rec)
	}

	slog.Debug("workbook decoded",
		slog.String("sheet", sheet),
		slog.Int("columns", len(headers)),
		slog.Int("records", len(records)))

	return records, headers, nil
}

// mangleHeaders trims header cells, names blank headers "Unnamed: N"
// and suffixes duplicates with ".1", ".2", ... so repeated columns
// (e.g. 助学金 and 助学金.1) stay distinct lookup candidates.
func mangleHeaders(raw []string) []string {
	headers := make([]string, 0, len(raw))
	seen := make(map[string]int, len(raw))
	for i, cell := range raw {
		name := strings.TrimSpace(cell)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n)
		} else {
			seen[name] = 1
		}
		headers = append(headers, name)
	}
	return headers
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
