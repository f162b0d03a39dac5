package domain

// Record is a single spreadsheet row: a mapping from column name to raw
// cell value (string, float64 or nil for an empty cell). Column encounter
// order is preserved because extraction uses it as the tie-breaker when
// two columns map to the same period.
//
// Records are read-only once built; the core never mutates them.
type Record struct {
	columns []string
	cells   map[string]interface{}
}

// NewRecord creates an empty record.
func NewRecord() *Record {
	return &Record{cells: make(map[string]interface{})}
}

// Set stores a cell value. The first Set for a column fixes its position
// in the encounter order; later Sets overwrite the value in place.
func (r *Record) Set(column string, value interface{}) {
	if _, exists := r.cells[column]; !exists {
		r.columns = append(r.columns, column)
	}
	r.cells[column] = value
}

// Get returns the raw cell value and whether the column exists.
func (r *Record) Get(column string) (interface{}, bool) {
	v, ok := r.cells[column]
	return v, ok
}

// Value returns the raw cell value, or nil when the column is absent.
func (r *Record) Value(column string) interface{} {
	return r.cells[column]
}

// Columns returns the column names in encounter order. The returned
// slice is shared; callers must not modify it.
func (r *Record) Columns() []string {
	return r.columns
}

// Len returns the number of columns.
func (r *Record) Len() int {
	return len(r.columns)
}
