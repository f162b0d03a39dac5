package extraction

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Absent is the display sentinel for missing/blank/invalid cells.
const Absent = "无"

// DisplayString coerces a raw cell value to its display form. Nil, NaN,
// blank and whitespace-only values and the literal tokens "nan"/"none"
// (case-insensitive) all become the Absent sentinel; everything else
// keeps its natural string form. Total and idempotent.
func DisplayString(v interface{}) string {
	if v == nil {
		return Absent
	}
	if f, ok := rawFloat(v); ok && math.IsNaN(f) {
		return Absent
	}
	s := fmt.Sprint(v)
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Absent
	}
	switch strings.ToLower(trimmed) {
	case "nan", "none":
		return Absent
	}
	return s
}

// Float coerces a raw cell value to a float64. Nil, NaN and values that
// fail numeric parsing report ok=false; callers decide whether that
// means "skip the column" (extraction) or "score as zero"
// (normalization). This is the single numeric policy for the whole
// system.
func Float(v interface{}) (float64, bool) {
	if v == nil {
		return 0, false
	}
	if f, ok := rawFloat(v); ok {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	s := strings.TrimSpace(fmt.Sprint(v))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// rawFloat unwraps the numeric Go types a cell value may arrive as.
func rawFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	return 0, false
}
