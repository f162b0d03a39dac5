package extraction

import (
	"strconv"
	"strings"
)

// SentinelIndex is the order key for period labels that cannot be
// resolved: they sort after every known period instead of failing.
const SentinelIndex = 999

// cjkNumerals covers the numeral vocabulary that appears in column
// names. Compounds like 十一 are deliberately not handled; they fall
// through to the sentinel.
var cjkNumerals = map[string]int{
	"一": 1, "二": 2, "三": 3, "四": 4, "五": 5,
	"六": 6, "七": 7, "八": 8, "九": 9, "十": 10,
}

// OrderKey converts a period label ("第三学期", "第3学年", or the bare
// numeral "三"/"3") into a total-order key. Total over all strings:
// unrecognized input returns SentinelIndex, never an error.
func OrderKey(period string) int {
	s := strings.TrimSpace(period)
	s = strings.ReplaceAll(s, "第", "")
	s = strings.ReplaceAll(s, "学期", "")
	s = strings.ReplaceAll(s, "学年", "")
	if n, ok := cjkNumerals[s]; ok {
		return n
	}
	if isASCIIDigits(s) {
		n, _ := strconv.Atoi(s)
		return n
	}
	return SentinelIndex
}

func isASCIIDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
