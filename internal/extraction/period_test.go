package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "bare CJK numeral", input: "三", want: 3},
		{name: "CJK ten", input: "十", want: 10},
		{name: "full semester label", input: "第一学期", want: 1},
		{name: "full year label", input: "第3学年", want: 3},
		{name: "ascii digits", input: "12", want: 12},
		{name: "ascii in label", input: "第12学期", want: 12},
		{name: "compound CJK falls to sentinel", input: "十一", want: SentinelIndex},
		{name: "garbage", input: "abc", want: SentinelIndex},
		{name: "empty", input: "", want: SentinelIndex},
		{name: "mixed digits and letters", input: "3a", want: SentinelIndex},
		{name: "whitespace wrapped", input: " 二 ", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OrderKey(tt.input))
		})
	}
}

// OrderKey must be total: any input maps to some integer.
func TestOrderKeyNeverPanics(t *testing.T) {
	inputs := []string{"", "第", "学期", "第学期", "第第第", "无", "-1", "9999999999999999999999"}
	for _, in := range inputs {
		assert.NotPanics(t, func() { OrderKey(in) }, "input %q", in)
	}
}
