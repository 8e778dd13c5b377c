package flag

import "testing"

func TestCoerceDays(t *testing.T) {
	tests := []struct {
		name string
		days int
		want int
	}{
		{"Valid", 14, 14},
		{"LowerBound", 1, 1},
		{"UpperBound", 30, 30},
		{"Zero", 0, 7},
		{"Negative", -1, 7},
		{"TooLarge", 31, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CoerceDays(tt.days); got != tt.want {
				t.Errorf("CoerceDays(%d) = %d, want %d", tt.days, got, tt.want)
			}
		})
	}
}
