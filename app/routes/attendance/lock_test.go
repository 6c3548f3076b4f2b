package attendance

import (
	"testing"
	"time"
)

func TestWithinEditWindow(t *testing.T) {
	now := time.Date(2026, 3, 20, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"today", time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC), true},
		{"yesterday", time.Date(2026, 3, 19, 0, 0, 0, 0, time.UTC), true},
		{"three days ago", time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC), true},
		{"four days ago", time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), false},
		{"last month", time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC), false},
		{"tomorrow", time.Date(2026, 3, 21, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithinEditWindow(tt.date, now); got != tt.want {
				t.Errorf("WithinEditWindow(%s) = %v, want %v", tt.date.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}
