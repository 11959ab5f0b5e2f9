package week

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"monday maps to itself", date(2025, time.March, 3), "2025-03-03"},
		{"midweek maps back to monday", date(2025, time.March, 6), "2025-03-03"},
		{"sunday belongs to preceding monday", date(2025, time.March, 9), "2025-03-03"},
		{"next monday starts a new week", date(2025, time.March, 10), "2025-03-10"},
		{"week spanning a month boundary", date(2025, time.April, 1), "2025-03-31"},
		{"week spanning a year boundary", date(2026, time.January, 1), "2025-12-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(tt.in); got != tt.want {
				t.Errorf("Key(%s) = %q, want %q", tt.in.Format(KeyFormat), got, tt.want)
			}
		})
	}
}

func TestStartIsAlwaysMonday(t *testing.T) {
	day := date(2025, time.June, 1)
	for i := 0; i < 21; i++ {
		start := Start(day.AddDate(0, 0, i))
		if start.Weekday() != time.Monday {
			t.Errorf("Start(%s).Weekday() = %s, want Monday", day.AddDate(0, 0, i), start.Weekday())
		}
	}
}

func TestStartIgnoresTimeOfDay(t *testing.T) {
	late := time.Date(2025, time.March, 6, 23, 59, 59, 0, time.UTC)
	if got := Key(late); got != "2025-03-03" {
		t.Errorf("Key late in the day = %q, want %q", got, "2025-03-03")
	}
}

func TestNextSpansExactlySevenDays(t *testing.T) {
	d := date(2025, time.March, 3)
	if got := Key(Next(d)); got != "2025-03-10" {
		t.Errorf("Key(Next(monday)) = %q, want %q", got, "2025-03-10")
	}
	// Advancing any day of a week lands in the immediately following week.
	if got := Key(Next(date(2025, time.March, 9))); got != "2025-03-10" {
		t.Errorf("Key(Next(sunday)) = %q, want %q", got, "2025-03-10")
	}
}
