// Package week canonicalizes calendar weeks. A week is identified by the
// date of its Monday, formatted as a fixed-width YYYY-MM-DD key, so keys
// compare and sort as plain strings.
package week

import "time"

const KeyFormat = "2006-01-02"

// Start returns the Monday of t's week, truncated to midnight in t's
// location.
func Start(t time.Time) time.Time {
	delta := int(t.Weekday()) - int(time.Monday)
	if delta < 0 {
		delta += 7 // Sunday belongs to the week that started the previous Monday
	}
	y, m, d := t.AddDate(0, 0, -delta).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Key returns the canonical week key for the week containing t.
func Key(t time.Time) string {
	return Start(t).Format(KeyFormat)
}

// Next returns t advanced by one week.
func Next(t time.Time) time.Time {
	return t.AddDate(0, 0, 7)
}
