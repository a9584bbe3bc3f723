package utils

import "time"

// DayWindowUTC returns the [start, end) bounds of the UTC calendar day
// containing t. Both the ledger's date filter and the day-close aggregation
// use this window, so a day never drifts between the write and read paths.
func DayWindowUTC(t time.Time) (start, end time.Time) {
	u := t.UTC()
	start = time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}
