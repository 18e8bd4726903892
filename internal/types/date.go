package types

import "time"

// startOfDay truncates a time instant to midnight of its calendar day.
// The UTC location makes day arithmetic immune to DST transitions.
func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DayDiff returns the number of whole calendar days from a to b.
// Time of day is ignored: the difference between 23:59 and 00:01 of
// the following day is one day.
func DayDiff(a, b time.Time) int {
	return int(startOfDay(b).Sub(startOfDay(a)).Hours() / 24)
}
