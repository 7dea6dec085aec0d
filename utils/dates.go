package utils

import "time"

// SameDay reports whether two instants fall on the same calendar day. Both
// are compared in a's location so the day boundary is the caller's.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// WeekBounds returns the Monday 00:00 start and the exclusive end (the next
// Monday) of the week containing anchor.
func WeekBounds(anchor time.Time) (start, end time.Time) {
	offset := (int(anchor.Weekday()) + 6) % 7
	y, m, d := anchor.AddDate(0, 0, -offset).Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, anchor.Location())
	return start, start.AddDate(0, 0, 7)
}
