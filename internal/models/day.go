package models

import "time"

// StartOfDay truncates a timestamp to midnight of its calendar day in the
// process's local timezone. Normalizing an already-normalized value is a
// no-op, and any two timestamps on the same local calendar day normalize
// to equal values.
func StartOfDay(value time.Time) time.Time {
	year, month, day := value.In(time.Local).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

// SameDay reports whether two timestamps fall on the same local calendar day.
func SameDay(first time.Time, second time.Time) bool {
	return StartOfDay(first).Equal(StartOfDay(second))
}
