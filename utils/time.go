package utils

import "time"

const dateLayout = "2006-01-02"

// DateString renders the calendar date used as the history key.
func DateString(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// DayIndex returns whole days since the unix epoch.
func DayIndex(t time.Time) int {
	return int(t.Unix() / 86400)
}
