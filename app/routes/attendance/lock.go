package attendance

import "time"

// lockDays is how far back attendance may still be recorded or edited.
const lockDays = 3

// WithinEditWindow reports whether a date is still open for attendance
// changes: not in the future, and at most lockDays days old.
func WithinEditWindow(date, now time.Time) bool {
	day := date.Truncate(24 * time.Hour)
	today := now.Truncate(24 * time.Hour)

	if day.After(today) {
		return false
	}
	return today.Sub(day) <= lockDays*24*time.Hour
}
