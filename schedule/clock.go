package schedule

import "time"

// DayTokenFor maps a wall-clock weekday to its day token. Sunday has no
// token; there are no Sunday meetings in the catalog.
func DayTokenFor(t time.Time) (string, bool) {
	switch t.Weekday() {
	case time.Monday:
		return "M", true
	case time.Tuesday:
		return "T", true
	case time.Wednesday:
		return "W", true
	case time.Thursday:
		return "Th", true
	case time.Friday:
		return "F", true
	case time.Saturday:
		return "Sat", true
	}
	return "", false
}

// SlotFor truncates a wall-clock instant to its slot.
func SlotFor(t time.Time) Slot {
	return Slot((t.Hour()*60 + t.Minute()) / 10)
}
