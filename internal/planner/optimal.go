package planner

import "time"

// OptimalTime returns the earliest strictly-future timestamp matching the
// pattern's preferred hour on one of its preferred weekdays, rolling
// forward day by day until both constraints hold. The result is never at
// or before now.
func OptimalTime(pattern StudyPattern, now time.Time) time.Time {
	candidate := time.Date(now.Year(), now.Month(), now.Day(),
		pattern.PreferredHour, 0, 0, 0, now.Location())
	if !candidate.After(now) {
		candidate = candidate.AddDate(0, 0, 1)
	}
	for !weekdayAllowed(pattern.PreferredWeekdays, candidate.Weekday()) {
		candidate = candidate.AddDate(0, 0, 1)
	}
	return candidate
}

func weekdayAllowed(preferred []time.Weekday, day time.Weekday) bool {
	if len(preferred) == 0 {
		return true
	}
	for _, d := range preferred {
		if d == day {
			return true
		}
	}
	return false
}
