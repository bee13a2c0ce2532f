package reports

import "time"

// CalculateEventStatus compares calendar days in UTC: an event before today is
// Complete, today or later is Upcoming. now is passed in so callers pin the clock.
func CalculateEventStatus(eventDate, now time.Time) EventStatus {
	if utcMidnight(eventDate).Before(utcMidnight(now)) {
		return StatusComplete
	}
	return StatusUpcoming
}

func utcMidnight(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
