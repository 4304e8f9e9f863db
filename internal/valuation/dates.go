package valuation

import "time"

const secondsPerDay = 24 * 60 * 60

// Day returns the civil date of t as midnight UTC.
// Time of day and zone offset are dropped so that day arithmetic is immune to
// daylight-saving shifts and timestamp noise.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the civil date of now as seen in the reporting location.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return Day(now.In(loc))
}

// DaysBetween returns the number of whole days from a to b.
// The result is negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int((Day(b).Unix() - Day(a).Unix()) / secondsPerDay)
}

func laterOf(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
