package entities

import "time"

// Period selects the size of an analytics window.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// ParsePeriod resolves the period query parameter.
func ParsePeriod(s string) (Period, bool) {
	switch Period(s) {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return Period(s), true
	default:
		return "", false
	}
}

// Window is a closed [Start, End] creation-time interval.
type Window struct {
	Start time.Time
	End   time.Time
}

// DayWindow covers the reference date's calendar day: [00:00:00, 23:59:59.999...]
// in the reference date's location.
func DayWindow(ref time.Time) Window {
	y, m, d := ref.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, ref.Location())
	end := time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), ref.Location())
	return Window{Start: start, End: end}
}

// PeriodWindow is backward-looking from the reference day's end: the end is the
// reference date at end of day, the start is that day's start minus 7 days,
// 1 month or 1 year for week/month/year. Both bounds are inclusive.
func PeriodWindow(p Period, ref time.Time) Window {
	w := DayWindow(ref)
	switch p {
	case PeriodWeek:
		w.Start = w.Start.AddDate(0, 0, -7)
	case PeriodMonth:
		w.Start = w.Start.AddDate(0, -1, 0)
	case PeriodYear:
		w.Start = w.Start.AddDate(-1, 0, 0)
	}
	return w
}
