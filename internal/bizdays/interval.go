package bizdays

import "github.com/username/biz-days/pkg/dateutil"

// Interval returns the number of business days in the inclusive range
// [start, end]. A range with start after end is empty and yields 0.
func Interval(start, end dateutil.Date, holidays HolidaySet) int {
	if start.After(end) {
		return 0
	}

	weeks := start.DaysUntil(end) / 7

	// Day-of-week values always come from a real date, so the index
	// check inside WeekdaySpan cannot fail here.
	span, _ := WeekdaySpan(start.Weekday(), end.Weekday())

	count := weeks*5 + span
	if holidays.Len() > 0 {
		count -= HolidayCount(start, end, holidays)
	}

	if count < 0 {
		return 0
	}
	return count
}
