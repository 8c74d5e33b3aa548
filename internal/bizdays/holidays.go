package bizdays

import (
	"sort"

	"github.com/username/biz-days/pkg/dateutil"
)

// HolidaySet is a set of dates excluded from business-day counting.
// A nil HolidaySet is a valid empty set.
type HolidaySet map[dateutil.Date]struct{}

// NewHolidaySet creates a set holding the given dates; duplicates collapse
func NewHolidaySet(dates ...dateutil.Date) HolidaySet {
	hs := make(HolidaySet, len(dates))
	for _, d := range dates {
		hs[d] = struct{}{}
	}
	return hs
}

// Add inserts a date into the set
func (hs HolidaySet) Add(d dateutil.Date) {
	hs[d] = struct{}{}
}

// Contains reports whether d is in the set
func (hs HolidaySet) Contains(d dateutil.Date) bool {
	_, ok := hs[d]
	return ok
}

// Len returns the number of distinct dates in the set
func (hs HolidaySet) Len() int {
	return len(hs)
}

// Dates returns the members in ascending order
func (hs HolidaySet) Dates() []dateutil.Date {
	dates := make([]dateutil.Date, 0, len(hs))
	for d := range hs {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// isBusinessDay reports whether d is a weekday outside the set
func (hs HolidaySet) isBusinessDay(d dateutil.Date) bool {
	return d.IsWeekday() && !hs.Contains(d)
}

// HolidayCount returns how many holidays fall on a weekday inside the
// inclusive range [start, end]. An inverted range counts nothing.
func HolidayCount(start, end dateutil.Date, holidays HolidaySet) int {
	count := 0
	for d := range holidays {
		if d.IsWeekend() || d.Before(start) || d.After(end) {
			continue
		}
		count++
	}
	return count
}
