package calendar

import (
	"fmt"

	"github.com/username/biz-days/pkg/dateutil"
)

// StaticCalendar holds holidays given inline, e.g. on the command line
type StaticCalendar struct {
	holidays []Holiday
}

// NewStaticCalendar creates a StaticCalendar from already parsed dates
func NewStaticCalendar(dates ...dateutil.Date) *StaticCalendar {
	holidays := make([]Holiday, len(dates))
	for i, d := range dates {
		holidays[i] = Holiday{Date: d}
	}
	return &StaticCalendar{holidays: holidays}
}

// ParseStaticCalendar parses date strings into a StaticCalendar.
// Unlike holiday files, a single bad value fails the whole list.
func ParseStaticCalendar(values []string) (*StaticCalendar, error) {
	dates := make([]dateutil.Date, 0, len(values))
	for _, v := range values {
		d, err := dateutil.ParseDate(v)
		if err != nil {
			return nil, fmt.Errorf("failed to parse holiday: %w", err)
		}
		dates = append(dates, d)
	}
	return NewStaticCalendar(dates...), nil
}

// Holidays returns the inline holidays
func (sc *StaticCalendar) Holidays() ([]Holiday, error) {
	return sc.holidays, nil
}
