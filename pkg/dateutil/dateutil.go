package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate is returned when a date cannot be constructed or parsed
var ErrInvalidDate = errors.New("invalid date")

// Date is a whole calendar date without time or location.
// The zero value is not a valid date; use NewDate, FromTime or ParseDate.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate builds a Date, rejecting values that do not name a real Gregorian day
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, int(month), day)
	}
	return Date{year: year, month: month, day: day}, nil
}

// MustDate is like NewDate but panics on invalid input
func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime returns the calendar date of t in t's own location
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

func (d Date) Year() int         { return d.year }
func (d Date) Month() time.Month { return d.month }
func (d Date) Day() int          { return d.day }

// Time returns midnight UTC of the date
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of week with Monday=0 ... Sunday=6
func (d Date) Weekday() int {
	return (int(d.Time().Weekday()) + 6) % 7
}

// IsWeekday returns true if the date is Monday through Friday
func (d Date) IsWeekday() bool {
	return d.Weekday() < 5
}

// IsWeekend returns true if the date is Saturday or Sunday
func (d Date) IsWeekend() bool {
	return !d.IsWeekday()
}

// AddDays moves the date by n calendar days (n may be negative)
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// DaysUntil returns the number of whole days from d to other.
// Negative when other is before d.
func (d Date) DaysUntil(other Date) int {
	return other.dayNumber() - d.dayNumber()
}

// dayNumber counts days since 1970-01-01 in the proleptic Gregorian calendar.
// time.Duration overflows past ~292 years so the difference is done on ints.
func (d Date) dayNumber() int {
	y, m := d.year, int(d.month)
	if m <= 2 {
		y--
	}
	era := y / 400
	if y < 0 && y%400 != 0 {
		era--
	}
	yoe := y - era*400
	mp := (m + 9) % 12
	doy := (153*mp+2)/5 + d.day - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// Compare returns -1, 0 or +1 as d is before, equal to or after other
func (d Date) Compare(other Date) int {
	switch {
	case d.year != other.year:
		return cmpInt(d.year, other.year)
	case d.month != other.month:
		return cmpInt(int(d.month), int(other.month))
	default:
		return cmpInt(d.day, other.day)
	}
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }

// String formats the date as YYYY-MM-DD
func (d Date) String() string {
	return d.Time().Format("2006-01-02")
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// StartOfDay returns the start of the day (00:00:00) for the given time
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseDate parses a date string in the supported formats.
// "2006-1-2" also accepts zero-padded YYYY-MM-DD input.
func ParseDate(dateStr string) (Date, error) {
	formats := []string{
		"2006-1-2",
		"02.01.2006",
	}

	s := strings.TrimSpace(dateStr)
	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return FromTime(t), nil
		}
	}

	return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, dateStr)
}

// Today returns today's date in the local time zone
func Today() Date {
	return FromTime(StartOfDay(time.Now()))
}

// ResolveStart turns a start argument into a date; "" and "today" mean Today()
func ResolveStart(value string) (Date, error) {
	if value == "" || strings.EqualFold(value, "today") {
		return Today(), nil
	}
	return ParseDate(value)
}
