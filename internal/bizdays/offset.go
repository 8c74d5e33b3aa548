package bizdays

import (
	"errors"
	"fmt"

	"github.com/username/biz-days/pkg/dateutil"
	"go.uber.org/zap"
)

// DefaultMaxIterations bounds the offset search. Realistic holiday sets
// converge in a handful of rounds; the cap only trips on pathological input.
const DefaultMaxIterations = 10000

// ErrNoConvergence is returned when the offset search hits its iteration cap
var ErrNoConvergence = errors.New("business day search did not converge")

// Direction is the signed unit step of a search through the calendar
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

// DirectionOf returns the direction of a signed day count (Forward for 0)
func DirectionOf(days int) Direction {
	if days < 0 {
		return Backward
	}
	return Forward
}

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// From returns the date that is days business days away from start, not
// counting start itself. Zero days returns start unchanged even when it
// falls on a weekend; any other offset lands on a weekday.
func From(start dateutil.Date, days int, holidays HolidaySet) (dateutil.Date, error) {
	return resolveOffset(start, days, holidays, DefaultMaxIterations, zap.NewNop())
}

// resolveOffset jumps ahead by the number of business days still owed,
// snaps the guess onto a weekday, and subtracts the business days actually
// covered. Each round moves at least one calendar day in the search
// direction and never overshoots, since a stretch of n calendar days holds
// at most n business days.
func resolveOffset(start dateutil.Date, days int, holidays HolidaySet, maxIterations int, logger *zap.Logger) (dateutil.Date, error) {
	if days == 0 {
		return start, nil
	}

	dir := DirectionOf(days)
	remaining := days
	if remaining < 0 {
		remaining = -remaining
	}

	current := start
	for i := 0; i < maxIterations; i++ {
		guess := current.AddDays(int(dir) * remaining)
		for guess.IsWeekend() {
			guess = guess.AddDays(int(dir))
		}

		lo, hi := current, guess
		if dir == Backward {
			lo, hi = guess, current
		}

		diff := Interval(lo, hi, holidays)
		// current lies on the interval boundary but is not part of the offset
		if holidays.isBusinessDay(current) {
			diff--
		}
		remaining -= diff

		logger.Debug("Offset search round",
			zap.Int("round", i+1),
			zap.Stringer("current", current),
			zap.Stringer("guess", guess),
			zap.Stringer("direction", dir),
			zap.Int("covered", diff),
			zap.Int("remaining", remaining))

		if remaining == 0 {
			return guess, nil
		}
		current = guess
	}

	return dateutil.Date{}, fmt.Errorf("%w: %d business days from %s after %d rounds",
		ErrNoConvergence, days, start, maxIterations)
}
