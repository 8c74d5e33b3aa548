package bizdays

import (
	"github.com/username/biz-days/pkg/dateutil"
	"go.uber.org/zap"
)

// Calculator binds a holiday set, an iteration cap and a logger to the
// business-day operations. It is read-only after construction and safe
// for concurrent use.
type Calculator struct {
	holidays      HolidaySet
	maxIterations int
	logger        *zap.Logger
}

// Option configures a Calculator
type Option func(*Calculator)

// WithMaxIterations overrides DefaultMaxIterations; non-positive values are ignored
func WithMaxIterations(n int) Option {
	return func(c *Calculator) {
		if n > 0 {
			c.maxIterations = n
		}
	}
}

// WithLogger sets the logger used for search diagnostics
func WithLogger(logger *zap.Logger) Option {
	return func(c *Calculator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCalculator creates a Calculator over a copy of holidays
func NewCalculator(holidays HolidaySet, opts ...Option) *Calculator {
	c := &Calculator{
		holidays:      NewHolidaySet(holidays.Dates()...),
		maxIterations: DefaultMaxIterations,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DaysFrom returns the date days business days away from start
func (c *Calculator) DaysFrom(start dateutil.Date, days int) (dateutil.Date, error) {
	result, err := resolveOffset(start, days, c.holidays, c.maxIterations, c.logger)
	if err != nil {
		c.logger.Warn("Offset search gave up",
			zap.Stringer("start", start),
			zap.Int("days", days),
			zap.Int("holidays", c.holidays.Len()),
			zap.Error(err))
		return dateutil.Date{}, err
	}
	return result, nil
}

// InInterval returns the number of business days in [start, end]
func (c *Calculator) InInterval(start, end dateutil.Date) int {
	return Interval(start, end, c.holidays)
}

// HolidayCount returns the number of weekday holidays in [start, end]
func (c *Calculator) HolidayCount(start, end dateutil.Date) int {
	return HolidayCount(start, end, c.holidays)
}

// Holidays returns the holiday dates in ascending order
func (c *Calculator) Holidays() []dateutil.Date {
	return c.holidays.Dates()
}
