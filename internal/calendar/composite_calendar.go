package calendar

import (
	"fmt"

	"github.com/username/biz-days/pkg/dateutil"
	"go.uber.org/zap"
)

// CompositeCalendar merges the holidays of several calendars.
// Any failing source fails the whole lookup.
type CompositeCalendar struct {
	sources []Calendar
	logger  *zap.Logger
}

// NewCompositeCalendar creates a new CompositeCalendar
func NewCompositeCalendar(logger *zap.Logger, sources ...Calendar) *CompositeCalendar {
	return &CompositeCalendar{
		sources: sources,
		logger:  logger,
	}
}

// Add appends another source
func (cc *CompositeCalendar) Add(source Calendar) {
	cc.sources = append(cc.sources, source)
}

// Holidays returns the union of all sources; the first note for a date wins
func (cc *CompositeCalendar) Holidays() ([]Holiday, error) {
	merged := []Holiday{}
	seen := make(map[dateutil.Date]struct{})

	for i, source := range cc.sources {
		holidays, err := source.Holidays()
		if err != nil {
			return nil, fmt.Errorf("holiday source %d failed: %w", i, err)
		}

		for _, h := range holidays {
			if _, dup := seen[h.Date]; dup {
				continue
			}
			seen[h.Date] = struct{}{}
			merged = append(merged, h)
		}
	}

	cc.logger.Debug("Holiday sources merged",
		zap.Int("sources", len(cc.sources)),
		zap.Int("holidays", len(merged)))

	return merged, nil
}
