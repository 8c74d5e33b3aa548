package calendar

import (
	"fmt"

	"github.com/username/biz-days/internal/bizdays"
	"github.com/username/biz-days/pkg/dateutil"
)

// Holiday is a date excluded from business-day counting
type Holiday struct {
	Date dateutil.Date
	Note string
}

// Calendar is a source of holiday dates
type Calendar interface {
	// Holidays returns every holiday the source knows about
	Holidays() ([]Holiday, error)
}

// LoadSet collects the holidays of cal into a HolidaySet
func LoadSet(cal Calendar) (bizdays.HolidaySet, error) {
	holidays, err := cal.Holidays()
	if err != nil {
		return nil, fmt.Errorf("failed to load holidays: %w", err)
	}

	set := bizdays.NewHolidaySet()
	for _, h := range holidays {
		set.Add(h.Date)
	}
	return set, nil
}
