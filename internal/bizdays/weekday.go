package bizdays

import (
	"errors"
	"fmt"
)

const (
	saturday = 5
	sunday   = 6
)

// ErrInvalidWeekdayIndex is returned when a weekday index is outside 0..6
var ErrInvalidWeekdayIndex = errors.New("weekday index out of range")

// WeekdaySpan returns the number of weekdays in the inclusive circular span
// from dow1 forward to dow2 (0=Monday ... 6=Sunday), wrapping past Sunday.
// Equal indices describe a single day.
func WeekdaySpan(dow1, dow2 int) (int, error) {
	if dow1 < 0 || dow1 > sunday || dow2 < 0 || dow2 > sunday {
		return 0, fmt.Errorf("%w: (%d, %d)", ErrInvalidWeekdayIndex, dow1, dow2)
	}

	if dow1 == dow2 {
		if isWeekdayIndex(dow1) {
			return 1, nil
		}
		return 0, nil
	}

	spanEnd := dow2
	if dow2 < dow1 {
		spanEnd += 7
	}

	count := 0
	for i := dow1; i <= spanEnd; i++ {
		if isWeekdayIndex(i % 7) {
			count++
		}
	}
	return count, nil
}

func isWeekdayIndex(dow int) bool {
	return dow != saturday && dow != sunday
}
