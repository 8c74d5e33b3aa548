package random

import (
	"math/rand"

	"github.com/username/biz-days/pkg/dateutil"
)

// Generator produces reproducible dates, offsets and date lists.
// A Generator is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator seeded with seed
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// IntRange returns a value in [lo, hi]
func (g *Generator) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

// Weekday returns a weekday index outside [0, 6] half of the time when
// allowInvalid is set, otherwise a valid index
func (g *Generator) Weekday(allowInvalid bool) int {
	if allowInvalid && g.rng.Intn(2) == 0 {
		if g.rng.Intn(2) == 0 {
			return -1 - g.rng.Intn(1000)
		}
		return 7 + g.rng.Intn(1000)
	}
	return g.rng.Intn(7)
}

// DateBetween returns a date in the inclusive range [from, to]
func (g *Generator) DateBetween(from, to dateutil.Date) dateutil.Date {
	if to.Before(from) {
		from, to = to, from
	}
	return from.AddDays(g.rng.Intn(from.DaysUntil(to) + 1))
}

// Dates returns n dates from [from, to]; duplicates are possible
func (g *Generator) Dates(n int, from, to dateutil.Date) []dateutil.Date {
	if n <= 0 {
		return []dateutil.Date{}
	}

	dates := make([]dateutil.Date, n)
	for i := range dates {
		dates[i] = g.DateBetween(from, to)
	}
	return dates
}

// SelectRandomItems selects n random items from slice
// Returns indices of selected items
func (g *Generator) SelectRandomItems(totalCount, n int) []int {
	if n <= 0 || totalCount <= 0 {
		return []int{}
	}

	if n > totalCount {
		n = totalCount
	}

	// Fisher-Yates over all indices, keep the first n
	allIndices := make([]int, totalCount)
	for i := range allIndices {
		allIndices[i] = i
	}
	for i := len(allIndices) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		allIndices[i], allIndices[j] = allIndices[j], allIndices[i]
	}

	return allIndices[:n]
}
