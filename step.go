package touchplot

import (
	"fmt"
	"math"
)

// stepJitter is added to the tick count so that ranges which are an exact
// multiple of the count do not flip between two neighbouring steps.
const stepJitter = 1e-10

// Calendar lengths in seconds. A month is the average Gregorian month.
const (
	secondsPerDay   = 86400
	secondsPerMonth = secondsPerDay * 30.4375
	secondsPerYear  = secondsPerMonth * 12
)

// DateStrategy selects how date ticks are aligned to the calendar after
// they have been laid out on a uniform grid.
type DateStrategy int

const (
	StrategyNone      DateStrategy = iota
	UniformTimeOfDay               // keep the origin's hour, minute and second
	UniformDayInMonth              // keep the origin's day of month and time of day
)

// String returns the name of ds.
func (ds DateStrategy) String() string {
	switch ds {
	case StrategyNone:
		return "none"
	case UniformTimeOfDay:
		return "time-of-day"
	case UniformDayInMonth:
		return "day-in-month"
	}
	return fmt.Sprintf("DateStrategy(%d)", int(ds))
}

// dateSteps is the ladder of step sizes for date axes with steps between
// one second and one year.
var dateSteps = []float64{
	1, 2.5, 5, 10, 15, 30, 60, 150, 300, 600, 900, 1800, 3600,
	7200, 10800, 21600, 43200, secondsPerDay,
	2 * secondsPerDay, 5 * secondsPerDay, 7 * secondsPerDay, 14 * secondsPerDay,
	secondsPerMonth, 2 * secondsPerMonth, 3 * secondsPerMonth, 6 * secondsPerMonth,
	secondsPerYear,
}

// rawStep is the unrounded step dividing r into n parts.
func rawStep(r Range, n int) float64 {
	return (r.Max - r.Min) / (float64(n) + stepJitter)
}

// NumericStep returns the clean step size for about n ticks in r.
func NumericStep(r Range, n int) float64 {
	return CleanMantissa(rawStep(r, n))
}

// DateStep returns the step size in seconds for about n ticks in the date
// range r together with the alignment the ticks need.
func DateStep(r Range, n int) (float64, DateStrategy) {
	raw := rawStep(r, n)
	switch {
	case math.IsNaN(raw) || raw <= 0:
		return math.NaN(), StrategyNone
	case raw < 1:
		return CleanMantissa(raw), StrategyNone
	case raw < secondsPerYear:
		step := pickClosest(raw, dateSteps)
		switch {
		case step >= secondsPerMonth:
			return step, UniformDayInMonth
		case step >= secondsPerDay:
			return step, UniformTimeOfDay
		}
		return step, StrategyNone
	}
	return CleanMantissa(raw/secondsPerYear) * secondsPerYear, UniformDayInMonth
}
