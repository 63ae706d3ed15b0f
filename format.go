package touchplot

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// A Formatter turns axis values into labels and tooltip texts.
type Formatter struct {
	// Decimals is the number of decimals of tooltip values. A negative
	// value derives the precision from the tick step.
	Decimals int

	// DateLayout is the time.Format layout of date values. If empty the
	// layout is chosen from the tick step.
	DateLayout string

	Calendar Calendar
}

// decimals returns the number of decimals needed to tell ticks step
// apart.
func decimals(step float64) int {
	if math.IsNaN(step) || step <= 0 {
		return 0
	}
	e := math.Floor(math.Log10(step) + 1e-9)
	d := -int(e)
	if m := step / math.Pow(10, e); math.Abs(m-2.5) < 1e-9 {
		d++
	}
	if d < 0 {
		d = 0
	}
	return d
}

// dateLayout picks a time layout fine enough for ticks step seconds apart.
func dateLayout(step float64) string {
	switch {
	case step < 1:
		return "15:04:05.000"
	case step < 60:
		return "15:04:05"
	case step < secondsPerDay:
		return "15:04"
	case step < secondsPerMonth:
		return "Jan 2"
	case step < secondsPerYear:
		return "Jan 2006"
	}
	return "2006"
}

// Label formats the tick value v of an axis of kind with tick step.
func (f Formatter) Label(kind AxisKind, step, v float64) string {
	if kind == Date {
		layout := f.DateLayout
		if layout == "" {
			layout = dateLayout(step)
		}
		return f.Calendar.KeyToDate(v).Format(layout)
	}
	return strconv.FormatFloat(v, 'f', decimals(step), 64)
}

// Value formats v for a tooltip with thousands separators.
func (f Formatter) Value(kind AxisKind, step, v float64) string {
	if kind == Date {
		return f.Calendar.KeyToDate(v).Format(f.tooltipLayout())
	}
	d := f.Decimals
	if d < 0 {
		d = decimals(step) + 1
	}
	return humanize.CommafWithDigits(v, d)
}

func (f Formatter) tooltipLayout() string {
	if f.DateLayout != "" {
		return f.DateLayout
	}
	return "2006-01-02 15:04:05"
}
