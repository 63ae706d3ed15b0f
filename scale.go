package touchplot

import (
	"fmt"
	"math"
)

// ----------------------------------------------------------------------------
// Axis

// An Axis is one of the two axes of a chart. It owns the configured range
// and the ticks generated for it. Ticks are regenerated in full whenever
// the range or the tick count changes.
type Axis struct {
	// Title is the axis' title.
	Title string

	// Range is the configured range of the axis. Use Chart.SetRange to
	// change it.
	Range Range

	// Kind determines whether values are plain numbers or dates.
	Kind AxisKind

	// TickCount is the desired number of tick intervals.
	TickCount int

	// KeepOneOutlier keeps one tick beyond each end of Range.
	KeepOneOutlier bool

	// Origin anchors the tick grid, NaN selects the default.
	Origin float64

	// Ticks are the current ticks.
	Ticks TickSet

	role axisRole
}

type axisRole int

const (
	roleX axisRole = iota
	roleY
)

func newAxis(role axisRole, kind AxisKind, count int, keep bool) *Axis {
	return &Axis{
		Range:          Range{0, 1},
		Kind:           kind,
		TickCount:      count,
		KeepOneOutlier: keep,
		Origin:         math.NaN(),
		role:           role,
	}
}

// tickOptions returns the options to generate a's ticks.
func (a *Axis) tickOptions(cal Calendar) TickOptions {
	return TickOptions{
		Kind:           a.Kind,
		Count:          a.TickCount,
		Origin:         a.Origin,
		KeepOneOutlier: a.KeepOneOutlier,
		CorrectDST:     a.role == roleY && a.Kind == Date,
		Calendar:       cal,
	}
}

// regenerate rebuilds the ticks of a.
func (a *Axis) regenerate(cal Calendar) {
	a.Ticks = GenerateTicks(a.Range, a.tickOptions(cal))
}

func (a *Axis) String() string {
	if a == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Range=[%g:%g] %s ticks=%d step=%g %q",
		a.Range.Min, a.Range.Max, a.Kind, a.Ticks.Len(), a.Ticks.Step, a.Title)
}

// ----------------------------------------------------------------------------
// Range

// Range is a real interval. A valid Range has Min < Max.
type Range struct {
	Min, Max float64
}

// unsetRange returns a range both of whose edges are NaN.
func unsetRange() Range {
	return Range{math.NaN(), math.NaN()}
}

// Valid reports whether r is a proper interval.
func (r Range) Valid() bool {
	return r.Min < r.Max && !math.IsInf(r.Min, 0) && !math.IsInf(r.Max, 0)
}

// Len returns the width of r.
func (r Range) Len() float64 { return r.Max - r.Min }

// Contains reports whether x lies in r.
func (r Range) Contains(x float64) bool {
	return x >= r.Min && x <= r.Max
}

// Shift returns r moved by d.
func (r Range) Shift(d float64) Range {
	return Range{r.Min + d, r.Max + d}
}

// Update expands r to include x. NaN values are ignored.
func (r *Range) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(r.Min < v) {
			r.Min = v
		}
		if !(r.Max > v) {
			r.Max = v
		}
	}
}

// Equal reports whether r and s are equal, treating NaN edges as equal.
func (r Range) Equal(s Range) bool {
	eq := func(a, b float64) bool {
		if math.IsNaN(a) {
			return math.IsNaN(b)
		}
		return a == b
	}
	return eq(r.Min, s.Min) && eq(r.Max, s.Max)
}

func (r Range) String() string {
	return fmt.Sprintf("[%g:%g]", r.Min, r.Max)
}

// ----------------------------------------------------------------------------
// AxisKind

// AxisKind selects how the values of an axis are interpreted.
type AxisKind int

const (
	Numeric AxisKind = iota
	Date             // seconds since the Unix epoch
)

// String returns the name of k.
func (k AxisKind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Date:
		return "date"
	}
	return fmt.Sprintf("AxisKind(%d)", int(k))
}

// ParseAxisKind parses the names returned by AxisKind.String.
func ParseAxisKind(s string) (AxisKind, error) {
	switch s {
	case "", "numeric":
		return Numeric, nil
	case "date":
		return Date, nil
	}
	return Numeric, fmt.Errorf("%w: unknown axis kind %q", ErrInvalidConfig, s)
}

// AxisID names one of the two axes of a chart.
type AxisID int

const (
	XAxis AxisID = iota
	YAxis
)

func (id AxisID) String() string {
	switch id {
	case XAxis:
		return "x"
	case YAxis:
		return "y"
	}
	return fmt.Sprintf("AxisID(%d)", int(id))
}
