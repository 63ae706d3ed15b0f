package touchplot

import (
	"math"
	"sort"

	"gonum.org/v1/plot"
)

// A TickSet is the ordered list of tick positions of one axis together
// with the step and origin used to produce it. An empty TickSet means
// there is nothing to draw for the axis.
type TickSet struct {
	Values   []float64
	Step     float64
	Origin   float64
	Strategy DateStrategy
}

// Len returns the number of ticks.
func (ts TickSet) Len() int { return len(ts.Values) }

// Empty reports whether ts has no ticks.
func (ts TickSet) Empty() bool { return len(ts.Values) == 0 }

// PlotTicks turns ts into gonum plot ticks labeled by label.
func (ts TickSet) PlotTicks(label func(float64) string) []plot.Tick {
	ticks := make([]plot.Tick, len(ts.Values))
	for i, v := range ts.Values {
		ticks[i] = plot.Tick{Value: v, Label: label(v)}
	}
	return ticks
}

// TickOptions control the generation of a TickSet.
type TickOptions struct {
	Kind AxisKind

	// Count is the desired number of tick intervals.
	Count int

	// Origin anchors the tick grid. For date axes it also provides the
	// time of day and day of month ticks are aligned to. NaN selects
	// the default origin.
	Origin float64

	// KeepOneOutlier keeps one tick beyond each end of the range.
	KeepOneOutlier bool

	// CorrectDST shifts date ticks by an hour when they and the origin
	// disagree about daylight saving time.
	CorrectDST bool

	Calendar Calendar
}

// origin returns the effective tick origin for r.
func (o TickOptions) origin(r Range) float64 {
	switch {
	case !math.IsNaN(o.Origin):
		return o.Origin
	case o.Kind == Date:
		return o.Calendar.MonthStart(r.Min)
	}
	return 0
}

// GenerateTicks computes the trimmed ticks for r.
func GenerateTicks(r Range, o TickOptions) TickSet {
	if !r.Valid() || o.Count < 1 {
		return TickSet{}
	}
	origin := o.origin(r)

	var ts TickSet
	if o.Kind == Date {
		step, strategy := DateStep(r, o.Count)
		ts = TickSet{
			Values:   dateTicks(step, origin, r, strategy, o.Calendar),
			Step:     step,
			Origin:   origin,
			Strategy: strategy,
		}
		if o.CorrectDST {
			ts.Values = correctDST(ts.Values, origin, o.Calendar)
		}
	} else {
		step := NumericStep(r, o.Count)
		ts = TickSet{
			Values: numericTicks(step, origin, r),
			Step:   step,
			Origin: origin,
		}
	}
	ts.Values = TrimTicks(ts.Values, r, o.KeepOneOutlier)
	debugf("ticks %s %v count=%d: step=%g strategy=%s n=%d",
		o.Kind, r, o.Count, ts.Step, ts.Strategy, len(ts.Values))
	return ts
}

// numericTicks returns origin + k*step for all k covering r.
func numericTicks(step, origin float64, r Range) []float64 {
	if math.IsNaN(step) || step <= 0 {
		return nil
	}
	first := math.Floor((r.Min - origin) / step)
	last := math.Ceil((r.Max - origin) / step)
	n := int(last-first) + 1
	if n < 0 {
		n = 0
	}
	ticks := make([]float64, n)
	for i := range ticks {
		ticks[i] = origin + (first+float64(i))*step
	}
	return ticks
}

// dateTicks lays out ticks like numericTicks and aligns them to the
// calendar according to strategy.
func dateTicks(step, origin float64, r Range, strategy DateStrategy, cal Calendar) []float64 {
	ticks := numericTicks(step, origin, r)
	if strategy == StrategyNone || len(ticks) == 0 {
		return ticks
	}
	o := cal.KeyToDate(origin)
	for i, v := range ticks {
		t := cal.KeyToDate(v)
		switch strategy {
		case UniformTimeOfDay:
			t = cal.sameTimeOfDay(t, o)
		case UniformDayInMonth:
			t = cal.alignDayInMonth(t, o)
		}
		ticks[i] = DateToKey(t)
	}
	return dedup(ticks)
}

// correctDST moves ticks whose daylight saving state differs from the
// origin's by one hour and restores the ascending, duplicate free order.
func correctDST(ticks []float64, origin float64, cal Calendar) []float64 {
	if len(ticks) == 0 {
		return ticks
	}
	dst := cal.IsDST(origin)
	for i, v := range ticks {
		switch tdst := cal.IsDST(v); {
		case tdst && !dst:
			ticks[i] = v - 3600
		case !tdst && dst:
			ticks[i] = v + 3600
		}
	}
	sort.Float64s(ticks)
	return dedup(ticks)
}

// dedup removes repeated values keeping the first occurrence.
func dedup(values []float64) []float64 {
	seen := make(map[float64]bool, len(values))
	out := values[:0]
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
