package touchplot

import "gonum.org/v1/plot"

// Ticker adapts the tick engine to gonum's plot.Ticker so the same ticks
// can be used on the axes of a gonum plot.
type Ticker struct {
	Options TickOptions
	Format  Formatter
}

var _ plot.Ticker = Ticker{}

// Ticks implements plot.Ticker.
func (t Ticker) Ticks(min, max float64) []plot.Tick {
	ts := GenerateTicks(Range{min, max}, t.Options)
	return ts.PlotTicks(func(v float64) string {
		return t.Format.Label(t.Options.Kind, ts.Step, v)
	})
}

// Ticker returns a plot.Ticker producing the ticks of axis id.
func (c *Chart) Ticker(id AxisID) Ticker {
	return Ticker{
		Options: c.axis(id).tickOptions(c.Calendar),
		Format:  c.Format,
	}
}
