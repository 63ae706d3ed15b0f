package touchplot

import (
	"fmt"
	"math"

	"github.com/vdobler/touchplot/data"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Direction is the direction of a swipe.
type Direction int

const (
	SwipeLeft  Direction = iota // reveal later keys
	SwipeRight                  // reveal earlier keys
)

func (d Direction) String() string {
	switch d {
	case SwipeLeft:
		return "left"
	case SwipeRight:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// A Tooltip describes the selected point for display.
type Tooltip struct {
	Index  int
	Anchor Point
	Key    string
	Value  string
}

// Chart is the state of a time series or scatter chart: two axes, a data
// series and the selection. All methods run synchronously; every
// mutation regenerates what depends on it before returning.
type Chart struct {
	Title string
	X, Y  *Axis

	Calendar Calendar
	Format   Formatter

	// SelectRadius is the maximum distance in pixels of a long press
	// from the point it selects.
	SelectRadius float64

	Style Style
	Geoms []Geom

	// Frame is the plot area in pixels. Draw updates it from the
	// canvas it draws on.
	Frame Frame

	// OnInvalidate is called whenever the chart needs to be redrawn.
	OnInvalidate func()

	// OnPage is called with the new X range after a swipe paged the
	// data.
	OnPage func(Range)

	series *data.Series
	status []bool
	sel    *Selection
}

// NewChart returns an empty chart configured by cfg. Timers of the
// selection run on sched, or on the wall clock if sched is nil. The
// Style is left empty; set it, e.g. to DefaultStyle(12), before Draw.
//
// A Chart is not safe for concurrent use. The wall clock fires the
// deselect timeout, and with it OnInvalidate, on a goroutine of its own;
// hosts with an event loop must pass a Scheduler which posts the call to
// that loop. The wall clock is only suitable for hosts that redraw from
// any goroutine, like the touchplot command.
func NewChart(cfg Config, sched Scheduler) (*Chart, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cal, err := NewCalendar(cfg.TimeZone)
	if err != nil {
		return nil, err
	}
	xkind, _ := ParseAxisKind(cfg.X.Kind)
	ykind, _ := ParseAxisKind(cfg.Y.Kind)

	c := &Chart{
		X:            newAxis(roleX, xkind, cfg.X.TickCount, cfg.X.KeepOneOutlier),
		Y:            newAxis(roleY, ykind, cfg.Y.TickCount, cfg.Y.KeepOneOutlier),
		Calendar:     cal,
		Format:       Formatter{Decimals: cfg.Decimals, DateLayout: cfg.DateLayout, Calendar: cal},
		SelectRadius: cfg.SelectRadius,
		sel:          NewSelection(sched, cfg.DeselectTimeout),
	}
	c.X.Title, c.Y.Title = cfg.X.Title, cfg.Y.Title
	c.sel.OnExpire = c.invalidate

	for _, a := range []struct {
		axis *Axis
		cfg  AxisConfig
	}{{c.X, cfg.X}, {c.Y, cfg.Y}} {
		if a.cfg.Min != nil && a.cfg.Max != nil {
			a.axis.Range = Range{*a.cfg.Min, *a.cfg.Max}
		}
		a.axis.regenerate(c.Calendar)
	}
	return c, nil
}

func (c *Chart) axis(id AxisID) *Axis {
	if id == YAxis {
		return c.Y
	}
	return c.X
}

func (c *Chart) invalidate() {
	if c.OnInvalidate != nil {
		c.OnInvalidate()
	}
}

// SetRange sets the range of axis id to [min, max] and regenerates its
// ticks. Ranges with min >= max are rejected with ErrInvalidRange and
// leave the chart unchanged.
func (c *Chart) SetRange(id AxisID, min, max float64) error {
	r := Range{min, max}
	if !r.Valid() {
		debugf("rejected %s range %v", id, r)
		return fmt.Errorf("%w: %s axis %v", ErrInvalidRange, id, r)
	}
	a := c.axis(id)
	a.Range = r
	a.regenerate(c.Calendar)
	c.invalidate()
	return nil
}

// SetTickCount sets the desired number of tick intervals of axis id.
// Counts below one are ignored.
func (c *Chart) SetTickCount(id AxisID, n int) {
	if n < 1 {
		return
	}
	a := c.axis(id)
	a.TickCount = n
	a.regenerate(c.Calendar)
	c.invalidate()
}

// FitRange sets the range of axis id to the range of the data. A series
// with a single distinct coordinate gets a unit range around it.
func (c *Chart) FitRange(id AxisID) error {
	kmin, kmax, vmin, vmax := c.series.Range()
	r := unsetRange()
	if id == XAxis {
		r.Update(kmin, kmax)
	} else {
		r.Update(vmin, vmax)
	}
	if r.Min == r.Max {
		r.Min, r.Max = r.Min-0.5, r.Max+0.5
	}
	return c.SetRange(id, r.Min, r.Max)
}

// SetData replaces the data with the pairs of keys and values, truncated
// to the shorter of both. If alreadySorted is false the points are sorted
// by key first; the status mask is taken to be in the order of keys and
// is sorted along with the points. Afterwards the mask refers to the
// sorted points. The selection is cleared.
func (c *Chart) SetData(keys, values []float64, alreadySorted bool) {
	c.series = data.NewMaskedSeries(keys, values, c.status, alreadySorted)
	if !alreadySorted && c.status != nil {
		c.status = c.series.Mask()
	}
	c.sel.Clear()
	c.invalidate()
}

// ClearData removes all data, the status mask and the selection.
func (c *Chart) ClearData() {
	c.series = nil
	c.status = nil
	c.sel.Clear()
	c.invalidate()
}

// SetStatus replaces the mask of disabled points. Points beyond the end
// of mask are enabled.
func (c *Chart) SetStatus(mask []bool) {
	c.status = append([]bool(nil), mask...)
	if c.series != nil {
		c.series.SetDisabled(c.status)
	}
	c.invalidate()
}

// Series returns the current data. It is nil after ClearData.
func (c *Chart) Series() *data.Series { return c.series }

// XTicks returns the ticks of the X axis.
func (c *Chart) XTicks() TickSet { return c.X.Ticks }

// YTicks returns the ticks of the Y axis.
func (c *Chart) YTicks() TickSet { return c.Y.Ticks }

// Labels returns the ticks of axis id with their labels.
func (c *Chart) Labels(id AxisID) []plot.Tick {
	a := c.axis(id)
	return a.Ticks.PlotTicks(func(v float64) string {
		return c.Format.Label(a.Kind, a.Ticks.Step, v)
	})
}

// Bounds returns the visible bounds. It is false if an axis has no ticks.
func (c *Chart) Bounds() (Bounds, bool) { return bounds(c.X, c.Y) }

// Mapper returns the transform for the current frame. It is false if
// nothing can be mapped, e.g. because an axis has no ticks.
func (c *Chart) Mapper() (Mapper, bool) {
	b, ok := c.Bounds()
	if !ok || !(c.Frame.Width > 0) || !(c.Frame.Height > 0) {
		return Mapper{}, false
	}
	return Mapper{Frame: c.Frame, Bounds: b}, true
}

// MapToPixel maps a data coordinate to the pixel where a point at it is
// drawn and hit. With data present the first key sits on the left edge
// of the frame; without data the first X tick does.
func (c *Chart) MapToPixel(key, value float64) (Point, bool) {
	m, ok := c.Mapper()
	if !ok {
		return Point{}, false
	}
	if c.series.Len() > 0 {
		return m.MapFrom(c.series.Keys[0], key, value), true
	}
	return m.MapToPixel(key, value), true
}

func (c *Chart) hit(p Point) (Hit, bool) {
	m, ok := c.Mapper()
	if !ok || c.series.Len() == 0 {
		return Hit{}, false
	}
	return hitTest(m, c.series.Keys, c.series.Values, p, c.SelectRadius)
}

// HitTest returns the index of the point within SelectRadius of p.
func (c *Chart) HitTest(p Point) (int, bool) {
	h, ok := c.hit(p)
	return h.Index, ok
}

// OnLongPress selects the point nearest to p and returns its tooltip. If
// no point is close enough the selection is cleared.
func (c *Chart) OnLongPress(p Point) (Tooltip, bool) {
	h, ok := c.hit(p)
	if !ok {
		c.sel.Clear()
		c.invalidate()
		return Tooltip{}, false
	}
	c.sel.Select(h.Index, h.Anchor)
	c.invalidate()
	return c.tooltip(h.Index, h.Anchor), true
}

// OnSwipe clears the selection and pages the data in direction d.
func (c *Chart) OnSwipe(d Direction) {
	c.sel.Clear()
	c.Page(d)
}

// Page moves the X range by its own width.
func (c *Chart) Page(d Direction) {
	r := c.X.Range
	shift := r.Len()
	if d == SwipeRight {
		shift = -shift
	}
	r = r.Shift(shift)
	if err := c.SetRange(XAxis, r.Min, r.Max); err != nil {
		return
	}
	if c.OnPage != nil {
		c.OnPage(r)
	}
}

// Unselect clears the selection.
func (c *Chart) Unselect() {
	c.sel.Clear()
	c.invalidate()
}

// Selected returns the index of the selected point.
func (c *Chart) Selected() (int, bool) {
	i, _, ok := c.sel.Selected()
	if ok && i >= c.series.Len() {
		return 0, false
	}
	return i, ok
}

// Tooltip returns the tooltip of the selected point, anchored in the
// current frame.
func (c *Chart) Tooltip() (Tooltip, bool) {
	i, ok := c.Selected()
	if !ok {
		return Tooltip{}, false
	}
	m, ok := c.Mapper()
	if !ok {
		return Tooltip{}, false
	}
	pts := m.Points(c.series.Keys, c.series.Values)
	return c.tooltip(i, pts[i]), true
}

func (c *Chart) tooltip(i int, anchor Point) Tooltip {
	k, v := c.series.XY(i)
	return Tooltip{
		Index:  i,
		Anchor: anchor,
		Key:    c.Format.Value(c.X.Kind, c.X.Ticks.Step, k),
		Value:  c.Format.Value(c.Y.Kind, c.Y.Ticks.Step, v),
	}
}

// layout computes the plot area inside a canvas of width w and height h.
func (c *Chart) layout(w, h vg.Length) Frame {
	s := c.Style
	var top, left, bottom, right vg.Length
	if c.Title != "" {
		top = s.TitleHeight
	}
	left = s.YAxis.LabelWidth
	if c.Y.Title != "" {
		left += s.YAxis.TitleWidth
	}
	bottom = s.XAxis.LabelHeight
	if c.X.Title != "" {
		bottom += s.XAxis.TitleHeight
	}
	right = s.XAxis.LabelHeight
	top += s.XAxis.LabelHeight / 2

	return Frame{
		Left:   float64(left),
		Top:    float64(top),
		Width:  math.Max(0, float64(w-left-right)),
		Height: math.Max(0, float64(h-top-bottom)),
	}
}

// Draw lays out the chart on cv and draws its geoms. Nothing but the
// background is drawn if an axis has no ticks.
func (c *Chart) Draw(cv draw.Canvas) {
	size := cv.Size()
	c.Frame = c.layout(size.X, size.Y)

	if c.Style.Background != nil {
		cv.SetColor(c.Style.Background)
		cv.Fill(cv.Rectangle.Path())
	}
	panel := &Panel{Chart: c, Canvas: cv, Mapper: Mapper{Frame: c.Frame}}
	if c.Style.Panel.Background != nil {
		cv.SetColor(c.Style.Panel.Background)
		cv.Fill(panel.FrameRect().Path())
	}
	c.drawTitles(panel)

	m, ok := c.Mapper()
	if !ok {
		debugf("nothing to draw: x=%v y=%v", c.X, c.Y)
		return
	}
	panel.Mapper = m
	for _, g := range c.Geoms {
		g.Draw(panel)
	}
}

func (c *Chart) drawTitles(p *Panel) {
	s, f, cv := c.Style, c.Frame, p.Canvas
	if c.Title != "" {
		cv.FillText(s.Title, p.ToCanvas(Point{f.Left + f.Width/2, 0}), c.Title)
	}
	if c.X.Title != "" {
		y := f.Top + f.Height + float64(s.XAxis.LabelHeight+s.XAxis.TitleHeight)
		cv.FillText(s.XAxis.Title, p.ToCanvas(Point{f.Left + f.Width/2, y}), c.X.Title)
	}
	if c.Y.Title != "" {
		cv.FillText(s.YAxis.Title, p.ToCanvas(Point{0, f.Top + f.Height/2}), c.Y.Title)
	}
}
