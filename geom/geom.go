// Package geom provides the layers a touchplot chart is drawn from.
//
// Each layer reads the ticks, the data and the selection of the chart it
// is drawn for and maps them to the canvas with the panel's Mapper. The
// layers are drawn in the order of Chart.Geoms; Default returns the usual
// order of grid, filled line, points, axis labels and the balloon.
package geom

import (
	"image/color"

	"github.com/vdobler/touchplot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Default returns the standard layers of a line chart with points.
func Default() []touchplot.Geom {
	return []touchplot.Geom{Grid{}, Line{}, Scatter{}, Axis{}, Balloon{}}
}

// ----------------------------------------------------------------------------
// Grid

// Grid draws a vertical line at each X tick and a horizontal line at
// each Y tick inside the frame.
type Grid struct {
	X, Y *draw.LineStyle // nil: use the chart's style
}

func (g Grid) Draw(panel *touchplot.Panel) {
	c, m := panel.Chart, panel.Mapper
	xsty, ysty := c.Style.Grid.X, c.Style.Grid.Y
	if g.X != nil {
		xsty = *g.X
	}
	if g.Y != nil {
		ysty = *g.Y
	}
	f := m.Frame

	if xsty.Color != nil && xsty.Width > 0 {
		for _, x := range m.XPositions(c.XTicks().Values) {
			p, q := touchplot.Point{X: x, Y: f.Top}, touchplot.Point{X: x, Y: f.Top + f.Height}
			if !panel.InFrame(p) {
				continue
			}
			panel.Canvas.StrokeLines(xsty, []vg.Point{panel.ToCanvas(p), panel.ToCanvas(q)})
		}
	}
	if ysty.Color != nil && ysty.Width > 0 {
		for _, v := range c.YTicks().Values {
			y := m.Y(v)
			p, q := touchplot.Point{X: f.Left, Y: y}, touchplot.Point{X: f.Left + f.Width, Y: y}
			if !panel.InFrame(p) {
				continue
			}
			panel.Canvas.StrokeLines(ysty, []vg.Point{panel.ToCanvas(p), panel.ToCanvas(q)})
		}
	}
}

// ----------------------------------------------------------------------------
// Axis

// Axis draws the axis lines and the tick labels below and left of the
// frame. Labels of ticks outside the frame are omitted.
type Axis struct{}

func (Axis) Draw(panel *touchplot.Panel) {
	c, m, cv := panel.Chart, panel.Mapper, panel.Canvas
	s, f := c.Style, m.Frame
	bottom := f.Top + f.Height

	if s.XAxis.Line.Color != nil && s.XAxis.Line.Width > 0 {
		cv.StrokeLines(s.XAxis.Line, []vg.Point{
			panel.ToCanvas(touchplot.Point{X: f.Left, Y: bottom}),
			panel.ToCanvas(touchplot.Point{X: f.Left + f.Width, Y: bottom}),
		})
	}
	if s.YAxis.Line.Color != nil && s.YAxis.Line.Width > 0 {
		cv.StrokeLines(s.YAxis.Line, []vg.Point{
			panel.ToCanvas(touchplot.Point{X: f.Left, Y: f.Top}),
			panel.ToCanvas(touchplot.Point{X: f.Left, Y: bottom}),
		})
	}

	labels := c.Labels(touchplot.XAxis)
	values := make([]float64, len(labels))
	for i, l := range labels {
		values[i] = l.Value
	}
	for i, x := range m.XPositions(values) {
		p := touchplot.Point{X: x, Y: bottom}
		if !panel.InFrame(p) {
			continue
		}
		cv.FillText(s.XAxis.Label, panel.ToCanvas(p), labels[i].Label)
	}

	pad := float64(s.YAxis.Label.Font.Size) / 2
	for _, l := range c.Labels(touchplot.YAxis) {
		p := touchplot.Point{X: f.Left, Y: m.Y(l.Value)}
		if !panel.InFrame(p) {
			continue
		}
		p.X -= pad
		cv.FillText(s.YAxis.Label, panel.ToCanvas(p), l.Label)
	}
}

// ----------------------------------------------------------------------------
// Line

// Line connects the points of the series in key order. A missing value
// ends the current line; if a fill color is set the area between each
// line and the bottom of the frame is filled.
type Line struct {
	Style  *draw.LineStyle
	Fill   color.Color
	NoFill bool
}

func (l Line) Draw(panel *touchplot.Panel) {
	sty := panel.Chart.Style.Line.LineStyle
	if l.Style != nil {
		sty = *l.Style
	}
	fill := panel.Chart.Style.Line.Fill
	if l.Fill != nil {
		fill = l.Fill
	}
	if l.NoFill {
		fill = nil
	}

	cv := panel.FrameCanvas()
	for _, run := range Runs(panel.Points()) {
		if fill != nil && len(run) > 1 {
			poly := cv.ClipPolygonXY(areaBelow(panel, run))
			cv.FillPolygon(fill, poly)
		}
		if sty.Color == nil || sty.Width <= 0 {
			continue
		}
		cv.StrokeLines(sty, cv.ClipLinesXY(toCanvas(panel, run))...)
	}
}

// ----------------------------------------------------------------------------
// Scatter

// Scatter draws a glyph at each point. Disabled points are drawn in the
// style's disabled color, the selected point gets an extra marker.
type Scatter struct {
	Default *draw.GlyphStyle
}

func (s Scatter) Draw(panel *touchplot.Panel) {
	c := panel.Chart
	sty := c.Style.Scatter.GlyphStyle
	if s.Default != nil {
		sty = *s.Default
	}
	if sty.Shape == nil {
		sty.Shape = draw.CircleGlyph{}
	}
	series := c.Series()
	for i, p := range panel.Points() {
		if missing(p) || !panel.InFrame(p) {
			continue
		}
		g := sty
		if series.Disabled(i) && c.Style.Scatter.Disabled != nil {
			g.Color = c.Style.Scatter.Disabled
		}
		if g.Color == nil {
			continue
		}
		panel.Canvas.DrawGlyph(g, panel.ToCanvas(p))
	}

	sel := c.Style.Scatter.Selected
	if sel.Color == nil || sel.Shape == nil {
		return
	}
	if tt, ok := c.Tooltip(); ok && panel.InFrame(tt.Anchor) {
		panel.Canvas.DrawGlyph(sel, panel.ToCanvas(tt.Anchor))
	}
}

// ----------------------------------------------------------------------------
// Balloon

// Balloon draws the tooltip of the selected point in a box above and
// right of the point, flipped to stay inside the canvas.
type Balloon struct {
	Box *BoxStyle
}

func (b Balloon) Draw(panel *touchplot.Panel) {
	c := panel.Chart
	tt, ok := c.Tooltip()
	if !ok {
		return
	}
	s := c.Style.Balloon
	box := BoxStyle{Fill: s.Background, Border: s.Border}
	if b.Box != nil {
		box = *b.Box
	}

	lines := []string{tt.Key, tt.Value}
	font := s.Text.Font
	var w vg.Length
	for _, l := range lines {
		if lw := font.Width(l); lw > w {
			w = lw
		}
	}
	lh := font.Extents().Height
	w += 2 * s.Pad
	h := lh*vg.Length(len(lines)) + 2*s.Pad

	anchor := panel.ToCanvas(tt.Anchor)
	rect := vg.Rectangle{
		Min: vg.Point{X: anchor.X + s.Offset, Y: anchor.Y + s.Offset},
	}
	rect.Max = vg.Point{X: rect.Min.X + w, Y: rect.Min.Y + h}
	if rect.Max.X > panel.Canvas.Max.X {
		rect.Min.X, rect.Max.X = anchor.X-s.Offset-w, anchor.X-s.Offset
	}
	if rect.Max.Y > panel.Canvas.Max.Y {
		rect.Min.Y, rect.Max.Y = anchor.Y-s.Offset-h, anchor.Y-s.Offset
	}
	rect = CanonicRectangle(rect)

	cv := panel.Canvas
	if box.Fill != nil {
		cv.SetColor(box.Fill)
		cv.Fill(rect.Path())
	}
	if box.Border.Color != nil && box.Border.Width > 0 {
		cv.SetColor(box.Border.Color)
		cv.SetLineWidth(box.Border.Width)
		cv.SetLineDash(box.Border.Dashes, box.Border.DashOffs)
		cv.Stroke(rect.Path())
	}
	y := rect.Max.Y - s.Pad
	for _, l := range lines {
		cv.FillText(s.Text, vg.Point{X: rect.Min.X + s.Pad, Y: y}, l)
		y -= lh
	}
}
