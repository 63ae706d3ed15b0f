package touchplot

import (
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Geom is a layer of a chart, e.g. the grid or the data line.
type Geom interface {
	Draw(p *Panel)
}

// ----------------------------------------------------------------------------
// Panel

// A Panel is the drawing state handed to the geoms of a chart: the
// canvas and the transform of the current frame.
type Panel struct {
	Chart  *Chart
	Canvas draw.Canvas
	Mapper Mapper
}

// ToCanvas converts the pixel position p, measured from the top left
// corner of the canvas, to a canvas point.
func (p *Panel) ToCanvas(pt Point) vg.Point {
	return vg.Point{
		X: p.Canvas.Min.X + vg.Length(pt.X),
		Y: p.Canvas.Max.Y - vg.Length(pt.Y),
	}
}

// FrameRect returns the plot area as a canvas rectangle.
func (p *Panel) FrameRect() vg.Rectangle {
	f := p.Mapper.Frame
	return vg.Rectangle{
		Min: p.ToCanvas(Point{f.Left, f.Top + f.Height}),
		Max: p.ToCanvas(Point{f.Left + f.Width, f.Top}),
	}
}

// FrameCanvas returns the canvas restricted to the plot area, for
// clipping.
func (p *Panel) FrameCanvas() draw.Canvas {
	return draw.Canvas{Canvas: p.Canvas.Canvas, Rectangle: p.FrameRect()}
}

// frameSlack absorbs rounding of accumulated X positions at the frame
// edges.
const frameSlack = 1e-6

// InFrame reports whether pt lies inside the plot area, edges included.
func (p *Panel) InFrame(pt Point) bool {
	f := p.Mapper.Frame
	return pt.X >= f.Left-frameSlack && pt.X <= f.Left+f.Width+frameSlack &&
		pt.Y >= f.Top-frameSlack && pt.Y <= f.Top+f.Height+frameSlack
}

// Points maps the chart's series to pixels.
func (p *Panel) Points() []Point {
	s := p.Chart.series
	if s.Len() == 0 {
		return nil
	}
	return p.Mapper.Points(s.Keys, s.Values)
}
