package geom

import (
	"image/color"
	"math"

	"github.com/vdobler/touchplot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// BoxStyle combines a line style for the border with a fill color for
// the interior of a box.
type BoxStyle struct {
	Fill   color.Color
	Border draw.LineStyle
}

// CanonicRectangle returns the canonical form of r, i.e. its Min points
// having smaller coordinates than its Max point.
func CanonicRectangle(r vg.Rectangle) vg.Rectangle {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// missing reports whether p cannot be drawn.
func missing(p touchplot.Point) bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y)
}

// Runs splits pts at missing points into the maximal runs of drawable
// points. A missing value closes the current run.
func Runs(pts []touchplot.Point) [][]touchplot.Point {
	var runs [][]touchplot.Point
	start := -1
	for i, p := range pts {
		switch {
		case missing(p) && start >= 0:
			runs = append(runs, pts[start:i])
			start = -1
		case !missing(p) && start < 0:
			start = i
		}
	}
	if start >= 0 {
		runs = append(runs, pts[start:])
	}
	return runs
}

// toCanvas converts a run to canvas points.
func toCanvas(panel *touchplot.Panel, run []touchplot.Point) []vg.Point {
	out := make([]vg.Point, len(run))
	for i, p := range run {
		out[i] = panel.ToCanvas(p)
	}
	return out
}

// areaBelow returns the polygon enclosed by run and the bottom edge of
// the frame.
func areaBelow(panel *touchplot.Panel, run []touchplot.Point) []vg.Point {
	bottom := panel.Mapper.Frame.Top + panel.Mapper.Frame.Height
	poly := toCanvas(panel, run)
	poly = append(poly,
		panel.ToCanvas(touchplot.Point{X: run[len(run)-1].X, Y: bottom}),
		panel.ToCanvas(touchplot.Point{X: run[0].X, Y: bottom}))
	return poly
}
