package touchplot

import "math"

// A Point is a position in pixels. Y grows downwards.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// A Frame is the plot area in pixels.
type Frame struct {
	Left, Top     float64
	Width, Height float64
}

// Bounds are the data coordinates mapped to the edges of the frame.
// MinX and MaxX derive from the X ticks, MinY and MaxY are the configured
// Y range.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// bounds computes the visible bounds for the axes. It fails if either
// axis has no ticks or a span is degenerate.
func bounds(x, y *Axis) (Bounds, bool) {
	if x.Ticks.Empty() || y.Ticks.Empty() {
		return Bounds{}, false
	}
	b := Bounds{
		MinX: x.Ticks.Values[0],
		MinY: y.Range.Min,
		MaxY: y.Range.Max,
	}
	b.MaxX = b.MinX + x.Ticks.Step*float64(x.TickCount)
	if !(b.MaxX > b.MinX) || !(b.MaxY > b.MinY) {
		return Bounds{}, false
	}
	return b, true
}

// A Mapper transforms data coordinates into pixels.
type Mapper struct {
	Frame  Frame
	Bounds Bounds
}

// XPositions maps the ascending coordinates cs to pixel X positions. The
// first coordinate sits on the left edge of the frame; each following one
// is offset from its predecessor in proportion to their difference. Tick
// and data positions are both computed here so they stay consistent.
func (m Mapper) XPositions(cs []float64) []float64 {
	xs := make([]float64, len(cs))
	if len(cs) == 0 {
		return xs
	}
	span := m.Bounds.MaxX - m.Bounds.MinX
	xs[0] = m.Frame.Left
	for i := 1; i < len(cs); i++ {
		xs[i] = xs[i-1] + m.Frame.Width*(cs[i]-cs[i-1])/span
	}
	return xs
}

// Y maps the value v to a pixel Y. Missing values map to NaN.
func (m Mapper) Y(v float64) float64 {
	coe := m.Frame.Height / (m.Bounds.MaxY - m.Bounds.MinY)
	return m.Frame.Top + coe*(m.Bounds.MaxY-v)
}

// MapToPixel maps a single data coordinate with Bounds.MinX on the left
// edge. It agrees with XPositions for sequences starting at Bounds.MinX,
// i.e. with the ticks.
func (m Mapper) MapToPixel(key, value float64) Point {
	return m.MapFrom(m.Bounds.MinX, key, value)
}

// MapFrom maps a single data coordinate of a sequence whose first key is
// origin. It agrees with XPositions of that sequence.
func (m Mapper) MapFrom(origin, key, value float64) Point {
	span := m.Bounds.MaxX - m.Bounds.MinX
	return Point{
		X: m.Frame.Left + m.Frame.Width*(key-origin)/span,
		Y: m.Y(value),
	}
}

// Points maps the keys and values to pixels.
func (m Mapper) Points(keys, values []float64) []Point {
	xs := m.XPositions(keys)
	pts := make([]Point, len(xs))
	for i, x := range xs {
		pts[i] = Point{X: x, Y: m.Y(values[i])}
	}
	return pts
}
