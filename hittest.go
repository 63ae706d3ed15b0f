package touchplot

import "math"

// DefaultSelectRadius is the distance in pixels within which a long press
// selects a point.
const DefaultSelectRadius = 15.0

// Nearest returns the index of the point closest to p and its distance.
// On ties the later point wins. Points with NaN coordinates are never
// chosen. Nearest returns -1 if no point qualifies.
func Nearest(points []Point, p Point) (int, float64) {
	best, min := -1, math.Inf(1)
	for i, q := range points {
		if d := q.Dist(p); d <= min {
			best, min = i, d
		}
	}
	return best, min
}

// A Hit is a point found by a hit test.
type Hit struct {
	Index  int
	Anchor Point
	Key    float64
	Value  float64
	Dist   float64
}

// hitTest finds the point of keys/values nearest to p within radius.
func hitTest(m Mapper, keys, values []float64, p Point, radius float64) (Hit, bool) {
	pts := m.Points(keys, values)
	i, d := Nearest(pts, p)
	if i < 0 || !(d < radius) || math.IsNaN(values[i]) {
		debugf("hit test at %v: no point (nearest %d, dist %g)", p, i, d)
		return Hit{}, false
	}
	debugf("hit test at %v: point %d dist %g", p, i, d)
	return Hit{
		Index:  i,
		Anchor: pts[i],
		Key:    keys[i],
		Value:  values[i],
		Dist:   d,
	}, true
}
