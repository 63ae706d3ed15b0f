// Package data contains the data series displayed by a chart.
package data

import (
	"math"
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// Missing is the value of a point without data.
var Missing = math.NaN()

// IsMissing reports whether v marks a missing value.
func IsMissing(v float64) bool { return math.IsNaN(v) }

// A Series is a sequence of (key, value) points with ascending keys and a
// mask of disabled points. A Series is replaced wholesale, never edited
// point by point.
//
// Series implements gonum's plotter.XYer.
type Series struct {
	Keys   []float64
	Values []float64

	disabled bitset.BitSet
}

// NewSeries returns a series of the pairs of keys and values. The longer
// of the two is truncated. Unless sorted is set the points are put in
// ascending key order, keeping the order of equal keys.
func NewSeries(keys, values []float64, sorted bool) *Series {
	return NewMaskedSeries(keys, values, nil, sorted)
}

// NewMaskedSeries is like NewSeries but also disables the points flagged
// in mask. mask is indexed like keys and values; its flags move with their
// points when those are sorted.
func NewMaskedSeries(keys, values []float64, mask []bool, sorted bool) *Series {
	n := len(keys)
	if len(values) < n {
		n = len(values)
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if !sorted {
		sort.SliceStable(order, func(a, b int) bool {
			return keys[order[a]] < keys[order[b]]
		})
	}
	s := &Series{
		Keys:   make([]float64, n),
		Values: make([]float64, n),
	}
	for i, j := range order {
		s.Keys[i], s.Values[i] = keys[j], values[j]
		if j < len(mask) && mask[j] {
			s.disabled.Set(uint(i))
		}
	}
	return s
}

// Len returns the number of points.
func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Keys)
}

// XY returns the key and value of point i.
func (s *Series) XY(i int) (x, y float64) { return s.Keys[i], s.Values[i] }

// SetDisabled replaces the disabled mask. mask may be shorter or longer
// than the series; missing entries count as enabled, extra ones are
// ignored.
func (s *Series) SetDisabled(mask []bool) {
	s.disabled.ClearAll()
	for i, off := range mask {
		if off && i < len(s.Keys) {
			s.disabled.Set(uint(i))
		}
	}
}

// Disabled reports whether point i is disabled.
func (s *Series) Disabled(i int) bool {
	if s == nil || i < 0 {
		return false
	}
	return s.disabled.Test(uint(i))
}

// Mask returns the disabled flag of every point.
func (s *Series) Mask() []bool {
	mask := make([]bool, s.Len())
	for i := range mask {
		mask[i] = s.Disabled(i)
	}
	return mask
}

// NumDisabled returns the number of disabled points.
func (s *Series) NumDisabled() int {
	if s == nil {
		return 0
	}
	return int(s.disabled.Count())
}

// Range returns the smallest and largest key and value, ignoring missing
// values. The results are NaN for an empty series.
func (s *Series) Range() (kmin, kmax, vmin, vmax float64) {
	kmin, kmax = math.NaN(), math.NaN()
	vmin, vmax = math.NaN(), math.NaN()
	for i := 0; i < s.Len(); i++ {
		k, v := s.XY(i)
		if math.IsNaN(kmin) || k < kmin {
			kmin = k
		}
		if math.IsNaN(kmax) || k > kmax {
			kmax = k
		}
		if IsMissing(v) {
			continue
		}
		if math.IsNaN(vmin) || v < vmin {
			vmin = v
		}
		if math.IsNaN(vmax) || v > vmax {
			vmax = v
		}
	}
	return kmin, kmax, vmin, vmax
}
