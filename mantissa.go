package touchplot

import "math"

// niceMantissas are the leading digits a clean step may have.
var niceMantissas = []float64{1, 2, 2.5, 5, 10}

// CleanMantissa rounds x to a "nice" number of the form m*10^n with
// m one of 1, 2, 2.5, 5 or 10. Ties between two candidates go to the
// larger one. CleanMantissa returns NaN if x is not positive and finite.
func CleanMantissa(x float64) float64 {
	if !(x > 0) || math.IsInf(x, 1) {
		return math.NaN()
	}
	magnitude := math.Pow(10, math.Floor(math.Log10(x)))
	return pickClosest(x/magnitude, niceMantissas) * magnitude
}

// pickClosest returns the element of the ascending candidates closest to
// target. The first candidate >= target is the upper neighbour; the lower
// one wins only if it is strictly closer. Targets outside the candidate
// range snap to the nearest end.
func pickClosest(target float64, candidates []float64) float64 {
	for i, upper := range candidates {
		if upper < target {
			continue
		}
		if i == 0 {
			return upper
		}
		lower := candidates[i-1]
		if target-lower < upper-target {
			return lower
		}
		return upper
	}
	return candidates[len(candidates)-1]
}
