package touchplot

// TrimTicks clips the ascending ticks to r. If keepOneOutlier is set one
// tick outside r is kept on either side so panning reveals it smoothly.
// Ticks which do not reach into r from both sides are unusable and
// TrimTicks returns nil for them.
func TrimTicks(ticks []float64, r Range, keepOneOutlier bool) []float64 {
	low := -1
	for i := 0; i < len(ticks); i++ {
		if ticks[i] >= r.Min {
			low = i
			break
		}
	}
	high := -1
	for i := len(ticks) - 1; i >= 0; i-- {
		if ticks[i] <= r.Max {
			high = i
			break
		}
	}
	if low < 0 || high < 0 {
		return nil
	}

	keep := 0
	if keepOneOutlier {
		keep = 1
	}
	front := low - keep
	if front < 0 {
		front = 0
	}
	back := len(ticks) - 1 - high - keep
	if back < 0 {
		back = 0
	}
	end := len(ticks) - back
	if front >= end {
		return nil
	}
	return ticks[front:end]
}
