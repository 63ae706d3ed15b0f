package touchplot

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumericStep(t *testing.T) {
	require.Equal(t, 20.0, NumericStep(Range{0, 100}, 5))
	require.Equal(t, 20.0, NumericStep(Range{5, 95}, 5))
	require.True(t, equal64(0.5, NumericStep(Range{-1, 1}, 4)))
}

var dateStepTests = []struct {
	r        Range
	n        int
	step     float64
	strategy DateStrategy
}{
	{Range{0, 1.5}, 5, 0.25, StrategyNone},
	{Range{0, 5 * 3600}, 5, 3600, StrategyNone},
	{Range{0, 60}, 4, 15, StrategyNone},
	{Range{0, 10 * secondsPerDay}, 5, 2 * secondsPerDay, UniformTimeOfDay},
	{Range{0, 7 * secondsPerDay}, 7, secondsPerDay, UniformTimeOfDay},
	{Range{0, 365 * secondsPerDay}, 6, 2 * secondsPerMonth, UniformDayInMonth},
	{Range{0, 334 * secondsPerDay}, 11, secondsPerMonth, UniformDayInMonth},
	{Range{0, 10 * secondsPerYear}, 5, 2 * secondsPerYear, UniformDayInMonth},
	{Range{0, 20 * secondsPerYear}, 4, 5 * secondsPerYear, UniformDayInMonth},
}

func TestDateStep(t *testing.T) {
	for i, tc := range dateStepTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			step, strategy := DateStep(tc.r, tc.n)
			if !equal64(step, tc.step) || strategy != tc.strategy {
				t.Errorf("DateStep(%v, %d) = %g, %s, want %g, %s",
					tc.r, tc.n, step, strategy, tc.step, tc.strategy)
			}
		})
	}
}

func TestStepsAreMonotone(t *testing.T) {
	lastNum, lastDate := 0.0, 0.0
	for w := 1e-3; w < 1e11; w *= 1.01 {
		r := Range{0, w}
		num := NumericStep(r, 1)
		require.GreaterOrEqual(t, num, lastNum, "numeric step for width %g", w)
		date, _ := DateStep(r, 1)
		require.GreaterOrEqual(t, date, lastDate, "date step for width %g", w)
		lastNum, lastDate = num, date
	}
}

func TestDateStrategyFollowsStep(t *testing.T) {
	for w := 1.0; w < 1e10; w *= 1.05 {
		step, strategy := DateStep(Range{0, w}, 1)
		switch {
		case step >= secondsPerMonth:
			require.Equal(t, UniformDayInMonth, strategy, "step %g", step)
		case step >= secondsPerDay:
			require.Equal(t, UniformTimeOfDay, strategy, "step %g", step)
		default:
			require.Equal(t, StrategyNone, strategy, "step %g", step)
		}
	}
}
