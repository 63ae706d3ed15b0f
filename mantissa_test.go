package touchplot

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

var cleanMantissaTests = []struct {
	x, want float64
}{
	{142.6, 100},
	{1, 1},
	{2, 2},
	{1.5, 2},    // tie goes up
	{2.25, 2.5}, // tie goes up
	{3.75, 5},   // tie goes up
	{7.5, 10},   // tie goes up
	{7.4, 5},
	{20.0000002, 20},
	{19.99999, 20},
	{0.03, 0.025},
	{9, 10},
	{3.2e7, 2.5e7},
}

func TestCleanMantissa(t *testing.T) {
	for i, tc := range cleanMantissaTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := CleanMantissa(tc.x)
			if !equal64(got, tc.want) {
				t.Errorf("CleanMantissa(%g) = %g, want %g", tc.x, got, tc.want)
			}
		})
	}
}

func TestCleanMantissaDegenerate(t *testing.T) {
	for _, x := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := CleanMantissa(x); !math.IsNaN(got) {
			t.Errorf("CleanMantissa(%g) = %g, want NaN", x, got)
		}
	}
}

func TestCleanMantissaIsNice(t *testing.T) {
	for x := 1e-6; x < 1e9; x *= 1.07 {
		got := CleanMantissa(x)
		m := got / math.Pow(10, math.Floor(math.Log10(got)+1e-9))
		nice := false
		for _, c := range niceMantissas {
			if math.Abs(m-c) < 1e-9 {
				nice = true
			}
		}
		require.True(t, nice, "CleanMantissa(%g) = %g has mantissa %g", x, got, m)
		require.InDelta(t, 1, got/x, 0.5, "CleanMantissa(%g) = %g too far off", x, got)
	}
}

func TestPickClosest(t *testing.T) {
	cands := []float64{1, 2, 4}
	for _, tc := range []struct{ target, want float64 }{
		{0, 1}, {1, 1}, {1.49, 1}, {1.5, 2}, {3, 4}, {2.99, 2}, {9, 4},
	} {
		if got := pickClosest(tc.target, cands); got != tc.want {
			t.Errorf("pickClosest(%g) = %g, want %g", tc.target, got, tc.want)
		}
	}
}

// equal64 compares floats relative to their size.
func equal64(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= 1e-9*math.Max(math.Abs(a), math.Abs(b))
}
