package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vdobler/touchplot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func TestRuns(t *testing.T) {
	nan := math.NaN()
	pts := []touchplot.Point{
		{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: nan}, {X: 3, Y: 3},
		{X: 4, Y: nan}, {X: 5, Y: nan}, {X: 6, Y: 6}, {X: 7, Y: 7},
	}
	runs := Runs(pts)
	require.Len(t, runs, 3)
	require.Len(t, runs[0], 2)
	require.Equal(t, 3.0, runs[1][0].X)
	require.Len(t, runs[2], 2)
	require.Equal(t, 6.0, runs[2][0].X)

	require.Empty(t, Runs(nil))
	require.Empty(t, Runs([]touchplot.Point{{X: nan, Y: nan}}))
}

func TestCanonicRectangle(t *testing.T) {
	r := CanonicRectangle(vg.Rectangle{Min: vg.Point{X: 5, Y: 1}, Max: vg.Point{X: 2, Y: 4}})
	require.Equal(t, vg.Point{X: 2, Y: 1}, r.Min)
	require.Equal(t, vg.Point{X: 5, Y: 4}, r.Max)
}

func TestDraw(t *testing.T) {
	c, err := touchplot.NewChart(touchplot.DefaultConfig(), nil)
	require.NoError(t, err)
	c.Title = "Weight"
	c.X.Title, c.Y.Title = "Day", "kg"
	c.Style = touchplot.DefaultStyle(12)
	c.Geoms = Default()
	require.NoError(t, c.SetRange(touchplot.XAxis, 0, 10))
	require.NoError(t, c.SetRange(touchplot.YAxis, 60, 80))
	c.SetData(
		[]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		[]float64{70, 71, math.NaN(), 72, 69, 68, 90, 70, 71, 72, 73},
		true)
	c.SetStatus([]bool{false, true})

	img := vgimg.New(400, 300)
	require.NotPanics(t, func() { c.Draw(draw.New(img)) })
	require.True(t, c.Frame.Width > 0 && c.Frame.Height > 0)

	p, ok := c.MapToPixel(4, 69)
	require.True(t, ok)
	_, ok = c.OnLongPress(p)
	require.True(t, ok)
	require.NotPanics(t, func() { c.Draw(draw.New(img)) })
	c.Unselect()

	// Without ticks only the background is drawn.
	c.X.Ticks = touchplot.TickSet{}
	require.NotPanics(t, func() { c.Draw(draw.New(img)) })
}
