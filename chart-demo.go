//go:build ignore
// +build ignore

package main

import (
	"math"
	"os"
	"time"

	"github.com/vdobler/touchplot"
	"github.com/vdobler/touchplot/data"
	"github.com/vdobler/touchplot/geom"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func main() {
	cfg := touchplot.DefaultConfig()
	cfg.X.Kind = "date"
	cfg.X.Title = "Day"
	cfg.X.TickCount = 7
	cfg.Y.Title = "Weight [kg]"
	cfg.TimeZone = "Europe/Berlin"

	c, err := touchplot.NewChart(cfg, nil)
	if err != nil {
		panic(err)
	}
	c.Title = "Weight"
	c.Style = touchplot.DefaultStyle(12)
	c.Geoms = geom.Default()

	start := time.Date(2024, 3, 20, 7, 0, 0, 0, c.Calendar.Location)
	var keys, values []float64
	for i := 0; i < 21; i++ {
		keys = append(keys, touchplot.DateToKey(start.AddDate(0, 0, i)))
		v := 72 + 1.5*math.Sin(float64(i)/3)
		if i == 9 {
			v = data.Missing
		}
		values = append(values, v)
	}
	c.SetData(keys, values, true)
	c.SetStatus([]bool{false, false, false, true})
	c.FitRange(touchplot.XAxis)
	c.SetRange(touchplot.YAxis, 68, 76)

	img := vgimg.New(800, 600)
	c.Draw(draw.New(img))
	if p, ok := c.MapToPixel(keys[5], values[5]); ok {
		c.OnLongPress(p)
		img = vgimg.New(800, 600)
		c.Draw(draw.New(img))
	}

	w, err := os.Create("testdata/chart.png")
	defer w.Close()
	if err != nil {
		panic(err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err = png.WriteTo(w); err != nil {
		panic(err)
	}
	if err = w.Close(); err != nil {
		panic(err)
	}
}
