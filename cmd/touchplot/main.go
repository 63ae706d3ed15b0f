// Command touchplot renders a data series to a PNG image the way the
// touch chart displays it.
//
// The input is a CSV or XLSX file with a key column, a value column and
// an optional column flagging disabled points. Keys of date axes may be
// given as seconds since the epoch or as dates like 2024-03-01 or
// 2024-03-01T09:30:00Z.
package main

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vdobler/touchplot"
	"github.com/vdobler/touchplot/geom"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var (
	configPath string
	outputPath string
	sheetName  string
	title      string
	width      float64
	height     float64
	fontSize   float64
	press      string
	lineColor  string
	swipes     int
	debug      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "touchplot [input.csv|input.xlsx]",
		Short: "Render a time series chart to PNG",
		Long: `touchplot draws a series with the tick placement, mapping and
tooltips of the touch chart and writes the result as PNG.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "touchplot.png", "Output PNG file")
	rootCmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet of an XLSX input (default: first sheet)")
	rootCmd.Flags().StringVar(&title, "title", "", "Chart title")
	rootCmd.Flags().Float64Var(&width, "width", 480, "Image width in points")
	rootCmd.Flags().Float64Var(&height, "height", 320, "Image height in points")
	rootCmd.Flags().Float64Var(&fontSize, "font-size", 12, "Base font size")
	rootCmd.Flags().StringVar(&lineColor, "color", "", "SVG color name of the line and points, e.g. steelblue")
	rootCmd.Flags().StringVar(&press, "press", "", "Simulate a long press at x,y (pixels from top left)")
	rootCmd.Flags().IntVar(&swipes, "swipe", 0, "Page the X axis by this many screens (negative: earlier)")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Trace tick generation and hit tests to stderr")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if debug {
		touchplot.SetDebugOutput(os.Stderr)
	}

	cfg := touchplot.DefaultConfig()
	if configPath != "" {
		f, err := os.Open(configPath)
		if err != nil {
			return err
		}
		cfg, err = touchplot.LoadConfig(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", configPath, err)
		}
	}

	chart, err := touchplot.NewChart(cfg, nil)
	if err != nil {
		return err
	}
	chart.Title = title
	chart.Style = touchplot.DefaultStyle(vg.Length(fontSize))
	if lineColor != "" {
		if err := setLineColor(&chart.Style, lineColor); err != nil {
			return err
		}
	}
	chart.Geoms = geom.Default()

	tab, err := readInput(args[0], chart)
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	if len(tab.keys) == 0 {
		return fmt.Errorf("%s: no data", args[0])
	}
	chart.SetStatus(tab.disabled)
	chart.SetData(tab.keys, tab.values, false)

	for _, fit := range []struct {
		id  touchplot.AxisID
		cfg touchplot.AxisConfig
	}{{touchplot.XAxis, cfg.X}, {touchplot.YAxis, cfg.Y}} {
		if fit.cfg.Min != nil && fit.cfg.Max != nil {
			continue
		}
		if err := chart.FitRange(fit.id); err != nil {
			return err
		}
	}

	for ; swipes > 0; swipes-- {
		chart.OnSwipe(touchplot.SwipeLeft)
	}
	for ; swipes < 0; swipes++ {
		chart.OnSwipe(touchplot.SwipeRight)
	}

	img := vgimg.New(vg.Length(width), vg.Length(height))
	chart.Draw(draw.New(img))

	if press != "" {
		p, err := parsePoint(press)
		if err != nil {
			return err
		}
		if tt, ok := chart.OnLongPress(p); ok {
			fmt.Printf("point %d: %s %s\n", tt.Index, tt.Key, tt.Value)
		} else {
			fmt.Println("no point near", press)
		}
		img = vgimg.New(vg.Length(width), vg.Length(height))
		chart.Draw(draw.New(img))
		chart.Unselect()
	}

	return writePNG(img, outputPath)
}

// setLineColor colors the line, its fill and the points.
func setLineColor(s *touchplot.Style, name string) error {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("unknown color %q", name)
	}
	s.Line.Color = c
	s.Line.Fill = color.NRGBA{c.R, c.G, c.B, 0x40}
	s.Scatter.Color = c
	return nil
}

func readInput(path string, chart *touchplot.Chart) (table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readXLSX(path, sheetName, chart.X.Kind, chart.Calendar)
	}
	f, err := os.Open(path)
	if err != nil {
		return table{}, err
	}
	defer f.Close()
	return readCSV(f, chart.X.Kind, chart.Calendar)
}

// parsePoint parses "x,y".
func parsePoint(s string) (touchplot.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return touchplot.Point{}, fmt.Errorf("bad point %q, want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return touchplot.Point{}, fmt.Errorf("bad point %q: %v", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return touchplot.Point{}, fmt.Errorf("bad point %q: %v", s, err)
	}
	return touchplot.Point{X: x, Y: y}, nil
}

func writePNG(img *vgimg.Canvas, path string) error {
	w, err := os.Create(path)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err = png.WriteTo(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
