package touchplot

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls how a Chart is drawn.
type Style struct {
	Background color.Color

	Title       draw.TextStyle
	TitleHeight vg.Length

	Panel struct {
		Background color.Color
	}

	Grid struct {
		X draw.LineStyle
		Y draw.LineStyle
	}

	XAxis struct {
		Title       draw.TextStyle
		TitleHeight vg.Length
		Line        draw.LineStyle
		Label       draw.TextStyle
		LabelHeight vg.Length
	}

	YAxis struct {
		Title      draw.TextStyle
		TitleWidth vg.Length
		Line       draw.LineStyle
		Label      draw.TextStyle
		LabelWidth vg.Length
	}

	Line struct {
		draw.LineStyle
		Fill color.Color // nil for no area fill below the line
	}

	Scatter struct {
		draw.GlyphStyle
		Disabled color.Color
		Selected draw.GlyphStyle
	}

	Balloon struct {
		Background color.Color
		Border     draw.LineStyle
		Text       draw.TextStyle
		Pad        vg.Length
		Offset     vg.Length // distance between anchor and balloon
	}
}

// DefaultStyle returns a Style with a light panel, white grid lines and
// a blue line. The baseFontSize is the font size of axis titles, tick
// labels are a bit smaller.
func DefaultStyle(baseFontSize vg.Length) Style {
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f * float64(x)))
	}

	titleFont, err := vg.MakeFont("Helvetica-Bold", scale(baseFontSize, 1.2))
	if err != nil {
		panic(err)
	}
	baseFont, err := vg.MakeFont("Helvetica", baseFontSize)
	if err != nil {
		panic(err)
	}
	tickFont, err := vg.MakeFont("Helvetica", scale(baseFontSize, 1/1.2))
	if err != nil {
		panic(err)
	}

	s := Style{}
	s.Background = color.White

	s.TitleHeight = scale(baseFontSize, 2.5)
	s.Title.Color = color.Black
	s.Title.Font = titleFont
	s.Title.XAlign = draw.XCenter
	s.Title.YAlign = draw.YTop

	s.Panel.Background = color.Gray16{0xeeee}

	s.Grid.X.Color = color.White
	s.Grid.X.Width = vg.Length(1)
	s.Grid.Y.Color = color.White
	s.Grid.Y.Width = vg.Length(1)

	s.XAxis.Title.Color = color.Black
	s.XAxis.Title.Font = baseFont
	s.XAxis.Title.XAlign = draw.XCenter
	s.XAxis.Title.YAlign = draw.YAlignment(0.3)
	s.XAxis.TitleHeight = scale(baseFontSize, 2)
	s.XAxis.Line.Color = color.Gray16{0x1111}
	s.XAxis.Line.Width = vg.Length(1)
	s.XAxis.Label.Color = color.Black
	s.XAxis.Label.Font = tickFont
	s.XAxis.Label.XAlign = draw.XCenter
	s.XAxis.Label.YAlign = draw.YTop
	s.XAxis.LabelHeight = scale(baseFontSize, 1.5)

	s.YAxis.Title.Color = color.Black
	s.YAxis.Title.Font = baseFont
	s.YAxis.Title.Rotation = math.Pi / 2
	s.YAxis.Title.XAlign = draw.XCenter
	s.YAxis.Title.YAlign = draw.YTop
	s.YAxis.TitleWidth = scale(baseFontSize, 2)
	s.YAxis.Line.Width = 0
	s.YAxis.Label.Color = color.Black
	s.YAxis.Label.Font = tickFont
	s.YAxis.Label.XAlign = draw.XRight
	s.YAxis.Label.YAlign = -0.3 // draw.YCenter
	s.YAxis.LabelWidth = scale(baseFontSize, 4)

	s.Line.Color = color.RGBA{0x1f, 0x77, 0xb4, 0xff}
	s.Line.Width = vg.Length(2)
	s.Line.Fill = color.NRGBA{0x1f, 0x77, 0xb4, 0x40}

	s.Scatter.Color = s.Line.Color
	s.Scatter.Radius = vg.Length(3)
	s.Scatter.Shape = draw.CircleGlyph{}
	s.Scatter.Disabled = color.Gray16{0xaaaa}
	s.Scatter.Selected.Color = color.RGBA{0xd6, 0x27, 0x28, 0xff}
	s.Scatter.Selected.Radius = vg.Length(5)
	s.Scatter.Selected.Shape = draw.RingGlyph{}

	s.Balloon.Background = color.NRGBA{0xff, 0xff, 0xe0, 0xf0}
	s.Balloon.Border.Color = color.Gray16{0x4444}
	s.Balloon.Border.Width = vg.Length(1)
	s.Balloon.Text.Color = color.Black
	s.Balloon.Text.Font = tickFont
	s.Balloon.Text.XAlign = draw.XLeft
	s.Balloon.Text.YAlign = draw.YTop
	s.Balloon.Pad = scale(baseFontSize, 0.4)
	s.Balloon.Offset = scale(baseFontSize, 0.8)

	return s
}
