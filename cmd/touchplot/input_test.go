package main

import (
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vdobler/touchplot"
	"github.com/xuri/excelize/v2"
	"golang.org/x/image/colornames"
)

func TestReadCSV(t *testing.T) {
	tab, err := readCSV(strings.NewReader(`day,weight,off
# measured in the morning
1, 70.5
2,,
3,71,x
4,NaN,false
`), touchplot.Numeric, touchplot.Calendar{})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 4}, tab.keys)
	require.Equal(t, 70.5, tab.values[0])
	require.True(t, math.IsNaN(tab.values[1]))
	require.True(t, math.IsNaN(tab.values[3]))
	require.Equal(t, []bool{false, false, true, false}, tab.disabled)

	_, err = readCSV(strings.NewReader("1,2\nfoo,3\n"), touchplot.Numeric, touchplot.Calendar{})
	require.Error(t, err)
	_, err = readCSV(strings.NewReader("1,heavy\n"), touchplot.Numeric, touchplot.Calendar{})
	require.Error(t, err)
}

func TestReadCSVDates(t *testing.T) {
	tab, err := readCSV(strings.NewReader(
		"2024-03-01,1\n2024-03-02T06:00:00Z,2\n1709445600,3\n"),
		touchplot.Date, touchplot.Calendar{})
	require.NoError(t, err)
	require.Equal(t, []float64{
		touchplot.DateToKey(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		touchplot.DateToKey(time.Date(2024, 3, 2, 6, 0, 0, 0, time.UTC)),
		1709445600,
	}, tab.keys)

	// Dates are not keys of numeric axes.
	_, err = readCSV(strings.NewReader("1,1\n2024-03-01,1\n"), touchplot.Numeric, touchplot.Calendar{})
	require.Error(t, err)
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := "Sheet1"
	f.SetCellValue(sheet, "A1", "Key")
	f.SetCellValue(sheet, "B1", "Value")
	f.SetCellValue(sheet, "A2", 10)
	f.SetCellValue(sheet, "B2", 200.5)
	f.SetCellValue(sheet, "A3", 20)
	f.SetCellValue(sheet, "C3", "x")

	path := filepath.Join(t.TempDir(), "series.xlsx")
	require.NoError(t, f.SaveAs(path))

	tab, err := readXLSX(path, "", touchplot.Numeric, touchplot.Calendar{})
	require.NoError(t, err)
	require.Equal(t, []float64{10, 20}, tab.keys)
	require.Equal(t, 200.5, tab.values[0])
	require.True(t, math.IsNaN(tab.values[1]))
	require.Equal(t, []bool{false, true}, tab.disabled)

	_, err = readXLSX(path, "Missing", touchplot.Numeric, touchplot.Calendar{})
	require.Error(t, err)
}

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("12.5, 40")
	require.NoError(t, err)
	require.Equal(t, touchplot.Point{X: 12.5, Y: 40}, p)
	_, err = parsePoint("12")
	require.Error(t, err)
	_, err = parsePoint("a,b")
	require.Error(t, err)
}

func TestSetLineColor(t *testing.T) {
	s := touchplot.DefaultStyle(12)
	require.NoError(t, setLineColor(&s, "SteelBlue"))
	require.Equal(t, colornames.Steelblue, s.Line.Color)
	require.Equal(t, colornames.Steelblue, s.Scatter.Color)
	require.Error(t, setLineColor(&s, "blurple"))
}
