package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/vdobler/touchplot"
	"github.com/vdobler/touchplot/data"
	"github.com/xuri/excelize/v2"
)

// A table is the series read from an input file.
type table struct {
	keys, values []float64
	disabled     []bool
}

// dateLayouts are tried in order for keys of date axes.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseKey(s string, kind touchplot.AxisKind, cal touchplot.Calendar) (float64, error) {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, nil
	}
	if kind == touchplot.Date {
		loc := cal.Location
		if loc == nil {
			loc = time.UTC
		}
		for _, layout := range dateLayouts {
			if t, err := time.ParseInLocation(layout, s, loc); err == nil {
				return touchplot.DateToKey(t), nil
			}
		}
	}
	return math.NaN(), fmt.Errorf("bad key %q", s)
}

func parseValue(s string) (float64, error) {
	switch strings.ToLower(s) {
	case "", "nan", "-", "na":
		return data.Missing, nil
	}
	return strconv.ParseFloat(s, 64)
}

func parseDisabled(s string) bool {
	switch strings.ToLower(s) {
	case "x", "off", "disabled":
		return true
	}
	b, _ := strconv.ParseBool(s)
	return b
}

// parseRows converts rows of key, value and an optional disabled flag.
// A first row whose key cannot be parsed is taken as a header.
func parseRows(rows [][]string, kind touchplot.AxisKind, cal touchplot.Calendar) (table, error) {
	var tab table
	for i, row := range rows {
		if len(row) == 0 || (len(row) == 1 && strings.TrimSpace(row[0]) == "") {
			continue
		}
		for j := range row {
			row[j] = strings.TrimSpace(row[j])
		}
		key, err := parseKey(row[0], kind, cal)
		if err != nil {
			if i == 0 {
				continue
			}
			return table{}, fmt.Errorf("row %d: %v", i+1, err)
		}
		value := data.Missing
		if len(row) > 1 {
			if value, err = parseValue(row[1]); err != nil {
				return table{}, fmt.Errorf("row %d: bad value %q", i+1, row[1])
			}
		}
		tab.keys = append(tab.keys, key)
		tab.values = append(tab.values, value)
		tab.disabled = append(tab.disabled, len(row) > 2 && parseDisabled(row[2]))
	}
	return tab, nil
}

// readCSV reads a table from comma separated lines. Lines starting
// with # are ignored.
func readCSV(r io.Reader, kind touchplot.AxisKind, cal touchplot.Calendar) (table, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return table{}, err
	}
	return parseRows(rows, kind, cal)
}

// readXLSX reads a table from the first columns of a sheet of the
// workbook at path. An empty sheet name selects the first sheet.
func readXLSX(path, sheet string, kind touchplot.AxisKind, cal touchplot.Calendar) (table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return table{}, err
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return table{}, fmt.Errorf("%s: no sheets", path)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return table{}, err
	}
	return parseRows(rows, kind, cal)
}
