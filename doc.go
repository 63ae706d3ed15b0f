// Package touchplot is the engine of an interactive time series and
// scatter chart for touch screens.
//
// It uses gonum.org/v1/plot for drawing but does its own tick placement
// and coordinate mapping.
//
// # Ticks
//
// Tick steps are "nice" numbers: a mantissa of 1, 2, 2.5, 5 or 10 times
// a power of ten. Date axes measure time in seconds since the Unix epoch
// and pick their step from a ladder of calendar friendly sizes:
//
//   - below one second   nice fractions of a second
//   - up to a day        1s, 2.5s, 5s, ... 30m, 1h, 2h, 3h, 6h, 12h
//   - days               1, 2, 5, 7 and 14 days
//   - months             1, 2, 3 and 6 average months
//   - years              nice multiples of an average year
//
// Ticks are laid out on the grid origin + k*step. Date ticks of a day or
// more are then moved back onto the calendar: daily ticks keep the
// origin's time of day, monthly and yearly ticks keep its day of month
// (clamped to the end of shorter months). Ticks on a date Y axis are
// also shifted by an hour where they and the origin disagree about
// daylight saving time.
//
// Finally the ticks are trimmed to the axis range, optionally keeping
// one tick beyond each end.
//
// # Mapping
//
// A Mapper turns data coordinates into pixels of the chart's Frame. The
// X extent of the frame is MinX, the first X tick, to MinX plus the
// configured number of steps; the Y extent is the configured Y range.
// Pixel X positions are accumulated from the previous point so ticks and
// data share the same sequence of offsets.
//
// # Interaction
//
// A long press selects the nearest point within Chart.SelectRadius and
// produces a Tooltip. The selection is cleared by a swipe, by a press
// which misses, or by a timer after Config.DeselectTimeout.
package touchplot
