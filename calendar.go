package touchplot

import (
	"fmt"
	"math"
	"time"
)

// A Calendar interprets date keys, i.e. seconds since the Unix epoch, in
// a fixed location. The zero Calendar uses UTC.
type Calendar struct {
	Location *time.Location
}

// NewCalendar returns a Calendar for the IANA time zone name.
// The empty name and "UTC" give UTC, "Local" the system zone.
func NewCalendar(name string) (Calendar, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return Calendar{}, fmt.Errorf("%w %q: %v", ErrUnknownZone, name, err)
	}
	return Calendar{Location: loc}, nil
}

func (c Calendar) location() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

// DateToKey converts t to seconds since the epoch.
func DateToKey(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

// KeyToDate converts the key back to a time in c's location.
func (c Calendar) KeyToDate(key float64) time.Time {
	sec := math.Floor(key)
	nsec := math.Round((key - sec) * 1e9)
	return time.Unix(int64(sec), int64(nsec)).In(c.location())
}

// MonthStart returns the key of local midnight on the first day of the
// month containing key.
func (c Calendar) MonthStart(key float64) float64 {
	t := c.KeyToDate(key)
	return DateToKey(time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, c.location()))
}

// IsDST reports whether key falls into daylight saving time in c.
func (c Calendar) IsDST(key float64) bool {
	return c.KeyToDate(key).IsDST()
}

// daysIn returns the number of days of month m in year y.
func daysIn(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// sameTimeOfDay moves t to the wall clock time of o on t's calendar day.
func (c Calendar) sameTimeOfDay(t, o time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(),
		o.Hour(), o.Minute(), o.Second(), 0, c.location())
}

// sameDayInMonth returns o's day of month and time of day in month m of
// year y. Days past the end of the month are clamped to its last day.
func (c Calendar) sameDayInMonth(y int, m time.Month, o time.Time) time.Time {
	first := time.Date(y, m, 1, 0, 0, 0, 0, c.location())
	y, m = first.Year(), first.Month()
	d := o.Day()
	if last := daysIn(y, m); d > last {
		d = last
	}
	return time.Date(y, m, d, o.Hour(), o.Minute(), o.Second(), 0, c.location())
}

// monthDrift is how far an aligned tick may move before the month the
// tick fell into is considered the wrong one.
const monthDrift = 15 * 24 * time.Hour

// alignDayInMonth snaps t to o's day in month. Ticks laid out with the
// average month length wander across month ends; if the snapped date is
// more than 15 days away the neighbouring month is used instead.
func (c Calendar) alignDayInMonth(t, o time.Time) time.Time {
	y, m := t.Year(), t.Month()
	aligned := c.sameDayInMonth(y, m, o)
	switch d := aligned.Sub(t); {
	case d > monthDrift:
		aligned = c.sameDayInMonth(y, m-1, o)
	case d < -monthDrift:
		aligned = c.sameDayInMonth(y, m+1, o)
	}
	return aligned
}
