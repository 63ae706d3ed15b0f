package touchplot

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewCalendar(t *testing.T) {
	for _, name := range []string{"", "UTC", "Europe/Berlin", "America/New_York"} {
		_, err := NewCalendar(name)
		require.NoError(t, err, name)
	}
	_, err := NewCalendar("Mars/Olympus_Mons")
	require.True(t, errors.Is(err, ErrUnknownZone), "got %v", err)
}

func TestKeyRoundTrip(t *testing.T) {
	cal, err := NewCalendar("Europe/Berlin")
	require.NoError(t, err)
	tm := time.Date(2024, 7, 14, 12, 30, 15, 250e6, cal.Location)
	got := cal.KeyToDate(DateToKey(tm))
	require.True(t, got.Equal(tm), "got %s", got)
	require.Equal(t, cal.Location, got.Location())
	require.Equal(t, time.UTC, Calendar{}.KeyToDate(0).Location())
}

func TestMonthStart(t *testing.T) {
	cal, err := NewCalendar("Europe/Berlin")
	require.NoError(t, err)
	k := DateToKey(time.Date(2024, 3, 31, 12, 0, 0, 0, cal.Location))
	want := DateToKey(time.Date(2024, 3, 1, 0, 0, 0, 0, cal.Location))
	require.Equal(t, want, cal.MonthStart(k))
	require.False(t, cal.IsDST(want))
	require.True(t, cal.IsDST(k))
}

var alignDayInMonthTests = []struct {
	t, origin, want string
}{
	{"2023-03-03 10:30", "2023-01-31 00:00", "2023-02-28 00:00"},
	{"2023-01-31 10:30", "2023-01-01 00:00", "2023-02-01 00:00"},
	{"2023-03-02 21:00", "2023-01-01 00:00", "2023-03-01 00:00"},
	{"2024-03-01 06:00", "2023-01-31 00:00", "2024-02-29 00:00"},
	{"2023-12-31 18:00", "2000-01-01 00:00", "2024-01-01 00:00"},
	{"2023-07-14 08:00", "2023-01-14 12:00", "2023-07-14 12:00"},
}

func TestAlignDayInMonth(t *testing.T) {
	cal := Calendar{}
	parse := func(s string) time.Time {
		tm, err := time.Parse("2006-01-02 15:04", s)
		require.NoError(t, err)
		return tm
	}
	for i, tc := range alignDayInMonthTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := cal.alignDayInMonth(parse(tc.t), parse(tc.origin))
			if s := got.Format("2006-01-02 15:04"); s != tc.want {
				t.Errorf("alignDayInMonth(%s, %s) = %s, want %s", tc.t, tc.origin, s, tc.want)
			}
		})
	}
}

func TestDaysIn(t *testing.T) {
	require.Equal(t, 29, daysIn(2024, time.February))
	require.Equal(t, 28, daysIn(2023, time.February))
	require.Equal(t, 31, daysIn(2023, time.December))
}
